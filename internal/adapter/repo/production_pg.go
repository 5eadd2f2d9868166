package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"modcon/internal/domain"
	"modcon/internal/infra"
	"modcon/internal/sqlinline"
)

// ProductionPG implements domain.ProductionRepository on PostgreSQL.
type ProductionPG struct {
	sql infra.SQLExecutor
}

// NewProductionPG builds a repository on top of a marker-checked executor.
func NewProductionPG(sql infra.SQLExecutor) *ProductionPG {
	return &ProductionPG{sql: sql}
}

// EnsureSchema creates the tables the repository needs.
func (r *ProductionPG) EnsureSchema(ctx context.Context) error {
	for _, stmt := range sqlinline.SchemaStatements {
		if _, err := r.sql.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *ProductionPG) PutBatch(ctx context.Context, batch *domain.ProductionBatch) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertProductionBatch,
		batch.ID,
		batch.CampaignID,
		batch.StrategySegmentID,
		batch.ConceptID,
		batch.Name,
		batch.CreatedAt,
	)
	return err
}

func (r *ProductionPG) GetBatch(ctx context.Context, id string) (*domain.ProductionBatch, error) {
	var b domain.ProductionBatch
	err := r.sql.QueryRow(ctx, sqlinline.QSelectProductionBatch, id).Scan(
		&b.ID, &b.CampaignID, &b.StrategySegmentID, &b.ConceptID, &b.Name, &b.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, fmt.Errorf("batch %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func (r *ProductionPG) PutAsset(ctx context.Context, a *domain.ProductionAsset) error {
	details, err := json.Marshal(a.SpecDetails)
	if err != nil {
		return fmt.Errorf("encode spec details: %w", err)
	}
	_, err = r.sql.Exec(ctx, sqlinline.QInsertProductionAsset,
		a.ID,
		a.BatchID,
		a.AssetName,
		a.Platform,
		a.Placement,
		a.SpecDimensions,
		string(details),
		string(a.Status),
		a.Assignee,
		a.AssetType,
		a.VisualDirective,
		a.CopyHeadline,
		a.SourceAssetRequirements,
		a.AdaptationInstruction,
		a.FileURL,
		a.UpdatedAt,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (domain.ProductionAsset, error) {
	var (
		a       domain.ProductionAsset
		status  string
		details []byte
	)
	if err := row.Scan(
		&a.ID,
		&a.BatchID,
		&a.AssetName,
		&a.Platform,
		&a.Placement,
		&a.SpecDimensions,
		&details,
		&status,
		&a.Assignee,
		&a.AssetType,
		&a.VisualDirective,
		&a.CopyHeadline,
		&a.SourceAssetRequirements,
		&a.AdaptationInstruction,
		&a.FileURL,
		&a.UpdatedAt,
	); err != nil {
		return a, err
	}
	a.Status = domain.AssetStatus(status)
	if len(details) > 0 {
		if err := json.Unmarshal(details, &a.SpecDetails); err != nil {
			return a, fmt.Errorf("decode spec details: %w", err)
		}
	}
	return a, nil
}

func (r *ProductionPG) GetAsset(ctx context.Context, id string) (*domain.ProductionAsset, error) {
	a, err := scanAsset(r.sql.QueryRow(ctx, sqlinline.QSelectProductionAsset, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &a, nil
}

func (r *ProductionPG) ListAssetsByBatch(ctx context.Context, batchID string) ([]domain.ProductionAsset, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListProductionAssetsByBatch, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.ProductionAsset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *ProductionPG) SwapAssetStatus(ctx context.Context, id string, from, to domain.AssetStatus) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QSwapProductionAssetStatus, id, string(from), string(to))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset %s: %w", id, domain.ErrConflict)
	}
	return nil
}

// PutPlan stores the plan header and one row per job. The job body is kept
// as JSON; status lives in its own column so it can be swapped atomically.
func (r *ProductionPG) PutPlan(ctx context.Context, plan *domain.JobPlan) error {
	createdAt := plan.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	if _, err := r.sql.Exec(ctx, sqlinline.QInsertJobPlan, plan.ID, plan.CampaignName, plan.CreativeConcept, createdAt); err != nil {
		return err
	}
	for i, job := range plan.Jobs {
		payload, err := json.Marshal(job)
		if err != nil {
			return fmt.Errorf("encode job %s: %w", job.JobID, err)
		}
		if _, err := r.sql.Exec(ctx, sqlinline.QInsertProductionJob, plan.ID, job.JobID, i, string(job.Status), string(payload)); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductionPG) GetPlan(ctx context.Context, id string) (*domain.JobPlan, error) {
	var p domain.JobPlan
	err := r.sql.QueryRow(ctx, sqlinline.QSelectJobPlan, id).Scan(&p.ID, &p.CampaignName, &p.CreativeConcept, &p.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	jobs, err := r.ListJobsByPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Jobs = jobs
	return &p, nil
}

func (r *ProductionPG) ListJobsByPlan(ctx context.Context, planID string) ([]domain.ProductionJob, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListProductionJobsByPlan, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.ProductionJob
	for rows.Next() {
		var (
			status  string
			payload []byte
			job     domain.ProductionJob
		)
		if err := rows.Scan(&status, &payload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &job); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		job.Status = domain.JobStatus(status)
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *ProductionPG) SwapJobStatus(ctx context.Context, planID, jobID string, from, to domain.JobStatus) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QSwapProductionJobStatus, planID, jobID, string(from), string(to))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", jobID, domain.ErrConflict)
	}
	return nil
}

var _ domain.ProductionRepository = (*ProductionPG)(nil)
