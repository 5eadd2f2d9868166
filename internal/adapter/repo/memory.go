package repo

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"modcon/internal/domain"
)

// Memory keeps production records in process. It is used when no database is
// configured and in tests.
type Memory struct {
	mu      sync.RWMutex
	batches map[string]domain.ProductionBatch
	assets  map[string]domain.ProductionAsset
	order   []string
	plans   map[string]domain.JobPlan
	now     func() time.Time
}

// NewMemory returns an empty in-process repository.
func NewMemory() *Memory {
	return &Memory{
		batches: make(map[string]domain.ProductionBatch),
		assets:  make(map[string]domain.ProductionAsset),
		plans:   make(map[string]domain.JobPlan),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (m *Memory) PutBatch(_ context.Context, batch *domain.ProductionBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.batches[batch.ID]; ok {
		return fmt.Errorf("batch %s: %w", batch.ID, domain.ErrConflict)
	}
	m.batches[batch.ID] = *batch
	return nil
}

func (m *Memory) GetBatch(_ context.Context, id string) (*domain.ProductionBatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	batch, ok := m.batches[id]
	if !ok {
		return nil, fmt.Errorf("batch %s: %w", id, domain.ErrNotFound)
	}
	return &batch, nil
}

func (m *Memory) PutAsset(_ context.Context, asset *domain.ProductionAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.batches[asset.BatchID]; !ok {
		return fmt.Errorf("batch %s: %w", asset.BatchID, domain.ErrNotFound)
	}
	if _, ok := m.assets[asset.ID]; ok {
		return fmt.Errorf("asset %s: %w", asset.ID, domain.ErrConflict)
	}
	m.assets[asset.ID] = copyAsset(*asset)
	m.order = append(m.order, asset.ID)
	return nil
}

func (m *Memory) GetAsset(_ context.Context, id string) (*domain.ProductionAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	asset, ok := m.assets[id]
	if !ok {
		return nil, fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
	}
	asset = copyAsset(asset)
	return &asset, nil
}

func (m *Memory) ListAssetsByBatch(_ context.Context, batchID string) ([]domain.ProductionAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.batches[batchID]; !ok {
		return nil, fmt.Errorf("batch %s: %w", batchID, domain.ErrNotFound)
	}
	var out []domain.ProductionAsset
	for _, id := range m.order {
		if a := m.assets[id]; a.BatchID == batchID {
			out = append(out, copyAsset(a))
		}
	}
	return out, nil
}

func (m *Memory) SwapAssetStatus(_ context.Context, id string, from, to domain.AssetStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, ok := m.assets[id]
	if !ok {
		return fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
	}
	if asset.Status != from {
		return fmt.Errorf("asset %s is %s: %w", id, asset.Status, domain.ErrConflict)
	}
	asset.Status = to
	asset.UpdatedAt = m.now()
	m.assets[id] = asset
	return nil
}

func (m *Memory) PutPlan(_ context.Context, plan *domain.JobPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[plan.ID]; ok {
		return fmt.Errorf("plan %s: %w", plan.ID, domain.ErrConflict)
	}
	m.plans[plan.ID] = copyPlan(*plan)
	return nil
}

func (m *Memory) GetPlan(_ context.Context, id string) (*domain.JobPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	plan, ok := m.plans[id]
	if !ok {
		return nil, fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
	}
	plan = copyPlan(plan)
	return &plan, nil
}

func (m *Memory) ListJobsByPlan(ctx context.Context, planID string) ([]domain.ProductionJob, error) {
	plan, err := m.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	return plan.Jobs, nil
}

func (m *Memory) SwapJobStatus(_ context.Context, planID, jobID string, from, to domain.JobStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	plan, ok := m.plans[planID]
	if !ok {
		return fmt.Errorf("plan %s: %w", planID, domain.ErrNotFound)
	}
	job, ok := plan.Job(jobID)
	if !ok {
		return fmt.Errorf("job %s: %w", jobID, domain.ErrNotFound)
	}
	if job.Status != from {
		return fmt.Errorf("job %s is %s: %w", jobID, job.Status, domain.ErrConflict)
	}
	job.Status = to
	return nil
}

func copyAsset(a domain.ProductionAsset) domain.ProductionAsset {
	a.SpecDetails = maps.Clone(a.SpecDetails)
	return a
}

func copyPlan(p domain.JobPlan) domain.JobPlan {
	p.Jobs = slices.Clone(p.Jobs)
	for i := range p.Jobs {
		p.Jobs[i].Destinations = slices.Clone(p.Jobs[i].Destinations)
	}
	return p
}

var _ domain.ProductionRepository = (*Memory)(nil)
