package production

import (
	"context"
	"errors"
	"fmt"

	"modcon/internal/domain"
	"modcon/internal/fieldalias"
	"modcon/internal/matrix"
)

// BuildRequest selects specs by ID for one creative concept.
type BuildRequest struct {
	CreativeConcept         string   `json:"creative_concept"`
	SpecIDs                 []string `json:"spec_ids"`
	CampaignName            string   `json:"campaign_name,omitempty"`
	SingleMindedProposition string   `json:"single_minded_proposition,omitempty"`
	SourceType              string   `json:"source_type,omitempty"`
}

// BuildResult is a persisted matrix build.
type BuildResult struct {
	Plan       *domain.JobPlan `json:"plan"`
	Summary    matrix.Summary  `json:"summary"`
	Unresolved []string        `json:"unresolved_spec_ids,omitempty"`
}

// BuildJobs resolves the requested specs, consolidates them into jobs and
// stores the result as a plan. It fails with ErrNoSpecsResolved when none of
// the IDs resolve.
func (s *Service) BuildJobs(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	// A repeated spec ID is one destination, not two deliveries of the same file.
	specs, unresolved, err := s.resolve(ctx, dedupe(req.SpecIDs), "build")
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, domain.ErrNoSpecsResolved
	}

	records := make([]fieldalias.Record, 0, len(specs))
	for _, spec := range specs {
		records = append(records, fieldalias.Record(spec.Record()))
	}
	jobs := matrix.Build(matrix.Request{
		Specs:                   records,
		CreativeConcept:         req.CreativeConcept,
		CampaignName:            req.CampaignName,
		SingleMindedProposition: req.SingleMindedProposition,
		SourceType:              req.SourceType,
	})

	plan := &domain.JobPlan{
		ID:              s.newID(),
		CampaignName:    req.CampaignName,
		CreativeConcept: req.CreativeConcept,
		Jobs:            jobs,
		CreatedAt:       s.now(),
	}
	if err := s.repo.PutPlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("store job plan: %w", err)
	}
	jobsBuilt.Add(float64(len(jobs)))
	s.logger.Info().Str("plan_id", plan.ID).Int("jobs", len(jobs)).Int("unresolved", len(unresolved)).Msg("production jobs built")

	return &BuildResult{Plan: plan, Summary: matrix.Summarize(jobs), Unresolved: unresolved}, nil
}

// GetPlan returns a stored matrix build with its current job states.
func (s *Service) GetPlan(ctx context.Context, id string) (*domain.JobPlan, error) {
	plan, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	jobs, err := s.repo.ListJobsByPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	plan.Jobs = jobs
	return plan, nil
}

// UpdateJobStatus moves one job of a plan along its workflow.
func (s *Service) UpdateJobStatus(ctx context.Context, planID, jobID, status string) (*domain.ProductionJob, error) {
	to, err := domain.ParseJobStatus(status)
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt < swapAttempts; attempt++ {
		plan, err := s.GetPlan(ctx, planID)
		if err != nil {
			return nil, err
		}
		job, ok := plan.Job(jobID)
		if !ok {
			return nil, fmt.Errorf("job %s: %w", jobID, domain.ErrNotFound)
		}
		if err := domain.CheckJobTransition(job.Status, to); err != nil {
			return nil, err
		}
		if job.Status == to {
			return job, nil
		}
		err = s.repo.SwapJobStatus(ctx, planID, jobID, job.Status, to)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s.logger.Info().Str("plan_id", planID).Str("job_id", jobID).Str("to", string(to)).Msg("job status updated")
		job.Status = to
		return job, nil
	}
	return nil, fmt.Errorf("job %s: %w", jobID, domain.ErrConflict)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
