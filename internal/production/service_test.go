package production

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"modcon/internal/adapter/repo"
	"modcon/internal/domain"
	"modcon/internal/speclib"
)

type canonicalOnly struct{}

func (canonicalOnly) Lookup(_ context.Context, id string) (domain.Spec, error) {
	if spec, ok := speclib.Environment(id); ok {
		return spec, nil
	}
	return domain.Spec{}, fmt.Errorf("spec %s: %w", id, domain.ErrNotFound)
}

func newTestService() *Service {
	s := NewService(canonicalOnly{}, repo.NewMemory(), zerolog.Nop())
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	s.now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestGenerateCreatesOneAssetPerEnvironment(t *testing.T) {
	s := newTestService()
	plan, err := s.Generate(context.Background(), GenerateRequest{
		CampaignID: "camp-1",
		Strategy: domain.Strategy{
			SegmentID:            "seg-1",
			SegmentName:          "Young Parents",
			PrimaryMessagePillar: "Time back",
			TargetEnvironmentIDs: []string{"META_STORY", "NOPE", "DISPLAY_MPU"},
		},
		Concept: domain.Concept{ID: "c-1", Name: "Morning Rush", VisualDescription: "Kitchen chaos"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if plan.Batch.Name != "Young Parents – Morning Rush" {
		t.Fatalf("batch name = %q", plan.Batch.Name)
	}
	if len(plan.Assets) != 2 {
		t.Fatalf("assets = %d, want 2", len(plan.Assets))
	}
	if len(plan.Skipped) != 1 || plan.Skipped[0] != "NOPE" {
		t.Fatalf("skipped = %v, want [NOPE]", plan.Skipped)
	}

	story := plan.Assets[0]
	if story.AssetName != "YoungParents_Meta_Stories/Reels" {
		t.Fatalf("asset name = %q", story.AssetName)
	}
	if story.SpecDimensions != "1080x1920" {
		t.Fatalf("dimensions = %q, want 1080x1920", story.SpecDimensions)
	}
	if story.Status != domain.AssetStatusTodo {
		t.Fatalf("status = %q, want Todo", story.Status)
	}
	if story.VisualDirective != "Kitchen chaos" || story.CopyHeadline != "Time back" {
		t.Fatalf("directive/headline = %q/%q", story.VisualDirective, story.CopyHeadline)
	}
	if story.SpecDetails["id"] != "META_STORY" {
		t.Fatalf("spec_details = %v", story.SpecDetails)
	}

	stored, err := s.GetBatch(context.Background(), plan.Batch.ID)
	if err != nil {
		t.Fatalf("GetBatch() error = %v", err)
	}
	if len(stored.Assets) != 2 {
		t.Fatalf("stored assets = %d, want 2", len(stored.Assets))
	}
}

func TestGenerateEmptyEnvironmentsYieldsEmptyBatch(t *testing.T) {
	s := newTestService()
	plan, err := s.Generate(context.Background(), GenerateRequest{
		Strategy:  domain.Strategy{SegmentID: "seg-9"},
		BatchName: "Manual",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if plan.Batch.Name != "Manual" || len(plan.Assets) != 0 {
		t.Fatalf("plan = %+v", plan)
	}
}

func TestGenerateFallsBackToSegmentID(t *testing.T) {
	s := newTestService()
	plan, err := s.Generate(context.Background(), GenerateRequest{
		Strategy: domain.Strategy{SegmentID: "seg-7", TargetEnvironmentIDs: []string{"DISPLAY_MPU"}},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := plan.Assets[0].AssetName; got != "seg-7_GoogleDisplay_MPU" {
		t.Fatalf("asset name = %q", got)
	}
}

func TestUpdateAssetStatusWalksWorkflow(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	plan, _ := s.Generate(ctx, GenerateRequest{Strategy: domain.Strategy{SegmentName: "A", TargetEnvironmentIDs: []string{"META_FEED"}}})
	id := plan.Assets[0].ID

	if _, err := s.UpdateAssetStatus(ctx, id, "Approved"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("Todo->Approved error = %v, want ErrInvalidTransition", err)
	}
	if _, err := s.UpdateAssetStatus(ctx, id, "Done"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("unknown status error = %v, want ErrInvalidStatus", err)
	}
	asset, err := s.UpdateAssetStatus(ctx, id, "In_Progress")
	if err != nil {
		t.Fatalf("UpdateAssetStatus() error = %v", err)
	}
	if asset.Status != domain.AssetStatusInProgress {
		t.Fatalf("status = %q, want In_Progress", asset.Status)
	}
	if _, err := s.UpdateAssetStatus(ctx, "missing", "Review"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing asset error = %v, want ErrNotFound", err)
	}
}

func TestBuildJobsPersistsPlan(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	res, err := s.BuildJobs(ctx, BuildRequest{
		CreativeConcept: "Summer Sale",
		SpecIDs:         []string{"META_STORY", "YOUTUBE_SHORTS", "META_STORY", "GHOST"},
		SourceType:      "Motion",
	})
	if err != nil {
		t.Fatalf("BuildJobs() error = %v", err)
	}
	if len(res.Unresolved) != 1 || res.Unresolved[0] != "GHOST" {
		t.Fatalf("unresolved = %v", res.Unresolved)
	}
	if res.Summary.TotalDestinations != 2 {
		t.Fatalf("destinations = %d, want 2", res.Summary.TotalDestinations)
	}
	if len(res.Plan.Jobs) != 1 {
		t.Fatalf("jobs = %d, want 1 (both specs are 1080x1920 video)", len(res.Plan.Jobs))
	}
	if res.Plan.Jobs[0].SourceType != "Motion" {
		t.Fatalf("source type = %q, want Motion", res.Plan.Jobs[0].SourceType)
	}

	job, err := s.UpdateJobStatus(ctx, res.Plan.ID, "JOB-001", "In-Production")
	if err != nil {
		t.Fatalf("UpdateJobStatus() error = %v", err)
	}
	if job.Status != domain.JobStatusInProduction {
		t.Fatalf("status = %q", job.Status)
	}
	stored, err := s.GetPlan(ctx, res.Plan.ID)
	if err != nil {
		t.Fatalf("GetPlan() error = %v", err)
	}
	if stored.Jobs[0].Status != domain.JobStatusInProduction {
		t.Fatalf("stored status = %q", stored.Jobs[0].Status)
	}
	if _, err := s.UpdateJobStatus(ctx, res.Plan.ID, "JOB-404", "Approved"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing job error = %v, want ErrNotFound", err)
	}
}

func TestBuildJobsNothingResolved(t *testing.T) {
	_, err := newTestService().BuildJobs(context.Background(), BuildRequest{CreativeConcept: "X", SpecIDs: []string{"NOPE"}})
	if !errors.Is(err, domain.ErrNoSpecsResolved) {
		t.Fatalf("BuildJobs() error = %v, want ErrNoSpecsResolved", err)
	}
}

type brokenCatalog struct{}

func (brokenCatalog) Lookup(context.Context, string) (domain.Spec, error) {
	return domain.Spec{}, errors.New("catalog unreadable")
}

type countingRepo struct {
	*repo.Memory
	batches int
}

func (r *countingRepo) PutBatch(ctx context.Context, batch *domain.ProductionBatch) error {
	r.batches++
	return r.Memory.PutBatch(ctx, batch)
}

func TestGenerateLookupFailureStoresNoBatch(t *testing.T) {
	store := &countingRepo{Memory: repo.NewMemory()}
	s := NewService(brokenCatalog{}, store, zerolog.Nop())

	_, err := s.Generate(context.Background(), GenerateRequest{
		Strategy: domain.Strategy{SegmentID: "seg-1", TargetEnvironmentIDs: []string{"META_STORY"}},
		Concept:  domain.Concept{ID: "c-1"},
	})
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Generate() error = %v, want lookup failure", err)
	}
	if store.batches != 0 {
		t.Fatalf("PutBatch called %d times after failed lookup", store.batches)
	}
}
