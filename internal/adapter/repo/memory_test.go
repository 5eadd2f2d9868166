package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"modcon/internal/domain"
)

func TestMemoryAssetsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := m.PutBatch(ctx, &domain.ProductionBatch{ID: "b1"}); err != nil {
		t.Fatalf("PutBatch() error = %v", err)
	}
	for _, id := range []string{"a3", "a1", "a2"} {
		if err := m.PutAsset(ctx, &domain.ProductionAsset{ID: id, BatchID: "b1", Status: domain.AssetStatusTodo}); err != nil {
			t.Fatalf("PutAsset(%s) error = %v", id, err)
		}
	}
	assets, err := m.ListAssetsByBatch(ctx, "b1")
	if err != nil {
		t.Fatalf("ListAssetsByBatch() error = %v", err)
	}
	var got []string
	for _, a := range assets {
		got = append(got, a.ID)
	}
	if len(got) != 3 || got[0] != "a3" || got[2] != "a2" {
		t.Fatalf("order = %v, want [a3 a1 a2]", got)
	}
}

func TestMemoryPutAssetUnknownBatch(t *testing.T) {
	err := NewMemory().PutAsset(context.Background(), &domain.ProductionAsset{ID: "a1", BatchID: "missing"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("PutAsset() error = %v, want ErrNotFound", err)
	}
}

func TestMemorySwapAssetStatus(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	swappedAt := time.Date(2026, 5, 2, 10, 30, 0, 0, time.UTC)
	m.now = func() time.Time { return swappedAt }
	_ = m.PutBatch(ctx, &domain.ProductionBatch{ID: "b1"})
	_ = m.PutAsset(ctx, &domain.ProductionAsset{ID: "a1", BatchID: "b1", Status: domain.AssetStatusTodo, UpdatedAt: swappedAt.Add(-time.Hour)})

	if err := m.SwapAssetStatus(ctx, "a1", domain.AssetStatusReview, domain.AssetStatusApproved); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("stale swap error = %v, want ErrConflict", err)
	}
	if err := m.SwapAssetStatus(ctx, "a1", domain.AssetStatusTodo, domain.AssetStatusInProgress); err != nil {
		t.Fatalf("swap error = %v", err)
	}
	a, _ := m.GetAsset(ctx, "a1")
	if a.Status != domain.AssetStatusInProgress {
		t.Fatalf("status = %q, want In_Progress", a.Status)
	}
	if !a.UpdatedAt.Equal(swappedAt) {
		t.Fatalf("UpdatedAt = %v, want %v", a.UpdatedAt, swappedAt)
	}
}

func TestMemoryPlanIsCopied(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	plan := &domain.JobPlan{ID: "p1", Jobs: []domain.ProductionJob{{JobID: "JOB-001", Status: domain.JobStatusPending}}}
	if err := m.PutPlan(ctx, plan); err != nil {
		t.Fatalf("PutPlan() error = %v", err)
	}
	plan.Jobs[0].Status = domain.JobStatusDelivered

	if err := m.SwapJobStatus(ctx, "p1", "JOB-001", domain.JobStatusPending, domain.JobStatusInProduction); err != nil {
		t.Fatalf("SwapJobStatus() error = %v", err)
	}
	got, _ := m.GetPlan(ctx, "p1")
	if got.Jobs[0].Status != domain.JobStatusInProduction {
		t.Fatalf("status = %q, want In-Production", got.Jobs[0].Status)
	}
	if err := m.SwapJobStatus(ctx, "p1", "JOB-009", domain.JobStatusPending, domain.JobStatusInProduction); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown job error = %v, want ErrNotFound", err)
	}
}
