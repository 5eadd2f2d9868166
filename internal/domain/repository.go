package domain

import "context"

// BatchRepository persists production batches.
type BatchRepository interface {
	PutBatch(ctx context.Context, batch *ProductionBatch) error
	GetBatch(ctx context.Context, id string) (*ProductionBatch, error)
}

// AssetRepository persists production asset tickets.
type AssetRepository interface {
	PutAsset(ctx context.Context, asset *ProductionAsset) error
	GetAsset(ctx context.Context, id string) (*ProductionAsset, error)
	ListAssetsByBatch(ctx context.Context, batchID string) ([]ProductionAsset, error)
	// SwapAssetStatus moves the asset to status "to" only while it is still in
	// status "from". It returns ErrConflict when the asset changed meanwhile.
	SwapAssetStatus(ctx context.Context, id string, from, to AssetStatus) error
}

// JobPlanRepository persists matrix builds and their jobs.
type JobPlanRepository interface {
	PutPlan(ctx context.Context, plan *JobPlan) error
	GetPlan(ctx context.Context, id string) (*JobPlan, error)
	ListJobsByPlan(ctx context.Context, planID string) ([]ProductionJob, error)
	SwapJobStatus(ctx context.Context, planID, jobID string, from, to JobStatus) error
}

// ProductionRepository is the full persistence surface used by the services.
type ProductionRepository interface {
	BatchRepository
	AssetRepository
	JobPlanRepository
}
