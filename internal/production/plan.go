package production

import (
	"context"
	"errors"
	"fmt"

	"modcon/internal/domain"
)

const defaultAssetType = "static"

// GenerateRequest expands one strategy row and one concept into asset tickets.
type GenerateRequest struct {
	CampaignID              string          `json:"campaign_id"`
	Strategy                domain.Strategy `json:"strategy"`
	Concept                 domain.Concept  `json:"concept"`
	BatchName               string          `json:"batch_name,omitempty"`
	SourceAssetRequirements string          `json:"source_asset_requirements,omitempty"`
	AdaptationInstruction   string          `json:"adaptation_instruction,omitempty"`
}

// Plan is a batch with its assets. Skipped lists environment IDs that did not resolve.
type Plan struct {
	Batch   domain.ProductionBatch   `json:"batch"`
	Assets  []domain.ProductionAsset `json:"assets"`
	Skipped []string                 `json:"skipped_environment_ids,omitempty"`
}

// Generate creates one batch and one asset per resolvable environment ID. An
// empty environment list produces an empty batch.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Plan, error) {
	specs, skipped, err := s.resolve(ctx, req.Strategy.TargetEnvironmentIDs, "generate")
	if err != nil {
		return nil, err
	}

	batch := domain.ProductionBatch{
		ID:                s.newID(),
		CampaignID:        req.CampaignID,
		StrategySegmentID: req.Strategy.SegmentID,
		ConceptID:         req.Concept.ID,
		Name:              coalesce(req.BatchName, req.Strategy.SegmentName+" – "+req.Concept.Name),
		CreatedAt:         s.now(),
	}
	if err := s.repo.PutBatch(ctx, &batch); err != nil {
		return nil, fmt.Errorf("store batch: %w", err)
	}

	segment := coalesce(stripSpaces(req.Strategy.SegmentName), req.Strategy.SegmentID)
	plan := &Plan{Batch: batch, Assets: make([]domain.ProductionAsset, 0, len(specs)), Skipped: skipped}
	for _, spec := range specs {
		placement := coalesce(spec.Placement, spec.FormatName)
		details := spec.Record()
		if spec.AssetType != "" {
			details["asset_type"] = spec.AssetType
		}
		asset := domain.ProductionAsset{
			ID:                      s.newID(),
			BatchID:                 batch.ID,
			AssetName:               fmt.Sprintf("%s_%s_%s", segment, stripSpaces(spec.Platform), stripSpaces(placement)),
			Platform:                spec.Platform,
			Placement:               placement,
			SpecDimensions:          spec.DimensionLabel(),
			SpecDetails:             details,
			Status:                  domain.AssetStatusTodo,
			AssetType:               coalesce(spec.AssetType, defaultAssetType),
			VisualDirective:         req.Concept.VisualDescription,
			CopyHeadline:            req.Strategy.PrimaryMessagePillar,
			SourceAssetRequirements: req.SourceAssetRequirements,
			AdaptationInstruction:   req.AdaptationInstruction,
			UpdatedAt:               batch.CreatedAt,
		}
		if err := s.repo.PutAsset(ctx, &asset); err != nil {
			return nil, fmt.Errorf("store asset %s: %w", asset.AssetName, err)
		}
		plan.Assets = append(plan.Assets, asset)
	}
	assetsGenerated.Add(float64(len(plan.Assets)))

	s.logger.Info().
		Str("batch_id", batch.ID).
		Int("assets", len(plan.Assets)).
		Int("skipped", len(skipped)).
		Msg("production batch generated")
	return plan, nil
}

// GetBatch returns the batch and every asset that belongs to it.
func (s *Service) GetBatch(ctx context.Context, id string) (*Plan, error) {
	batch, err := s.repo.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	assets, err := s.repo.ListAssetsByBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []domain.ProductionAsset{}
	}
	return &Plan{Batch: *batch, Assets: assets}, nil
}

// UpdateAssetStatus moves an asset along its workflow.
func (s *Service) UpdateAssetStatus(ctx context.Context, id, status string) (*domain.ProductionAsset, error) {
	to, err := domain.ParseAssetStatus(status)
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt < swapAttempts; attempt++ {
		asset, err := s.repo.GetAsset(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := domain.CheckAssetTransition(asset.Status, to); err != nil {
			return nil, err
		}
		if asset.Status == to {
			return asset, nil
		}
		err = s.repo.SwapAssetStatus(ctx, id, asset.Status, to)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s.logger.Info().Str("asset_id", id).Str("from", string(asset.Status)).Str("to", string(to)).Msg("asset status updated")
		return s.repo.GetAsset(ctx, id)
	}
	return nil, fmt.Errorf("asset %s: %w", id, domain.ErrConflict)
}
