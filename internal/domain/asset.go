package domain

import "time"

// AssetStatus enumerates the lifecycle of a production asset ticket.
type AssetStatus string

const (
	AssetStatusTodo       AssetStatus = "Todo"
	AssetStatusInProgress AssetStatus = "In_Progress"
	AssetStatusReview     AssetStatus = "Review"
	AssetStatusApproved   AssetStatus = "Approved"
)

// ProductionBatch groups the assets generated for one campaign, segment and concept.
type ProductionBatch struct {
	ID                string    `json:"id"`
	CampaignID        string    `json:"campaign_id"`
	StrategySegmentID string    `json:"strategy_segment_id"`
	ConceptID         string    `json:"concept_id"`
	Name              string    `json:"batch_name"`
	CreatedAt         time.Time `json:"created_at"`
}

// ProductionAsset is one ticket to build a single file for one environment.
type ProductionAsset struct {
	ID                      string         `json:"id"`
	BatchID                 string         `json:"batch_id"`
	AssetName               string         `json:"asset_name"`
	Platform                string         `json:"platform"`
	Placement               string         `json:"placement"`
	SpecDimensions          string         `json:"spec_dimensions"`
	SpecDetails             map[string]any `json:"spec_details"`
	Status                  AssetStatus    `json:"status"`
	Assignee                string         `json:"assignee,omitempty"`
	AssetType               string         `json:"asset_type"`
	VisualDirective         string         `json:"visual_directive"`
	CopyHeadline            string         `json:"copy_headline"`
	SourceAssetRequirements string         `json:"source_asset_requirements,omitempty"`
	AdaptationInstruction   string         `json:"adaptation_instruction,omitempty"`
	FileURL                 string         `json:"file_url,omitempty"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

// Strategy is one audience row of a strategic matrix.
type Strategy struct {
	SegmentID            string   `json:"segment_id"`
	SegmentName          string   `json:"segment_name"`
	PrimaryMessagePillar string   `json:"primary_message_pillar"`
	TargetEnvironmentIDs []string `json:"target_environment_ids"`
}

// Concept is the creative idea a batch is produced from.
type Concept struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	VisualDescription string `json:"visual_description"`
	Headline          string `json:"headline,omitempty"`
}
