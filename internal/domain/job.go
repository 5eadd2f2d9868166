package domain

import "time"

// JobStatus enumerates the lifecycle of a production job.
type JobStatus string

const (
	JobStatusPending      JobStatus = "Pending"
	JobStatusInProduction JobStatus = "In-Production"
	JobStatusApproved     JobStatus = "Approved"
	JobStatusDelivered    JobStatus = "Delivered"
)

// DeliveryDestination is one placement served by the asset a job produces.
type DeliveryDestination struct {
	Platform        string `json:"platform"`
	SpecID          string `json:"spec_id"`
	FormatName      string `json:"format_name"`
	SpecialNotes    string `json:"special_notes"`
	MaxDuration     *int   `json:"max_duration"`
	Dimensions      string `json:"dimensions"`
	AspectRatio     string `json:"aspect_ratio"`
	MediaType       string `json:"media_type"`
	FileSizeLimitKB *int   `json:"file_size_limit_kb"`
}

// ProductionJob is the master ticket for one physical asset. Destinations
// sharing dimensions, file type, and concept always collapse into one job.
type ProductionJob struct {
	JobID                   string                `json:"job_id"`
	CreativeConcept         string                `json:"creative_concept"`
	AssetType               string                `json:"asset_type"`
	TechnicalSummary        string                `json:"technical_summary"`
	Destinations            []DeliveryDestination `json:"destinations"`
	Status                  JobStatus             `json:"status"`
	ProductionNotes         string                `json:"production_notes"`
	MaxDurationSeconds      *int                  `json:"max_duration_seconds"`
	FileFormat              string                `json:"file_format"`
	Codec                   string                `json:"codec,omitempty"`
	FrameRate               string                `json:"frame_rate,omitempty"`
	AudioSpec               string                `json:"audio_spec,omitempty"`
	RequiresSubtitles       bool                  `json:"requires_subtitles"`
	Round                   string                `json:"round"`
	Version                 string                `json:"version"`
	Priority                string                `json:"priority"`
	SourceType              string                `json:"source_type,omitempty"`
	CampaignName            string                `json:"campaign_name,omitempty"`
	SingleMindedProposition string                `json:"single_minded_proposition,omitempty"`
}

// JobPlan is a persisted matrix build. Job IDs are unique within a plan only.
type JobPlan struct {
	ID              string          `json:"id"`
	CampaignName    string          `json:"campaign_name,omitempty"`
	CreativeConcept string          `json:"creative_concept"`
	Jobs            []ProductionJob `json:"jobs"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Job returns the job with the given ID.
func (p *JobPlan) Job(jobID string) (*ProductionJob, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.Jobs {
		if p.Jobs[i].JobID == jobID {
			return &p.Jobs[i], true
		}
	}
	return nil, false
}
