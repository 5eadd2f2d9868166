package domain

import (
	"fmt"
	"slices"
	"time"
)

// ModuleFormat is the medium a module is produced in.
type ModuleFormat string

const (
	ModuleFormatText   ModuleFormat = "text"
	ModuleFormatImage  ModuleFormat = "image"
	ModuleFormatVideo  ModuleFormat = "video"
	ModuleFormatAudio  ModuleFormat = "audio"
	ModuleFormatHTML5  ModuleFormat = "html5"
	ModuleFormatLottie ModuleFormat = "lottie"
)

// SourceType says where the material for a module comes from.
type SourceType string

const (
	SourceNewShoot      SourceType = "new_shoot"
	SourceExistingAsset SourceType = "existing_asset"
	SourceUGC           SourceType = "ugc"
	SourceStock         SourceType = "stock"
	SourceAIGenerated   SourceType = "ai_generated"
	SourceTemplate      SourceType = "template"
)

// FunnelStage is the audience stage a module or rule targets.
type FunnelStage string

const (
	FunnelAwareness     FunnelStage = "awareness"
	FunnelConsideration FunnelStage = "consideration"
	FunnelConversion    FunnelStage = "conversion"
	FunnelRetention     FunnelStage = "retention"
)

var (
	moduleTypes = []ModuleType{
		ModuleHook, ModuleValueProp, ModuleProofPoint, ModuleProduct, ModuleOffer, ModuleCTA,
		ModuleBackground, ModuleLogo, ModuleLegal, ModuleAudio, ModuleEndCard, ModuleTransition,
	}
	moduleFormats = []ModuleFormat{
		ModuleFormatText, ModuleFormatImage, ModuleFormatVideo, ModuleFormatAudio, ModuleFormatHTML5, ModuleFormatLottie,
	}
	sourceTypes = []SourceType{
		SourceNewShoot, SourceExistingAsset, SourceUGC, SourceStock, SourceAIGenerated, SourceTemplate,
	}
	funnelStages = []FunnelStage{FunnelAwareness, FunnelConsideration, FunnelConversion, FunnelRetention}
)

func ModuleTypes() []ModuleType {
	return slices.Clone(moduleTypes)
}

func ModuleFormats() []ModuleFormat {
	return slices.Clone(moduleFormats)
}

func SourceTypes() []SourceType {
	return slices.Clone(sourceTypes)
}

func FunnelStages() []FunnelStage {
	return slices.Clone(funnelStages)
}

// ModuleSpecs holds the technical limits of one module.
type ModuleSpecs struct {
	Dimensions     string `json:"dimensions,omitempty"`
	Duration       string `json:"duration,omitempty"`
	CharacterLimit *int   `json:"character_limit,omitempty"`
	FileSizeLimit  string `json:"file_size_limit,omitempty"`
	FrameRate      *int   `json:"frame_rate,omitempty"`
	AudioSpecs     string `json:"audio_specs,omitempty"`
}

// ModuleVariation is one targeted version of a module.
type ModuleVariation struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	AudienceIDs  []string    `json:"audience_ids"`
	FunnelStage  FunnelStage `json:"funnel_stage,omitempty"`
	Trigger      string      `json:"trigger,omitempty"`
	AssetURL     string      `json:"asset_url,omitempty"`
	TextContent  string      `json:"text_content,omitempty"`
	Status       string      `json:"status"`
	ProductionID string      `json:"production_job_id,omitempty"`
}

// Module is a reusable creative building block in the module library.
type Module struct {
	ID          string            `json:"id"`
	Type        ModuleType        `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Variations  []ModuleVariation `json:"variations"`
	Format      ModuleFormat      `json:"format"`
	Specs       ModuleSpecs       `json:"specs"`
	SourceType  SourceType        `json:"source_type"`
	ReuseCount  int               `json:"reuse_count"`
	UsedInCells []string          `json:"used_in_cells"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ParseModuleType validates a raw module type.
func ParseModuleType(raw string) (ModuleType, error) {
	if t := ModuleType(raw); slices.Contains(moduleTypes, t) {
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown module type %q", ErrInvalidModule, raw)
}

// ParseModuleFormat validates a raw module format.
func ParseModuleFormat(raw string) (ModuleFormat, error) {
	if f := ModuleFormat(raw); slices.Contains(moduleFormats, f) {
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown module format %q", ErrInvalidModule, raw)
}

// ParseSourceType validates a raw source type.
func ParseSourceType(raw string) (SourceType, error) {
	if s := SourceType(raw); slices.Contains(sourceTypes, s) {
		return s, nil
	}
	return "", fmt.Errorf("%w: unknown source type %q", ErrInvalidModule, raw)
}

// TicketStatus is a step of the production ticket board.
type TicketStatus string

const (
	TicketBacklog    TicketStatus = "backlog"
	TicketReady      TicketStatus = "ready"
	TicketInProgress TicketStatus = "in_progress"
	TicketInReview   TicketStatus = "in_review"
	TicketApproved   TicketStatus = "approved"
	TicketDelivered  TicketStatus = "delivered"
)

// TicketPriority ranks production tickets.
type TicketPriority string

const (
	PriorityCritical TicketPriority = "critical"
	PriorityHigh     TicketPriority = "high"
	PriorityMedium   TicketPriority = "medium"
	PriorityLow      TicketPriority = "low"
)

// ticketTransitions lists next states forward first, then the step back.
var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketBacklog:    {TicketReady},
	TicketReady:      {TicketInProgress, TicketBacklog},
	TicketInProgress: {TicketInReview, TicketReady},
	TicketInReview:   {TicketApproved, TicketInProgress},
	TicketApproved:   {TicketDelivered, TicketInReview},
	TicketDelivered:  {},
}

// TicketStatuses returns the board columns in order.
func TicketStatuses() []TicketStatus {
	return []TicketStatus{TicketBacklog, TicketReady, TicketInProgress, TicketInReview, TicketApproved, TicketDelivered}
}

// TicketPriorities returns priorities from most to least urgent.
func TicketPriorities() []TicketPriority {
	return []TicketPriority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}
}

// TicketWorkflow lists the allowed next states per ticket status.
func TicketWorkflow() map[TicketStatus][]TicketStatus {
	out := make(map[TicketStatus][]TicketStatus, len(ticketTransitions))
	for from, next := range ticketTransitions {
		out[from] = slices.Clone(next)
	}
	return out
}

// CheckTicketTransition returns nil when from -> to is allowed.
func CheckTicketTransition(from, to TicketStatus) error {
	if from == to || slices.Contains(ticketTransitions[from], to) {
		return nil
	}
	return &TransitionError{Entity: "ticket", From: string(from), To: string(to)}
}
