package export

import (
	"time"

	"modcon/internal/domain"
)

type renderFunc func(rows []domain.ExportRow, rules []domain.DecisionRule, campaign string, now time.Time) ([]byte, error)

func csvRenderer(columns []string, record func(domain.ExportRow) []string) renderFunc {
	return func(rows []domain.ExportRow, _ []domain.DecisionRule, _ string, _ time.Time) ([]byte, error) {
		return writeCSV(columns, rows, record)
	}
}

// Platform describes an export target.
type Platform struct {
	ID           domain.PlatformID `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	FeedFormat   domain.FeedFormat `json:"feed_format"`
	Supports     []string          `json:"supports"`
	Capabilities []string          `json:"capabilities"`
	// SchemaOf names the platform whose layout this one reuses.
	SchemaOf domain.PlatformID `json:"schema_of,omitempty"`

	render renderFunc
}

// Categories describes the platform categories.
var Categories = map[string]string{
	"dco":                   "Dynamic Creative Optimization - Real-time decisioning and personalization",
	"production_automation": "Production Automation - Feed-based asset generation at scale",
}

var (
	flashtalking = Platform{
		ID: domain.PlatformFlashtalking, Name: "Flashtalking", Category: "dco", FeedFormat: domain.FeedFormatCSV,
		Supports:     []string{"display", "video", "ctv", "social"},
		Capabilities: []string{"real_time_decisioning", "sequential_messaging", "ab_testing"},
		render:       csvRenderer(flashtalkingColumns, flashtalkingRecord),
	}
	innovid = Platform{
		ID: domain.PlatformInnovid, Name: "Innovid", Category: "dco", FeedFormat: domain.FeedFormatJSON,
		Supports:     []string{"display", "video", "ctv", "audio"},
		Capabilities: []string{"real_time_decisioning", "sequential_messaging", "ab_testing"},
		render:       renderInnovid,
	}
	celtra = Platform{
		ID: domain.PlatformCeltra, Name: "Celtra", Category: "production_automation", FeedFormat: domain.FeedFormatJSON,
		Supports:     []string{"display", "video", "ctv", "social"},
		Capabilities: []string{"feed_based_versioning", "dynamic_text", "dynamic_images"},
		render:       renderCeltra,
	}
	storyteq = Platform{
		ID: domain.PlatformStoryteq, Name: "Storyteq", Category: "production_automation", FeedFormat: domain.FeedFormatCSV,
		Supports:     []string{"display", "video", "social"},
		Capabilities: []string{"feed_based_versioning", "dynamic_video"},
		render:       csvRenderer(storyteqColumns, storyteqRecord),
	}
	googleStudio = Platform{
		ID: domain.PlatformGoogleStudio, Name: "Google Creative Studio", Category: "production_automation", FeedFormat: domain.FeedFormatCSV,
		Supports:     []string{"display", "video"},
		Capabilities: []string{"feed_based_versioning", "dynamic_text", "dynamic_images"},
		render:       csvRenderer(googleStudioColumns, googleStudioRecord),
	}
)

// alias reuses the layout of base under another identity.
func alias(base Platform, id domain.PlatformID, name string, capabilities ...string) Platform {
	p := base
	p.ID = id
	p.Name = name
	p.SchemaOf = base.ID
	if len(capabilities) > 0 {
		p.Capabilities = capabilities
	}
	return p
}

// platformList is ordered for display.
var platformList = []Platform{
	flashtalking,
	innovid,
	alias(flashtalking, domain.PlatformClinch, "Clinch", "real_time_decisioning", "sequential_messaging"),
	celtra,
	storyteq,
	googleStudio,
	alias(flashtalking, domain.PlatformSizmek, "Sizmek"),
	alias(innovid, domain.PlatformJivox, "Jivox"),
	alias(flashtalking, domain.PlatformAdform, "Adform"),
}

var registry = func() map[domain.PlatformID]Platform {
	m := make(map[domain.PlatformID]Platform, len(platformList))
	for _, p := range platformList {
		m[p.ID] = p
	}
	return m
}()

// Platforms lists every export target.
func Platforms() []Platform {
	return append([]Platform(nil), platformList...)
}

// Lookup returns the export target registered under id.
func Lookup(id string) (Platform, bool) {
	p, ok := registry[domain.PlatformID(id)]
	return p, ok
}
