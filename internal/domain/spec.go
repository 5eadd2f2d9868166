package domain

import "fmt"

// SpecSource records which store a Spec was resolved from.
type SpecSource string

const (
	SpecSourceCanonical SpecSource = "canonical"
	SpecSourceCatalog   SpecSource = "catalog"
	SpecSourceCustom    SpecSource = "custom"
)

// Spec is the technical profile of one platform and placement combination.
type Spec struct {
	ID                 string     `json:"id" yaml:"id"`
	Platform           string     `json:"platform" yaml:"platform"`
	Placement          string     `json:"placement" yaml:"placement"`
	FormatName         string     `json:"format_name,omitempty" yaml:"format_name,omitempty"`
	Width              int        `json:"width" yaml:"width"`
	Height             int        `json:"height" yaml:"height"`
	Dimensions         string     `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	AspectRatio        string     `json:"aspect_ratio,omitempty" yaml:"aspect_ratio,omitempty"`
	Orientation        string     `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	MediaType          string     `json:"media_type" yaml:"media_type"`
	FileType           string     `json:"file_type,omitempty" yaml:"file_type,omitempty"`
	AssetType          string     `json:"asset_type,omitempty" yaml:"asset_type,omitempty"`
	MaxDurationSeconds *int       `json:"max_duration_seconds,omitempty" yaml:"max_duration_seconds,omitempty"`
	MinDurationSeconds *int       `json:"min_duration_seconds,omitempty" yaml:"min_duration_seconds,omitempty"`
	FileSizeLimitKB    *int       `json:"file_size_limit_kb,omitempty" yaml:"file_size_limit_kb,omitempty"`
	Notes              string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	AudioGuidance      string     `json:"audio_guidance,omitempty" yaml:"audio_guidance,omitempty"`
	Source             SpecSource `json:"source,omitempty" yaml:"-"`
}

// Record flattens the spec into the loosely keyed shape accepted by the
// matrix builder. Zero values are left out so alias fallbacks apply.
func (s Spec) Record() map[string]any {
	rec := map[string]any{
		"id":         s.ID,
		"platform":   s.Platform,
		"placement":  s.Placement,
		"media_type": s.MediaType,
	}
	if s.FormatName != "" {
		rec["format_name"] = s.FormatName
	}
	if s.Dimensions != "" {
		rec["dimensions"] = s.Dimensions
	}
	if s.Width > 0 {
		rec["width"] = s.Width
	}
	if s.Height > 0 {
		rec["height"] = s.Height
	}
	if s.FileType != "" {
		rec["file_type"] = s.FileType
	}
	if s.AspectRatio != "" {
		rec["aspect_ratio"] = s.AspectRatio
	}
	if s.Orientation != "" {
		rec["orientation"] = s.Orientation
	}
	if s.Notes != "" {
		rec["notes"] = s.Notes
	}
	if s.MaxDurationSeconds != nil {
		rec["max_duration_seconds"] = *s.MaxDurationSeconds
	}
	if s.FileSizeLimitKB != nil {
		rec["file_size_limit_kb"] = *s.FileSizeLimitKB
	}
	return rec
}

// DimensionLabel returns the explicit dimensions or WxH when both sides are known.
func (s Spec) DimensionLabel() string {
	if s.Dimensions != "" {
		return s.Dimensions
	}
	if s.Width > 0 && s.Height > 0 {
		return fmt.Sprintf("%dx%d", s.Width, s.Height)
	}
	return ""
}

// IntPtr is a small helper for optional numeric spec attributes.
func IntPtr(v int) *int {
	return &v
}
