// Package fieldalias resolves logical fields from loosely keyed input rows.
//
// Upstream payloads name the same attribute in several ways (dimensions vs
// width and height, audience vs Audience vs target_audience). Every such
// attribute is declared here exactly once as a Field with an ordered alias
// chain. Resolution takes the first alias holding a truthy value: empty
// strings, zero numbers, false, nil and empty collections are skipped.
package fieldalias

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is one loosely keyed input row, usually decoded from JSON.
type Record map[string]any

// Field is a logical attribute and the keys it may appear under, in priority order.
type Field struct {
	Name    string
	Aliases []string
}

func field(name string, aliases ...string) Field {
	return Field{Name: name, Aliases: aliases}
}

// Spec selection fields.
var (
	Dimensions    = field("dimensions", "dimensions")
	Width         = field("width", "width")
	Height        = field("height", "height")
	FileType      = field("file_type", "file_type", "media_type")
	AspectRatio   = field("aspect_ratio", "aspect_ratio", "orientation")
	PlatformName  = field("platform", "platform_name", "platform")
	SpecID        = field("spec_id", "id", "spec_id")
	FormatName    = field("format_name", "format_name", "placement")
	SafeZoneNotes = field("notes", "safe_zone_notes", "notes", "safe_zone")
	MaxDuration   = field("max_duration", "max_duration", "max_duration_seconds")
	FileSizeLimit = field("file_size_limit_kb", "file_size_limit_kb")
)

// Feed validation fields. The validator checks every alias that is present,
// not only the first truthy one.
var (
	RowID    = field("row_id", "row_id", "creative_id", "feedId")
	Headline = field("headline", "headline", "Headline", "copy_slot_a_text")
	Body     = field("body", "body", "description", "Body Copy", "copy_slot_b_text")
	CTA      = field("cta", "cta", "cta_text", "CTA", "cta_button_text", "ctaLabel")
	ClickURL = field("click_url", "click_url", "Click URL", "destination_url", "clickUrl", "click_through_url", "Exit URL")
	Image    = field("image", "asset_slot_a_path", "asset_slot_b_path", "asset_slot_c_path", "Image 1 URL", "Image 2 URL", "heroImage", "image_1", "image_2")
	Color    = field("color", "font_color_hex", "cta_bg_color_hex", "background_color_hex", "Background Color", "Font Color", "textColor", "backgroundColor")
)

// Feed generation fields.
var (
	StrategyAudience = field("audience", "audience", "Audience", "target_audience")
	MediaAudience    = field("audience", "Target Audience", "Audience", "audience", "Segment", "segment")
	StrategyHeadline = field("headline", "headline", "Headline", "message", "Message")
	AssetImageURL    = field("image_url", "image_url", "Image_URL", "asset_url", "Asset_URL")
	AssetExitURL     = field("exit_url", "exit_url", "Exit_URL", "click_url", "Click_URL")
	ConceptSlug      = field("concept_slug", "concept_slug", "audience")
	MediaDimension   = field("dimension", "Size", "Dimension")
	MediaFormat      = field("format", "Format")
	MediaPlatform    = field("platform", "Platform")
	MediaPlacement   = field("placement", "Placement")
	MediaAssetType   = field("asset_type", "Asset_Type")
	MediaGeo         = field("geo", "Geo")
	MediaTrigger     = field("trigger", "Trigger")
	MediaUTM         = field("utm", "UTM")
	MediaStartDate   = field("start_date", "Start_Date")
	MediaEndDate     = field("end_date", "End_Date")
)

// Lookup returns the first truthy value of f and the key it was found under.
func (r Record) Lookup(f Field) (any, string, bool) {
	for _, key := range f.Aliases {
		if v, ok := r[key]; ok && Truthy(v) {
			return v, key, true
		}
	}
	return nil, "", false
}

// Text resolves f as a string. Numbers are rendered without a trailing ".0".
func (r Record) Text(f Field) string {
	v, _, ok := r.Lookup(f)
	if !ok {
		return ""
	}
	return Stringify(v)
}

// TextOr resolves f and falls back to def when nothing truthy is present.
func (r Record) TextOr(f Field, def string) string {
	if s := r.Text(f); s != "" {
		return s
	}
	return def
}

// Int resolves f as an integer. An alias holding a non-numeric value is
// skipped like an absent one.
func (r Record) Int(f Field) (int, bool) {
	for _, key := range f.Aliases {
		v, ok := r[key]
		if !ok || !Truthy(v) {
			continue
		}
		if n, ok := toInt(v); ok {
			return n, true
		}
	}
	return 0, false
}

// Present returns the aliases of f that appear in r, truthy or not, in order.
func (r Record) Present(f Field) []string {
	var keys []string
	for _, key := range f.Aliases {
		if _, ok := r[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// String returns the value stored under key rendered as a string.
func (r Record) String(key string) string {
	return Stringify(r[key])
}

// Truthy mirrors the usual "is this value set" test for decoded JSON values.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	case float32:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case int32:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	}
	return true
}

// Stringify renders a decoded JSON value as text.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return Stringify(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	}
	return fmt.Sprint(v)
}

func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case int32:
		return int(val), true
	case float64:
		return int(val), true
	case float32:
		return int(val), true
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i), true
		}
		if f, err := val.Float64(); err == nil {
			return int(f), true
		}
	case string:
		s := strings.TrimSpace(val)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
	}
	return 0, false
}
