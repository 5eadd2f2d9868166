package feed

import (
	"fmt"
	"strings"

	"modcon/internal/domain"
)

// Constraints are the feed limits one DCO platform enforces.
type Constraints struct {
	Platform              string   `json:"platform"`
	MaxHeadlineLength     int      `json:"max_headline_length"`
	MaxBodyLength         int      `json:"max_body_length"`
	MaxCTALength          int      `json:"max_cta_length"`
	RequiredFields        []string `json:"required_fields"`
	ImageFormats          []string `json:"image_formats"`
	VideoFormats          []string `json:"video_formats,omitempty"`
	MaxFileSizeKB         int      `json:"max_file_size_kb,omitempty"`
	MaxVideoLengthSeconds int      `json:"max_video_length_seconds,omitempty"`
}

var platformOrder = []string{"flashtalking", "innovid", "celtra", "storyteq", "google_studio"}

var constraintTable = map[string]Constraints{
	"flashtalking": {
		MaxHeadlineLength: 40,
		MaxBodyLength:     90,
		MaxCTALength:      25,
		RequiredFields:    []string{"creative_id", "creative_name", "headline", "click_url"},
		ImageFormats:      []string{"jpg", "jpeg", "png", "gif"},
		VideoFormats:      []string{"mp4", "webm"},
		MaxFileSizeKB:     200,
	},
	"innovid": {
		MaxHeadlineLength:     50,
		MaxBodyLength:         120,
		MaxCTALength:          30,
		RequiredFields:        []string{"creative_id", "creative_name", "click_through_url"},
		ImageFormats:          []string{"jpg", "jpeg", "png"},
		VideoFormats:          []string{"mp4"},
		MaxVideoLengthSeconds: 60,
	},
	"celtra": {
		MaxHeadlineLength: 45,
		MaxBodyLength:     100,
		MaxCTALength:      20,
		RequiredFields:    []string{"feedId", "creativeName"},
		ImageFormats:      []string{"jpg", "jpeg", "png", "gif", "svg"},
		MaxFileSizeKB:     300,
	},
	"storyteq": {
		MaxHeadlineLength: 60,
		MaxBodyLength:     150,
		MaxCTALength:      30,
		RequiredFields:    []string{"template_id", "output_name"},
		ImageFormats:      []string{"jpg", "jpeg", "png"},
		VideoFormats:      []string{"mp4", "mov"},
	},
	"google_studio": {
		MaxHeadlineLength: 30,
		MaxBodyLength:     90,
		MaxCTALength:      15,
		RequiredFields:    []string{"Creative Name", "Exit URL"},
		ImageFormats:      []string{"jpg", "jpeg", "png", "gif"},
		MaxFileSizeKB:     150,
	},
}

// Platforms lists the platforms feeds can be validated for.
func Platforms() []string {
	return append([]string(nil), platformOrder...)
}

// ConstraintsFor returns the limits of platform.
func ConstraintsFor(platform string) (Constraints, error) {
	c, ok := constraintTable[platform]
	if !ok {
		return Constraints{}, fmt.Errorf("feed platform %q: %w", platform, domain.ErrUnsupportedPlatform)
	}
	c.Platform = platform
	return c, nil
}

func (c Constraints) requires(field string) bool {
	for _, f := range c.RequiredFields {
		if f == field {
			return true
		}
	}
	return false
}

func (c Constraints) allowsImage(ext string) bool {
	for _, f := range c.ImageFormats {
		if f == ext {
			return true
		}
	}
	return false
}

func oneOf(values []string) string {
	return strings.Join(values, ", ")
}
