package speclib

import "modcon/internal/domain"

// canonical is the hard-coded environment table. Keys are the symbolic
// environment IDs strategies reference directly.
var canonical = map[string]domain.Spec{
	"META_STORY": {
		ID:                 "META_STORY",
		Platform:           "Meta",
		Placement:          "Stories / Reels",
		FormatName:         "9:16 Vertical Video",
		AssetType:          "video",
		Dimensions:         "1080x1920",
		Width:              1080,
		Height:             1920,
		AspectRatio:        "9:16",
		MaxDurationSeconds: domain.IntPtr(15),
		FileType:           "mp4",
		MediaType:          "video",
		Notes:              "Leave ~250px at top and bottom free of text and critical UI.",
	},
	"META_FEED": {
		ID:                 "META_FEED",
		Platform:           "Meta",
		Placement:          "Feed / Carousel",
		FormatName:         "4:5 Vertical",
		AssetType:          "static",
		Dimensions:         "1080x1350",
		Width:              1080,
		Height:             1350,
		AspectRatio:        "4:5",
		MaxDurationSeconds: domain.IntPtr(60),
		FileType:           "mp4/jpg",
		MediaType:          "image_or_video",
		Notes:              "No strict safe zone, but design for thumb-stopping legibility.",
	},
	"DISPLAY_MPU": {
		ID:          "DISPLAY_MPU",
		Platform:    "Google Display",
		Placement:   "MPU",
		FormatName:  "Medium Rectangle",
		AssetType:   "html5",
		Dimensions:  "300x250",
		Width:       300,
		Height:      250,
		AspectRatio: "1.2:1",
		FileType:    "html5/jpg",
		MediaType:   "html5",
		Notes:       "None; keep copy large and minimal given limited area.",
	},
	"DISPLAY_LEADERBOARD": {
		ID:          "DISPLAY_LEADERBOARD",
		Platform:    "Google Display",
		Placement:   "Leaderboard",
		FormatName:  "728x90 Banner",
		AssetType:   "html5",
		Dimensions:  "728x90",
		Width:       728,
		Height:      90,
		AspectRatio: "8:1",
		FileType:    "html5/jpg",
		MediaType:   "html5",
		Notes:       "Very limited height; prioritize logo + single line CTA.",
	},
	"YOUTUBE_SHORTS": {
		ID:                 "YOUTUBE_SHORTS",
		Platform:           "YouTube",
		Placement:          "Shorts",
		FormatName:         "9:16 Vertical Video",
		AssetType:          "video",
		Dimensions:         "1080x1920",
		Width:              1080,
		Height:             1920,
		AspectRatio:        "9:16",
		MaxDurationSeconds: domain.IntPtr(60),
		FileType:           "mp4",
		MediaType:          "video",
		Notes:              "Avoid UI overlays at bottom and right-hand side.",
	},
	"LINKEDIN_FEED": {
		ID:                 "LINKEDIN_FEED",
		Platform:           "LinkedIn",
		Placement:          "Feed",
		FormatName:         "1:1 / 4:5 Image or Video",
		AssetType:          "static",
		Dimensions:         "1200x1200 or 1080x1350",
		AspectRatio:        "1:1 / 4:5",
		MaxDurationSeconds: domain.IntPtr(60),
		FileType:           "mp4/jpg",
		MediaType:          "image_or_video",
		Notes:              "B2B context; favor clarity, legible charts, and restrained motion.",
	},
}

// Environment resolves a symbolic environment ID from the canonical table only.
func Environment(id string) (domain.Spec, bool) {
	spec, ok := canonical[id]
	if !ok {
		return domain.Spec{}, false
	}
	spec.Source = domain.SpecSourceCanonical
	return spec, true
}

// EnvironmentIDs lists the canonical environment IDs.
func EnvironmentIDs() []string {
	return []string{"META_STORY", "META_FEED", "DISPLAY_MPU", "DISPLAY_LEADERBOARD", "YOUTUBE_SHORTS", "LINKEDIN_FEED"}
}
