package export

import "modcon/internal/domain"

const (
	defaultBackgroundColor = "#FFFFFF"
	defaultTextColor       = "#000000"
)

var flashtalkingColumns = []string{
	"Creative ID", "Creative Name", "Version", "Audience", "Placement",
	"Headline", "Body Copy", "CTA", "Image 1 URL", "Image 2 URL",
	"Video URL", "Logo URL", "Background Color", "Font Color",
	"Click URL", "Impression Tracker", "Click Tracker",
}

var storyteqColumns = []string{
	"template_id", "output_name", "variant", "audience",
	"headline", "body", "cta", "image_1", "image_2",
	"logo", "background", "font_color", "destination_url",
}

var googleStudioColumns = []string{
	"Creative Name", "Reporting Label", "Exit URL", "Audience ID",
	"Headline", "Description Line 1", "Description Line 2", "CTA Text",
	"Image Asset 1", "Image Asset 2", "Video Asset", "Logo Asset",
	"Primary Color", "Secondary Color",
}

func text(r domain.ExportRow, role domain.ModuleType) string {
	return r.Module(role).Text
}

func assetURL(r domain.ExportRow, role domain.ModuleType) string {
	return r.Module(role).AssetURL
}

func color(r domain.ExportRow, role domain.ModuleType, def string) string {
	if c := r.Module(role).Color; c != "" {
		return c
	}
	return def
}

// videoURL is the hook asset when the hook is a video.
func videoURL(r domain.ExportRow) string {
	if hook := r.Module(domain.ModuleHook); hook.Format == "video" {
		return hook.AssetURL
	}
	return ""
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func flashtalkingRecord(r domain.ExportRow) []string {
	return []string{
		r.CreativeID,
		r.CreativeName,
		r.RowID,
		first(r.AudienceName, r.AudienceID),
		first(r.PlacementName, r.PlacementID),
		first(text(r, domain.ModuleHook), text(r, domain.ModuleValueProp)),
		first(text(r, domain.ModuleValueProp), text(r, domain.ModuleProofPoint)),
		text(r, domain.ModuleCTA),
		first(assetURL(r, domain.ModuleProduct), assetURL(r, domain.ModuleBackground)),
		assetURL(r, domain.ModuleProofPoint),
		videoURL(r),
		assetURL(r, domain.ModuleLogo),
		color(r, domain.ModuleBackground, defaultBackgroundColor),
		color(r, domain.ModuleValueProp, defaultTextColor),
		r.DestinationURL,
		"",
		"",
	}
}

func storyteqRecord(r domain.ExportRow) []string {
	return []string{
		r.CreativeID,
		r.CreativeName,
		r.RowID,
		first(r.AudienceName, r.AudienceID, "Default"),
		text(r, domain.ModuleHook),
		text(r, domain.ModuleValueProp),
		text(r, domain.ModuleCTA),
		assetURL(r, domain.ModuleProduct),
		assetURL(r, domain.ModuleProofPoint),
		assetURL(r, domain.ModuleLogo),
		color(r, domain.ModuleBackground, defaultBackgroundColor),
		color(r, domain.ModuleValueProp, defaultTextColor),
		r.DestinationURL,
	}
}

func googleStudioRecord(r domain.ExportRow) []string {
	return []string{
		r.CreativeName,
		first(r.AudienceName, "Default") + "_" + first(r.PlacementName, "All"),
		r.DestinationURL,
		r.AudienceID,
		text(r, domain.ModuleHook),
		text(r, domain.ModuleValueProp),
		text(r, domain.ModuleProofPoint),
		text(r, domain.ModuleCTA),
		assetURL(r, domain.ModuleProduct),
		assetURL(r, domain.ModuleBackground),
		videoURL(r),
		assetURL(r, domain.ModuleLogo),
		color(r, domain.ModuleBackground, defaultBackgroundColor),
		color(r, domain.ModuleValueProp, defaultTextColor),
	}
}
