package feed

import (
	"strings"

	"modcon/internal/domain"
)

// ConvertOptions attach upstream identifiers to converted rows, keyed by feed row ID.
type ConvertOptions struct {
	ConceptIDs       map[string]string `json:"concept_map,omitempty"`
	ProductionJobIDs map[string]string `json:"production_job_map,omitempty"`
}

// ToExportRows flattens feed rows into the module-based export shape. Copy and
// asset slots A, B and C become hook, value_prop and proof_point.
func ToExportRows(rows []domain.FeedRow, opts ConvertOptions) []domain.ExportRow {
	out := make([]domain.ExportRow, 0, len(rows))
	for _, r := range rows {
		creativeID := r.RowID
		if r.CreativeFilename != "" {
			creativeID, _, _ = strings.Cut(r.CreativeFilename, ".")
		}
		modules := map[domain.ModuleType]domain.ModuleContent{}
		put := func(role domain.ModuleType, c domain.ModuleContent) {
			if c != (domain.ModuleContent{}) {
				modules[role] = c
			}
		}
		put(domain.ModuleHook, domain.ModuleContent{Text: r.CopySlotAText, AssetURL: r.AssetSlotAPath})
		put(domain.ModuleValueProp, domain.ModuleContent{Text: r.CopySlotBText, AssetURL: r.AssetSlotBPath})
		put(domain.ModuleProofPoint, domain.ModuleContent{Text: r.CopySlotCText, AssetURL: r.AssetSlotCPath})
		put(domain.ModuleCTA, domain.ModuleContent{Text: r.CTAButtonText})
		put(domain.ModuleLogo, domain.ModuleContent{AssetURL: r.LogoAssetPath})
		put(domain.ModuleBackground, domain.ModuleContent{Color: r.BackgroundColorHex})
		put(domain.ModuleLegal, domain.ModuleContent{Text: r.LegalDisclaimerText})

		out = append(out, domain.ExportRow{
			RowID:           r.RowID,
			CreativeID:      creativeID,
			CreativeName:    coalesce(r.ReportingLabel, r.CreativeFilename),
			Modules:         modules,
			AudienceID:      r.AudienceID,
			GeoTargeting:    r.GeoTargeting,
			PlacementID:     r.PlatformID,
			PlacementName:   r.PlacementDimension,
			Dimensions:      r.PlacementDimension,
			Format:          r.AssetFormatType,
			DestinationURL:  r.DestinationURL,
			UTMParams:       r.UTMSuffix,
			IsDefault:       r.IsDefault,
			ConceptID:       opts.ConceptIDs[r.RowID],
			ProductionJobID: opts.ProductionJobIDs[r.RowID],
		})
	}
	return out
}
