package feed

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"modcon/internal/domain"
	"modcon/internal/fieldalias"
)

const (
	defaultCTA         = "Learn More"
	defaultFontColor   = "#FFFFFF"
	defaultCTAColor    = "#14b8a6"
	defaultBackground  = "#020617"
	defaultPlatformID  = "META"
	defaultMediaFormat = "DC"
)

// Input holds the three upstream tables a DCO feed is assembled from.
type Input struct {
	AudienceStrategy []fieldalias.Record `json:"audience_strategy"`
	Assets           []fieldalias.Record `json:"asset_list"`
	MediaPlan        []fieldalias.Record `json:"media_plan_rows"`
}

// GenerateOptions tune Generate. Zero values are fine.
type GenerateOptions struct {
	// DefaultGeo fills geo targeting for media rows that carry none.
	DefaultGeo string
	NewID      func() string
}

// Generate walks the media plan and produces one feed row per media row,
// joined to the strategy and asset rows of the same audience. Audience names
// are matched case-insensitively with spaces folded to underscores.
func Generate(in Input, opts GenerateOptions) []domain.FeedRow {
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	strategies := indexByAudience(in.AudienceStrategy)
	assets := indexByAudience(in.Assets)

	rows := make([]domain.FeedRow, 0, len(in.MediaPlan))
	for idx, media := range in.MediaPlan {
		audience := audienceOf(media, fieldalias.MediaAudience)
		strategy := strategies[normalizeKey(audience)]
		asset := assets[normalizeKey(audience)]

		headline := strategy.Text(fieldalias.StrategyHeadline)
		imageURL := asset.Text(fieldalias.AssetImageURL)
		exitURL := asset.Text(fieldalias.AssetExitURL)

		concept := noSpaces(coalesce(strategy.Text(fieldalias.ConceptSlug), audience, "Concept"))
		message := noSpaces(coalesce(headline, "Message"))
		dimension := media.Text(fieldalias.MediaDimension)
		format := media.TextOr(fieldalias.MediaFormat, defaultMediaFormat)

		rows = append(rows, domain.FeedRow{
			RowID:            newID(),
			CreativeFilename: fmt.Sprintf("%s_%s_%s_%s_v1", concept, message, coalesce(dimension, "NA"), format),
			ReportingLabel:   fmt.Sprintf("Audience: %s | Msg: %s", coalesce(audience, "N/A"), coalesce(headline, "N/A")),
			IsDefault:        idx == 0,

			AssetSlotAPath: coalesce(imageURL, exitURL),

			CopySlotAText:       headline,
			CopySlotBText:       strategy.String("subhead"),
			CopySlotCText:       strategy.String("cta_copy"),
			LegalDisclaimerText: strategy.String("legal_disclaimer"),

			CTAButtonText:      coalesce(strategy.String("cta_label"), defaultCTA),
			FontColorHex:       defaultFontColor,
			CTABgColorHex:      defaultCTAColor,
			BackgroundColorHex: defaultBackground,

			PlatformID:         media.TextOr(fieldalias.MediaPlatform, defaultPlatformID),
			PlacementDimension: coalesce(dimension, media.Text(fieldalias.MediaPlacement)),
			AssetFormatType:    assetFormatType(media, asset, format),

			AudienceID:       audience,
			GeoTargeting:     coalesce(media.Text(fieldalias.MediaGeo), opts.DefaultGeo),
			DateStart:        media.Text(fieldalias.MediaStartDate),
			DateEnd:          media.Text(fieldalias.MediaEndDate),
			TriggerCondition: media.Text(fieldalias.MediaTrigger),

			DestinationURL: exitURL,
			UTMSuffix:      media.Text(fieldalias.MediaUTM),
		})
	}
	return rows
}

func indexByAudience(rows []fieldalias.Record) map[string]fieldalias.Record {
	out := make(map[string]fieldalias.Record, len(rows))
	for _, row := range rows {
		if aud := audienceOf(row, fieldalias.StrategyAudience); aud != "" {
			out[normalizeKey(aud)] = row
		}
	}
	return out
}

// audienceOf only accepts string audiences; numeric labels are not joinable.
func audienceOf(row fieldalias.Record, f fieldalias.Field) string {
	v, _, ok := row.Lookup(f)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func assetFormatType(media, asset fieldalias.Record, format string) string {
	if t := media.Text(fieldalias.MediaAssetType); t != "" {
		return t
	}
	if t := asset.String("asset_type"); t != "" {
		return t
	}
	if strings.Contains(strings.ToLower(format), "video") {
		return "VIDEO"
	}
	return "STATIC"
}

func normalizeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func noSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
