package export

import (
	"encoding/json"
	"time"

	"modcon/internal/domain"
)

type jsonCondition struct {
	Type     domain.ConditionType `json:"type"`
	Operator domain.Operator      `json:"operator"`
	Value    any                  `json:"value"`
}

type jsonAction struct {
	ModuleType  domain.ModuleType `json:"module_type"`
	ModuleID    string            `json:"module_id"`
	VariationID string            `json:"variation_id"`
}

type jsonRule struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Priority       int             `json:"priority"`
	Conditions     []jsonCondition `json:"conditions"`
	ConditionLogic string          `json:"condition_logic"`
	Action         jsonAction      `json:"action"`
}

type decisioning struct {
	Rules []jsonRule `json:"rules"`
}

// activeRules returns nil when no rules were supplied, so the decisioning
// block is left out entirely.
func activeRules(rules []domain.DecisionRule) *decisioning {
	if len(rules) == 0 {
		return nil
	}
	out := &decisioning{Rules: []jsonRule{}}
	for _, r := range rules {
		if !r.IsActive {
			continue
		}
		jr := jsonRule{
			ID:             r.ID,
			Name:           r.Name,
			Priority:       r.Priority,
			Conditions:     make([]jsonCondition, 0, len(r.Conditions)),
			ConditionLogic: r.ConditionLogic,
		}
		for _, c := range r.Conditions {
			jr.Conditions = append(jr.Conditions, jsonCondition(c))
		}
		if r.Action != nil {
			jr.Action = jsonAction(*r.Action)
		}
		out.Rules = append(out.Rules, jr)
	}
	return out
}

func rulesApplied(r domain.ExportRow) []string {
	if r.RulesApplied == nil {
		return []string{}
	}
	return r.RulesApplied
}

type innovidCreative struct {
	CreativeID   string `json:"creative_id"`
	CreativeName string `json:"creative_name"`
	VersionID    string `json:"version_id"`
	Targeting    struct {
		AudienceSegment string `json:"audience_segment"`
		AudienceName    string `json:"audience_name"`
		PlacementID     string `json:"placement_id"`
		PlacementName   string `json:"placement_name"`
		Geo             string `json:"geo"`
	} `json:"targeting"`
	Content struct {
		Headline    string `json:"headline"`
		Description string `json:"description"`
		CTAText     string `json:"cta_text"`
	} `json:"content"`
	Assets struct {
		PrimaryAssetURL   string `json:"primary_asset_url"`
		SecondaryAssetURL string `json:"secondary_asset_url"`
		LogoURL           string `json:"logo_url"`
		VideoURL          string `json:"video_url"`
	} `json:"assets"`
	Styling struct {
		BackgroundColor string `json:"background_color"`
		TextColor       string `json:"text_color"`
	} `json:"styling"`
	Tracking struct {
		ClickThroughURL string `json:"click_through_url"`
		UTMParams       string `json:"utm_params"`
	} `json:"tracking"`
	Metadata struct {
		FunnelStage     string   `json:"funnel_stage"`
		IsDefault       bool     `json:"is_default"`
		RulesApplied    []string `json:"rules_applied"`
		ProductionJobID string   `json:"production_job_id"`
	} `json:"metadata"`
}

type innovidFeed struct {
	Campaign    string            `json:"campaign"`
	ExportedAt  string            `json:"exported_at"`
	Creatives   []innovidCreative `json:"creatives"`
	Decisioning *decisioning      `json:"decisioning,omitempty"`
}

func renderInnovid(rows []domain.ExportRow, rules []domain.DecisionRule, campaign string, now time.Time) ([]byte, error) {
	feed := innovidFeed{
		Campaign:    campaign,
		ExportedAt:  now.Format(time.RFC3339),
		Creatives:   make([]innovidCreative, 0, len(rows)),
		Decisioning: activeRules(rules),
	}
	for _, r := range rows {
		var c innovidCreative
		c.CreativeID = r.CreativeID
		c.CreativeName = r.CreativeName
		c.VersionID = r.RowID
		c.Targeting.AudienceSegment = r.AudienceID
		c.Targeting.AudienceName = r.AudienceName
		c.Targeting.PlacementID = r.PlacementID
		c.Targeting.PlacementName = r.PlacementName
		c.Targeting.Geo = r.GeoTargeting
		c.Content.Headline = first(text(r, domain.ModuleHook), text(r, domain.ModuleValueProp))
		c.Content.Description = text(r, domain.ModuleValueProp)
		c.Content.CTAText = text(r, domain.ModuleCTA)
		c.Assets.PrimaryAssetURL = assetURL(r, domain.ModuleProduct)
		c.Assets.SecondaryAssetURL = assetURL(r, domain.ModuleProofPoint)
		c.Assets.LogoURL = assetURL(r, domain.ModuleLogo)
		c.Assets.VideoURL = videoURL(r)
		c.Styling.BackgroundColor = color(r, domain.ModuleBackground, defaultBackgroundColor)
		c.Styling.TextColor = color(r, domain.ModuleValueProp, defaultTextColor)
		c.Tracking.ClickThroughURL = r.DestinationURL
		c.Tracking.UTMParams = r.UTMParams
		c.Metadata.FunnelStage = r.FunnelStage
		c.Metadata.IsDefault = r.IsDefault
		c.Metadata.RulesApplied = rulesApplied(r)
		c.Metadata.ProductionJobID = r.ProductionJobID
		feed.Creatives = append(feed.Creatives, c)
	}
	return json.MarshalIndent(feed, "", "  ")
}

type celtraItem struct {
	FeedID          string `json:"feedId"`
	CreativeName    string `json:"creativeName"`
	VariantName     string `json:"variantName"`
	AudienceID      string `json:"audienceId"`
	AudienceName    string `json:"audienceName"`
	PlacementID     string `json:"placementId"`
	Headline        string `json:"headline"`
	Subhead         string `json:"subhead"`
	CTALabel        string `json:"ctaLabel"`
	HeroImage       string `json:"heroImage"`
	LogoImage       string `json:"logoImage"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	ClickURL        string `json:"clickUrl"`
	CustomData      struct {
		FunnelStage     string `json:"funnel_stage"`
		ConceptID       string `json:"concept_id"`
		ProductionJobID string `json:"production_job_id"`
	} `json:"customData"`
}

type celtraFeed struct {
	FeedName    string       `json:"feedName"`
	ExportedAt  string       `json:"exportedAt"`
	Items       []celtraItem `json:"items"`
	Decisioning *decisioning `json:"decisioning,omitempty"`
}

func renderCeltra(rows []domain.ExportRow, rules []domain.DecisionRule, campaign string, now time.Time) ([]byte, error) {
	feed := celtraFeed{
		FeedName:    campaign + " Feed",
		ExportedAt:  now.Format(time.RFC3339),
		Items:       make([]celtraItem, 0, len(rows)),
		Decisioning: activeRules(rules),
	}
	for _, r := range rows {
		item := celtraItem{
			FeedID:          r.RowID,
			CreativeName:    r.CreativeName,
			VariantName:     first(r.AudienceName, "Default") + " - " + first(r.PlacementName, "All"),
			AudienceID:      r.AudienceID,
			AudienceName:    r.AudienceName,
			PlacementID:     r.PlacementID,
			Headline:        text(r, domain.ModuleHook),
			Subhead:         text(r, domain.ModuleValueProp),
			CTALabel:        text(r, domain.ModuleCTA),
			HeroImage:       assetURL(r, domain.ModuleProduct),
			LogoImage:       assetURL(r, domain.ModuleLogo),
			BackgroundColor: color(r, domain.ModuleBackground, defaultBackgroundColor),
			TextColor:       color(r, domain.ModuleValueProp, defaultTextColor),
			ClickURL:        r.DestinationURL,
		}
		item.CustomData.FunnelStage = r.FunnelStage
		item.CustomData.ConceptID = r.ConceptID
		item.CustomData.ProductionJobID = r.ProductionJobID
		feed.Items = append(feed.Items, item)
	}
	return json.MarshalIndent(feed, "", "  ")
}
