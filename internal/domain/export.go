package domain

import "encoding/json"

// ModuleType names the role a piece of content plays in a dynamic creative.
type ModuleType string

const (
	ModuleHook       ModuleType = "hook"
	ModuleValueProp  ModuleType = "value_prop"
	ModuleProofPoint ModuleType = "proof_point"
	ModuleProduct    ModuleType = "product"
	ModuleOffer      ModuleType = "offer"
	ModuleCTA        ModuleType = "cta"
	ModuleBackground ModuleType = "background"
	ModuleLogo       ModuleType = "logo"
	ModuleLegal      ModuleType = "legal"
	ModuleAudio      ModuleType = "audio"
	ModuleEndCard    ModuleType = "end_card"
	ModuleTransition ModuleType = "transition"
)

// ModuleContent is the rendered content for one module role.
type ModuleContent struct {
	Text     string `json:"text,omitempty"`
	AssetURL string `json:"asset_url,omitempty"`
	Color    string `json:"color,omitempty"`
	Format   string `json:"format,omitempty"`
}

// ExportRow is a platform-agnostic creative row.
type ExportRow struct {
	RowID           string                       `json:"row_id"`
	CreativeID      string                       `json:"creative_id"`
	CreativeName    string                       `json:"creative_name"`
	Modules         map[ModuleType]ModuleContent `json:"modules"`
	AudienceID      string                       `json:"audience_id,omitempty"`
	AudienceName    string                       `json:"audience_name,omitempty"`
	FunnelStage     string                       `json:"funnel_stage,omitempty"`
	PlacementID     string                       `json:"placement_id,omitempty"`
	PlacementName   string                       `json:"placement_name,omitempty"`
	GeoTargeting    string                       `json:"geo_targeting,omitempty"`
	RulesApplied    []string                     `json:"rules_applied,omitempty"`
	IsDefault       bool                         `json:"is_default"`
	Dimensions      string                       `json:"dimensions,omitempty"`
	Format          string                       `json:"format,omitempty"`
	DestinationURL  string                       `json:"destination_url,omitempty"`
	UTMParams       string                       `json:"utm_params,omitempty"`
	ProductionJobID string                       `json:"production_job_id,omitempty"`
	ConceptID       string                       `json:"concept_id,omitempty"`
}

// Module returns the content for role, or the zero value when absent.
func (r ExportRow) Module(role ModuleType) ModuleContent {
	return r.Modules[role]
}

// HasModule reports whether the row carries any content for role.
func (r ExportRow) HasModule(role ModuleType) bool {
	_, ok := r.Modules[role]
	return ok
}

// ConditionType enumerates what a decisioning condition inspects.
type ConditionType string

const (
	ConditionAudience    ConditionType = "audience"
	ConditionFunnelStage ConditionType = "funnel_stage"
	ConditionTrigger     ConditionType = "trigger"
	ConditionPlatform    ConditionType = "platform"
	ConditionPlacement   ConditionType = "placement"
	ConditionDaypart     ConditionType = "daypart"
	ConditionGeo         ConditionType = "geo"
	ConditionWeather     ConditionType = "weather"
	ConditionCustom      ConditionType = "custom"
)

// ConditionTypes lists every condition type in declaration order.
func ConditionTypes() []ConditionType {
	return []ConditionType{
		ConditionAudience, ConditionFunnelStage, ConditionTrigger, ConditionPlatform,
		ConditionPlacement, ConditionDaypart, ConditionGeo, ConditionWeather, ConditionCustom,
	}
}

// Operator enumerates comparison operators for decisioning conditions.
type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "not_equals"
	OperatorContains    Operator = "contains"
	OperatorNotContains Operator = "not_contains"
	OperatorIn          Operator = "in"
	OperatorNotIn       Operator = "not_in"
	OperatorGreaterThan Operator = "greater_than"
	OperatorLessThan    Operator = "less_than"
)

// Operators lists every operator in declaration order.
func Operators() []Operator {
	return []Operator{
		OperatorEquals, OperatorNotEquals, OperatorContains, OperatorNotContains,
		OperatorIn, OperatorNotIn, OperatorGreaterThan, OperatorLessThan,
	}
}

// RuleCondition is a single predicate of a decisioning rule.
type RuleCondition struct {
	Type     ConditionType `json:"type"`
	Operator Operator      `json:"operator"`
	Value    any           `json:"value"`
}

// RuleAction selects the module variation a matching rule serves.
type RuleAction struct {
	ModuleType  ModuleType `json:"module_type"`
	ModuleID    string     `json:"module_id"`
	VariationID string     `json:"variation_id,omitempty"`
}

// DecisionRule maps targeting conditions to a module variation.
type DecisionRule struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Priority       int             `json:"priority"`
	Conditions     []RuleCondition `json:"conditions"`
	ConditionLogic string          `json:"condition_logic"`
	Action         *RuleAction     `json:"action"`
	IsActive       bool            `json:"is_active"`
}

// UnmarshalJSON applies the defaults for omitted priority, logic and active flag.
func (r *DecisionRule) UnmarshalJSON(data []byte) error {
	type rawRule DecisionRule
	out := rawRule{Priority: 100, ConditionLogic: "AND", IsActive: true}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*r = DecisionRule(out)
	return nil
}

// PlatformID identifies a DCO platform feeds are exported to.
type PlatformID string

const (
	PlatformFlashtalking PlatformID = "flashtalking"
	PlatformInnovid      PlatformID = "innovid"
	PlatformClinch       PlatformID = "clinch"
	PlatformCeltra       PlatformID = "celtra"
	PlatformStoryteq     PlatformID = "storyteq"
	PlatformGoogleStudio PlatformID = "google_studio"
	PlatformSizmek       PlatformID = "sizmek"
	PlatformJivox        PlatformID = "jivox"
	PlatformAdform       PlatformID = "adform"
)

// FeedFormat is the serialization used for an export.
type FeedFormat string

const (
	FeedFormatCSV  FeedFormat = "csv"
	FeedFormatJSON FeedFormat = "json"
)
