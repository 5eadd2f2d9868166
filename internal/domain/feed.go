package domain

// FeedRow is the upstream asset feed record. Its seven blocks are a contract
// with the strategy tooling; do not change field presence without a version bump.
type FeedRow struct {
	// identity
	RowID            string `json:"row_id"`
	CreativeFilename string `json:"creative_filename"`
	ReportingLabel   string `json:"reporting_label"`
	IsDefault        bool   `json:"is_default"`

	// visual assets
	AssetSlotAPath string `json:"asset_slot_a_path,omitempty"`
	AssetSlotBPath string `json:"asset_slot_b_path,omitempty"`
	AssetSlotCPath string `json:"asset_slot_c_path,omitempty"`
	LogoAssetPath  string `json:"logo_asset_path,omitempty"`

	// copy
	CopySlotAText       string `json:"copy_slot_a_text,omitempty"`
	CopySlotBText       string `json:"copy_slot_b_text,omitempty"`
	CopySlotCText       string `json:"copy_slot_c_text,omitempty"`
	LegalDisclaimerText string `json:"legal_disclaimer_text,omitempty"`

	// style
	CTAButtonText      string `json:"cta_button_text,omitempty"`
	FontColorHex       string `json:"font_color_hex,omitempty"`
	CTABgColorHex      string `json:"cta_bg_color_hex,omitempty"`
	BackgroundColorHex string `json:"background_color_hex,omitempty"`

	// technical
	PlatformID         string `json:"platform_id,omitempty"`
	PlacementDimension string `json:"placement_dimension,omitempty"`
	AssetFormatType    string `json:"asset_format_type,omitempty"`

	// targeting
	AudienceID       string `json:"audience_id,omitempty"`
	GeoTargeting     string `json:"geo_targeting,omitempty"`
	DateStart        string `json:"date_start,omitempty"`
	DateEnd          string `json:"date_end,omitempty"`
	TriggerCondition string `json:"trigger_condition,omitempty"`

	// destination and tracking
	DestinationURL string `json:"destination_url,omitempty"`
	UTMSuffix      string `json:"utm_suffix,omitempty"`
}
