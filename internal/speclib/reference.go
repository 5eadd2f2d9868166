package speclib

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"modcon/internal/domain"
)

// ModuleKind describes one module type of the creative taxonomy.
type ModuleKind struct {
	Label            string   `json:"label"`
	Description      string   `json:"description"`
	Color            string   `json:"color"`
	TypicalDuration  string   `json:"typical_duration,omitempty"`
	CommonVariations []string `json:"common_variations"`
}

// ModuleLibrary is the taxonomy plus the vocabularies a module is built from.
type ModuleLibrary struct {
	Taxonomy     map[domain.ModuleType]ModuleKind `json:"taxonomy"`
	Formats      []domain.ModuleFormat            `json:"formats"`
	SourceTypes  []domain.SourceType              `json:"source_types"`
	FunnelStages []domain.FunnelStage             `json:"funnel_stages"`
}

var moduleTaxonomy = map[domain.ModuleType]ModuleKind{
	domain.ModuleHook: {
		Label: "Hook", Description: "Opening attention-grabber in first 3 seconds", Color: "purple", TypicalDuration: "2-3s",
		CommonVariations: []string{"Emotional", "Question", "Statistic", "Problem", "Bold claim"},
	},
	domain.ModuleValueProp: {
		Label: "Value Proposition", Description: "Core benefit or differentiator", Color: "blue",
		CommonVariations: []string{"Functional", "Emotional", "Social", "Financial"},
	},
	domain.ModuleProofPoint: {
		Label: "Proof Point", Description: "Evidence, testimonials, or social proof", Color: "green",
		CommonVariations: []string{"Testimonial", "Statistic", "Award", "Review", "Case study"},
	},
	domain.ModuleProduct: {
		Label: "Product", Description: "Product visualization or demonstration", Color: "orange",
		CommonVariations: []string{"Hero shot", "In-use", "Detail", "Comparison", "Unboxing"},
	},
	domain.ModuleOffer: {
		Label: "Offer", Description: "Promotional offer, pricing, or incentive", Color: "red",
		CommonVariations: []string{"Discount", "Bundle", "Free trial", "Limited time", "Exclusive"},
	},
	domain.ModuleCTA: {
		Label: "CTA", Description: "Call to action driving next step", Color: "pink",
		CommonVariations: []string{"Shop now", "Learn more", "Sign up", "Get started", "Book now"},
	},
	domain.ModuleBackground: {
		Label: "Background", Description: "Visual backdrop or environment", Color: "slate",
		CommonVariations: []string{"Solid", "Gradient", "Lifestyle", "Abstract", "Brand pattern"},
	},
	domain.ModuleLogo: {
		Label: "Logo", Description: "Brand logo treatment", Color: "slate",
		CommonVariations: []string{"Primary", "Reversed", "Stacked", "Horizontal", "Animated"},
	},
	domain.ModuleLegal: {
		Label: "Legal", Description: "Disclaimers and compliance text", Color: "slate",
		CommonVariations: []string{"Standard", "Industry-specific", "Promotional", "Financial"},
	},
	domain.ModuleAudio: {
		Label: "Audio", Description: "Voiceover, music, or sound effects", Color: "cyan",
		CommonVariations: []string{"Voiceover", "Music bed", "SFX", "Sonic logo"},
	},
	domain.ModuleEndCard: {
		Label: "End Card", Description: "Closing frame with brand lockup", Color: "indigo", TypicalDuration: "2-3s",
		CommonVariations: []string{"Standard", "With offer", "With CTA", "Animated"},
	},
	domain.ModuleTransition: {
		Label: "Transition", Description: "Motion between content modules", Color: "violet", TypicalDuration: "0.5-1s",
		CommonVariations: []string{"Cut", "Fade", "Wipe", "Zoom", "Slide"},
	},
}

// Modules returns the module taxonomy. Callers get their own copy.
func Modules() ModuleLibrary {
	taxonomy := make(map[domain.ModuleType]ModuleKind, len(moduleTaxonomy))
	for t, kind := range moduleTaxonomy {
		kind.CommonVariations = append([]string(nil), kind.CommonVariations...)
		taxonomy[t] = kind
	}
	return ModuleLibrary{
		Taxonomy:     taxonomy,
		Formats:      domain.ModuleFormats(),
		SourceTypes:  domain.SourceTypes(),
		FunnelStages: domain.FunnelStages(),
	}
}

// Stage describes a funnel stage for audience mapping.
type Stage struct {
	ID             domain.FunnelStage `json:"id"`
	Label          string             `json:"label"`
	Description    string             `json:"description"`
	Color          string             `json:"color"`
	TypicalContent []string           `json:"typical_content"`
	TypicalCTAs    []string           `json:"typical_ctas"`
}

// Stages lists the funnel stages in order.
func Stages() []Stage {
	return []Stage{
		{
			ID: domain.FunnelAwareness, Label: "Awareness", Description: "Building brand/product awareness", Color: "purple",
			TypicalContent: []string{"Hook", "Brand story", "Problem statement"},
			TypicalCTAs:    []string{"Learn More", "Watch Video", "Discover"},
		},
		{
			ID: domain.FunnelConsideration, Label: "Consideration", Description: "Educating and nurturing interest", Color: "blue",
			TypicalContent: []string{"Value proposition", "Features", "Social proof"},
			TypicalCTAs:    []string{"Compare", "See How It Works", "Read Reviews"},
		},
		{
			ID: domain.FunnelConversion, Label: "Conversion", Description: "Driving action and purchase", Color: "green",
			TypicalContent: []string{"Offer", "Urgency", "Trust signals"},
			TypicalCTAs:    []string{"Buy Now", "Sign Up", "Get Started", "Book Now"},
		},
		{
			ID: domain.FunnelRetention, Label: "Retention", Description: "Retaining and re-engaging customers", Color: "amber",
			TypicalContent: []string{"Cross-sell", "Loyalty", "Updates"},
			TypicalCTAs:    []string{"Upgrade", "Refer a Friend", "Renew"},
		},
	}
}

// Label is a display entry for a status or priority.
type Label struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// TicketBoard is the production ticket workflow reference.
type TicketBoard struct {
	Statuses   []Label                                       `json:"statuses"`
	Workflow   map[domain.TicketStatus][]domain.TicketStatus `json:"workflow"`
	Priorities []Label                                       `json:"priorities"`
}

var (
	ticketLabels = map[domain.TicketStatus]Label{
		domain.TicketBacklog:    {Label: "Backlog", Color: "slate", Description: "Not yet started"},
		domain.TicketReady:      {Label: "Ready", Color: "blue", Description: "Ready to begin production"},
		domain.TicketInProgress: {Label: "In Progress", Color: "amber", Description: "Currently being worked on"},
		domain.TicketInReview:   {Label: "In Review", Color: "purple", Description: "Awaiting approval"},
		domain.TicketApproved:   {Label: "Approved", Color: "green", Description: "Approved for delivery"},
		domain.TicketDelivered:  {Label: "Delivered", Color: "emerald", Description: "Delivered to platform"},
	}
	priorityLabels = map[domain.TicketPriority]Label{
		domain.PriorityCritical: {Label: "Critical", Color: "red"},
		domain.PriorityHigh:     {Label: "High", Color: "orange"},
		domain.PriorityMedium:   {Label: "Medium", Color: "yellow"},
		domain.PriorityLow:      {Label: "Low", Color: "slate"},
	}
)

// Tickets returns the ticket statuses, their allowed moves and priorities.
func Tickets() TicketBoard {
	board := TicketBoard{Workflow: domain.TicketWorkflow()}
	for _, s := range domain.TicketStatuses() {
		l := ticketLabels[s]
		l.ID = string(s)
		board.Statuses = append(board.Statuses, l)
	}
	for _, p := range domain.TicketPriorities() {
		l := priorityLabels[p]
		l.ID = string(p)
		board.Priorities = append(board.Priorities, l)
	}
	return board
}

// ModuleRequest is the input for a new library module.
type ModuleRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Format      string `json:"format,omitempty"`
	SourceType  string `json:"source_type,omitempty"`
}

// NewModule validates req and returns a fresh module with no variations.
// Format defaults to image and source type to new_shoot.
func NewModule(req ModuleRequest, now time.Time) (domain.Module, error) {
	kind, err := domain.ParseModuleType(strings.TrimSpace(req.Type))
	if err != nil {
		return domain.Module{}, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Module{}, fmt.Errorf("%w: name is required", domain.ErrInvalidModule)
	}
	format, err := domain.ParseModuleFormat(orDefault(strings.TrimSpace(req.Format), string(domain.ModuleFormatImage)))
	if err != nil {
		return domain.Module{}, err
	}
	source, err := domain.ParseSourceType(orDefault(strings.TrimSpace(req.SourceType), string(domain.SourceNewShoot)))
	if err != nil {
		return domain.Module{}, err
	}
	return domain.Module{
		ID:          uuid.NewString(),
		Type:        kind,
		Name:        name,
		Description: req.Description,
		Variations:  []domain.ModuleVariation{},
		Format:      format,
		SourceType:  source,
		UsedInCells: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
