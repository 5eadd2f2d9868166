package speclib

import (
	"errors"
	"testing"
	"time"

	"modcon/internal/domain"
)

func TestModulesCoversEveryModuleType(t *testing.T) {
	lib := Modules()
	for _, kind := range domain.ModuleTypes() {
		entry, ok := lib.Taxonomy[kind]
		if !ok || entry.Label == "" || len(entry.CommonVariations) == 0 {
			t.Fatalf("taxonomy entry for %q = %+v", kind, entry)
		}
	}
	if lib.Taxonomy[domain.ModuleHook].TypicalDuration != "2-3s" {
		t.Fatalf("hook duration = %q", lib.Taxonomy[domain.ModuleHook].TypicalDuration)
	}
	if len(lib.Formats) != 6 || len(lib.SourceTypes) != 6 || len(lib.FunnelStages) != 4 {
		t.Fatalf("vocabularies = %v %v %v", lib.Formats, lib.SourceTypes, lib.FunnelStages)
	}

	lib.Taxonomy[domain.ModuleCTA].CommonVariations[0] = "changed"
	if Modules().Taxonomy[domain.ModuleCTA].CommonVariations[0] != "Shop now" {
		t.Fatalf("Modules shares its variation slices with callers")
	}
}

func TestTicketsWorkflow(t *testing.T) {
	board := Tickets()
	if len(board.Statuses) != 6 || board.Statuses[0].ID != "backlog" || board.Statuses[5].ID != "delivered" {
		t.Fatalf("statuses = %+v", board.Statuses)
	}
	ready := board.Workflow[domain.TicketReady]
	if len(ready) != 2 || ready[0] != domain.TicketInProgress || ready[1] != domain.TicketBacklog {
		t.Fatalf("ready -> %v, want [in_progress backlog]", ready)
	}
	if next := board.Workflow[domain.TicketDelivered]; len(next) != 0 {
		t.Fatalf("delivered -> %v, want terminal", next)
	}
	if len(board.Priorities) != 4 || board.Priorities[0].ID != "critical" || board.Priorities[0].Color != "red" {
		t.Fatalf("priorities = %+v", board.Priorities)
	}
	if err := domain.CheckTicketTransition(domain.TicketBacklog, domain.TicketApproved); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("backlog -> approved err = %v", err)
	}
}

func TestStagesOrder(t *testing.T) {
	stages := Stages()
	want := domain.FunnelStages()
	if len(stages) != len(want) {
		t.Fatalf("stages = %d, want %d", len(stages), len(want))
	}
	for i, s := range stages {
		if s.ID != want[i] || len(s.TypicalCTAs) == 0 {
			t.Fatalf("stage %d = %+v", i, s)
		}
	}
}

func TestNewModule(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	mod, err := NewModule(ModuleRequest{Type: "hook", Name: " Opening question ", Description: "Ask the viewer"}, now)
	if err != nil {
		t.Fatalf("NewModule: %v", err)
	}
	if mod.ID == "" || mod.Name != "Opening question" || mod.Format != domain.ModuleFormatImage || mod.SourceType != domain.SourceNewShoot {
		t.Fatalf("module = %+v", mod)
	}
	if !mod.CreatedAt.Equal(now) || mod.ReuseCount != 0 || mod.Variations == nil {
		t.Fatalf("module defaults = %+v", mod)
	}

	bad := []ModuleRequest{
		{Type: "jingle", Name: "x"},
		{Type: "cta", Name: "  "},
		{Type: "cta", Name: "x", Format: "gif"},
		{Type: "cta", Name: "x", SourceType: "borrowed"},
	}
	for _, req := range bad {
		if _, err := NewModule(req, now); !errors.Is(err, domain.ErrInvalidModule) {
			t.Fatalf("NewModule(%+v) err = %v, want ErrInvalidModule", req, err)
		}
	}
}
