package feed

import (
	"errors"
	"strings"
	"testing"

	"modcon/internal/domain"
	"modcon/internal/fieldalias"
)

func validFlashtalkingRow() fieldalias.Record {
	return fieldalias.Record{
		"creative_id":   "cr-1",
		"creative_name": "Spring",
		"headline":      "Short",
		"click_url":     "https://example.com",
	}
}

func issuesFor(res domain.ValidationResult, field string) []domain.ValidationIssue {
	var out []domain.ValidationIssue
	for _, i := range res.Issues {
		if i.Field == field {
			out = append(out, i)
		}
	}
	return out
}

func TestValidateHeadlineLengthBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		errors   int
		warnings int
	}{
		{name: "exactly max", length: 40, errors: 0, warnings: 0},
		{name: "over max", length: 41, errors: 1, warnings: 0},
		{name: "near max", length: 38, errors: 0, warnings: 1},
		{name: "at ninety percent", length: 36, errors: 0, warnings: 0},
		{name: "short", length: 10, errors: 0, warnings: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validFlashtalkingRow()
			row["headline"] = strings.Repeat("a", tt.length)
			res := Validate([]fieldalias.Record{row}, "flashtalking")
			if res.Errors != tt.errors || res.Warnings != tt.warnings {
				t.Fatalf("errors/warnings = %d/%d, want %d/%d (%+v)", res.Errors, res.Warnings, tt.errors, tt.warnings, res.Issues)
			}
		})
	}
}

func TestValidateHeadlineOverLimitMessage(t *testing.T) {
	row := validFlashtalkingRow()
	row["headline"] = strings.Repeat("x", 41)
	res := Validate([]fieldalias.Record{row}, "flashtalking")
	issues := issuesFor(res, "headline")
	if len(issues) != 1 {
		t.Fatalf("headline issues = %d, want 1", len(issues))
	}
	want := "headline exceeds maximum length of 40 characters (current: 41)"
	if issues[0].Message != want {
		t.Fatalf("message = %q, want %q", issues[0].Message, want)
	}
	if issues[0].RowID != "cr-1" {
		t.Fatalf("row_id = %q, want cr-1", issues[0].RowID)
	}
	if res.IsValid {
		t.Fatalf("IsValid = true, want false")
	}
	if res.Summary != "Feed has 1 errors that must be fixed before export." {
		t.Fatalf("summary = %q", res.Summary)
	}
}

func TestValidateUnknownPlatform(t *testing.T) {
	res := Validate([]fieldalias.Record{{}, {}}, "myspace")
	if res.IsValid || res.Errors != 1 || res.TotalRows != 2 {
		t.Fatalf("result = %+v", res)
	}
	if len(res.Issues) != 1 || res.Issues[0].Field != "platform" {
		t.Fatalf("issues = %+v", res.Issues)
	}
	if res.Summary != "Unknown platform: myspace" {
		t.Fatalf("summary = %q", res.Summary)
	}
}

func TestValidateRequiredAndURLs(t *testing.T) {
	rows := []fieldalias.Record{
		{"creative_name": "A", "click_through_url": ""},
		{"creative_id": "c2", "creative_name": "B", "click_through_url": "www.example.com"},
	}
	res := Validate(rows, "innovid")

	var msgs []string
	for _, i := range res.Issues {
		msgs = append(msgs, i.RowID+"|"+i.Message)
	}
	want := []string{
		"0|Required field 'creative_id' is missing",
		"0|Required field 'click_through_url' is missing",
		"0|click_through_url is required but missing",
		"c2|click_through_url must start with http:// or https://",
	}
	if strings.Join(msgs, "\n") != strings.Join(want, "\n") {
		t.Fatalf("issues =\n%s\nwant\n%s", strings.Join(msgs, "\n"), strings.Join(want, "\n"))
	}
}

func TestValidateImagesAndColors(t *testing.T) {
	row := fieldalias.Record{
		"feedId":               "f1",
		"creativeName":         "Hero",
		"heroImage":            "https://cdn.example.com/hero.WEBP?v=2",
		"image_1":              "https://cdn.example.com/a.svg",
		"backgroundColor":      "#12345",
		"textColor":            "#GGG",
		"background_color_hex": "#0f0",
	}
	res := Validate([]fieldalias.Record{row}, "celtra")
	if res.Errors != 2 || res.Warnings != 1 {
		t.Fatalf("errors/warnings = %d/%d, want 2/1: %+v", res.Errors, res.Warnings, res.Issues)
	}
	img := issuesFor(res, "heroImage")
	if len(img) != 1 || img[0].Message != "Image format '.webp' may not be supported. Allowed: jpg, jpeg, png, gif, svg" {
		t.Fatalf("image issue = %+v", img)
	}
	if got := issuesFor(res, "backgroundColor")[0].Message; got != "Invalid hex color format: 12345" {
		t.Fatalf("format message = %q", got)
	}
	if got := issuesFor(res, "textColor")[0].Message; got != "Invalid hex color characters: GGG" {
		t.Fatalf("characters message = %q", got)
	}
}

func TestValidateSummaries(t *testing.T) {
	res := Validate([]fieldalias.Record{validFlashtalkingRow()}, "flashtalking")
	if !res.IsValid || res.Summary != "Feed is valid for flashtalking. 1 rows passed all checks." {
		t.Fatalf("clean result = %+v", res)
	}
	if res.Issues == nil {
		t.Fatalf("issues = nil, want empty slice")
	}

	row := validFlashtalkingRow()
	row["cta"] = strings.Repeat("c", 24)
	res = Validate([]fieldalias.Record{row}, "flashtalking")
	if !res.IsValid || res.Summary != "Feed is valid with 1 warnings. Review recommended." {
		t.Fatalf("warning result = %+v", res)
	}
}

func TestConstraintsFor(t *testing.T) {
	c, err := ConstraintsFor("google_studio")
	if err != nil {
		t.Fatalf("ConstraintsFor() error = %v", err)
	}
	if c.Platform != "google_studio" || c.MaxHeadlineLength != 30 || c.MaxFileSizeKB != 150 {
		t.Fatalf("constraints = %+v", c)
	}
	if _, err := ConstraintsFor("nope"); !errors.Is(err, domain.ErrUnsupportedPlatform) {
		t.Fatalf("error = %v, want ErrUnsupportedPlatform", err)
	}
}
