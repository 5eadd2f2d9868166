// Package feed generates DCO asset feeds and validates feed rows against the
// limits of each DCO platform.
package feed

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"modcon/internal/domain"
	"modcon/internal/fieldalias"
)

// nearLimitRatio is the share of a text limit above which a warning is
// raised. Text that exactly fills the limit is accepted silently.
const nearLimitRatio = 0.9

var issuesFound = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "modcon_feed_issues_total",
	Help: "Feed validation issues by platform and severity.",
}, []string{"platform", "severity"})

// Validate checks every row against the constraints of platform. It never
// stops at the first problem.
func Validate(rows []fieldalias.Record, platform string) domain.ValidationResult {
	c, err := ConstraintsFor(platform)
	if err != nil {
		issuesFound.WithLabelValues("unknown", string(domain.SeverityError)).Inc()
		return domain.ValidationResult{
			IsValid:   false,
			Platform:  platform,
			TotalRows: len(rows),
			Errors:    1,
			Issues: []domain.ValidationIssue{{
				Field:      "platform",
				Severity:   domain.SeverityError,
				Message:    "Unknown platform: " + platform,
				Suggestion: "Use one of: " + oneOf(platformOrder),
			}},
			Summary: "Unknown platform: " + platform,
		}
	}

	v := &validator{c: c, issues: []domain.ValidationIssue{}}
	for i, row := range rows {
		v.row(row, row.TextOr(fieldalias.RowID, strconv.Itoa(i)))
	}

	res := domain.ValidationResult{Platform: platform, TotalRows: len(rows), Issues: v.issues}
	for _, issue := range v.issues {
		switch issue.Severity {
		case domain.SeverityError:
			res.Errors++
		case domain.SeverityWarning:
			res.Warnings++
		}
		issuesFound.WithLabelValues(platform, string(issue.Severity)).Inc()
	}
	res.IsValid = res.Errors == 0
	switch {
	case res.Errors == 0 && res.Warnings == 0:
		res.Summary = fmt.Sprintf("Feed is valid for %s. %d rows passed all checks.", platform, len(rows))
	case res.Errors == 0:
		res.Summary = fmt.Sprintf("Feed is valid with %d warnings. Review recommended.", res.Warnings)
	default:
		res.Summary = fmt.Sprintf("Feed has %d errors that must be fixed before export.", res.Errors)
	}
	return res
}

type validator struct {
	c      Constraints
	issues []domain.ValidationIssue
}

func (v *validator) add(rowID, field string, sev domain.Severity, msg, suggestion string) {
	v.issues = append(v.issues, domain.ValidationIssue{
		RowID:      rowID,
		Field:      field,
		Severity:   sev,
		Message:    msg,
		Suggestion: suggestion,
	})
}

func (v *validator) row(row fieldalias.Record, rowID string) {
	for _, field := range v.c.RequiredFields {
		if !fieldalias.Truthy(row[field]) {
			v.add(rowID, field, domain.SeverityError,
				fmt.Sprintf("Required field '%s' is missing", field),
				"Add value for "+field)
		}
	}

	for _, field := range row.Present(fieldalias.Headline) {
		v.textLength(rowID, field, row.String(field), v.c.MaxHeadlineLength)
	}
	for _, field := range row.Present(fieldalias.Body) {
		v.textLength(rowID, field, row.String(field), v.c.MaxBodyLength)
	}
	for _, field := range row.Present(fieldalias.CTA) {
		v.textLength(rowID, field, row.String(field), v.c.MaxCTALength)
	}
	for _, field := range row.Present(fieldalias.ClickURL) {
		v.url(rowID, field, row.String(field), v.c.requires(field))
	}
	for _, field := range row.Present(fieldalias.Image) {
		if s := row.String(field); s != "" {
			v.imageFormat(rowID, field, s)
		}
	}
	for _, field := range row.Present(fieldalias.Color) {
		if s := row.String(field); s != "" {
			v.colorHex(rowID, field, s)
		}
	}
}

func (v *validator) textLength(rowID, field, text string, max int) {
	if text == "" {
		return
	}
	n := utf8.RuneCountInString(text)
	switch {
	case n > max:
		v.add(rowID, field, domain.SeverityError,
			fmt.Sprintf("%s exceeds maximum length of %d characters (current: %d)", field, max, n),
			fmt.Sprintf("Shorten to %d characters or less", max))
	case n < max && float64(n) > float64(max)*nearLimitRatio:
		v.add(rowID, field, domain.SeverityWarning,
			fmt.Sprintf("%s is close to maximum length (%d/%d)", field, n, max),
			"Consider shortening for readability")
	}
}

func (v *validator) url(rowID, field, url string, required bool) {
	if url == "" {
		if required {
			v.add(rowID, field, domain.SeverityError, field+" is required but missing", "Add a valid URL")
		}
		return
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		v.add(rowID, field, domain.SeverityError,
			field+" must start with http:// or https://",
			"Add protocol prefix to URL")
	}
}

func (v *validator) imageFormat(rowID, field, url string) {
	ext := strings.ToLower(url[strings.LastIndex(url, ".")+1:])
	ext, _, _ = strings.Cut(ext, "?")
	if v.c.allowsImage(ext) {
		return
	}
	allowed := oneOf(v.c.ImageFormats)
	v.add(rowID, field, domain.SeverityWarning,
		fmt.Sprintf("Image format '.%s' may not be supported. Allowed: %s", ext, allowed),
		"Use one of: "+allowed)
}

func (v *validator) colorHex(rowID, field, color string) {
	color = strings.TrimLeft(color, "#")
	if n := utf8.RuneCountInString(color); n != 3 && n != 6 {
		v.add(rowID, field, domain.SeverityError,
			"Invalid hex color format: "+color,
			"Use format #RRGGBB or #RGB")
		return
	}
	for _, r := range color {
		if !isHex(r) {
			v.add(rowID, field, domain.SeverityError,
				"Invalid hex color characters: "+color,
				"Use only hexadecimal characters (0-9, A-F)")
			return
		}
	}
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
