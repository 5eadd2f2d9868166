package domain

import "fmt"

// Severity classifies a validation issue. The set is closed.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ParseSeverity rejects values outside the closed set.
func ParseSeverity(raw string) (Severity, error) {
	switch s := Severity(raw); s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return s, nil
	}
	return "", fmt.Errorf("unknown severity %q", raw)
}

// UnmarshalText makes unknown severities a decode failure.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ValidationIssue is one finding against one row and field.
type ValidationIssue struct {
	RowID      string   `json:"row_id"`
	Field      string   `json:"field"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// ValidationResult aggregates the issues found in a feed.
type ValidationResult struct {
	IsValid   bool              `json:"is_valid"`
	Platform  string            `json:"platform"`
	TotalRows int               `json:"total_rows"`
	Errors    int               `json:"errors"`
	Warnings  int               `json:"warnings"`
	Issues    []ValidationIssue `json:"issues"`
	Summary   string            `json:"summary"`
}
