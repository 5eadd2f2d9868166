package domain

import (
	"errors"
	"testing"
)

func TestCheckAssetTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AssetStatus
		to      AssetStatus
		wantErr bool
	}{
		{name: "start work", from: AssetStatusTodo, to: AssetStatusInProgress},
		{name: "submit for review", from: AssetStatusInProgress, to: AssetStatusReview},
		{name: "changes requested", from: AssetStatusReview, to: AssetStatusInProgress},
		{name: "approve", from: AssetStatusReview, to: AssetStatusApproved},
		{name: "same status", from: AssetStatusReview, to: AssetStatusReview},
		{name: "skip review", from: AssetStatusTodo, to: AssetStatusApproved, wantErr: true},
		{name: "approved back to todo", from: AssetStatusApproved, to: AssetStatusTodo, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckAssetTransition(tc.from, tc.to)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("CheckAssetTransition(%q, %q) = %v, want ErrInvalidTransition", tc.from, tc.to, err)
				}
				var te *TransitionError
				if !errors.As(err, &te) || te.Entity != "asset" {
					t.Fatalf("expected *TransitionError for asset, got %#v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckAssetTransition(%q, %q) unexpected error: %v", tc.from, tc.to, err)
			}
		})
	}
}

func TestCheckJobTransitionDeliveredIsTerminal(t *testing.T) {
	for _, to := range []JobStatus{JobStatusPending, JobStatusInProduction, JobStatusApproved} {
		if err := CheckJobTransition(JobStatusDelivered, to); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("Delivered -> %s: got %v, want ErrInvalidTransition", to, err)
		}
	}
	if err := CheckJobTransition(JobStatusApproved, JobStatusDelivered); err != nil {
		t.Fatalf("Approved -> Delivered: %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseAssetStatus("Done"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("ParseAssetStatus(Done) = %v, want ErrInvalidStatus", err)
	}
	got, err := ParseJobStatus("In-Production")
	if err != nil || got != JobStatusInProduction {
		t.Fatalf("ParseJobStatus = %q, %v", got, err)
	}
}

func TestJobWorkflowListsNextStates(t *testing.T) {
	wf := JobWorkflow()
	if len(wf[JobStatusDelivered]) != 0 {
		t.Fatalf("Delivered next states = %v, want none", wf[JobStatusDelivered])
	}
	next := wf[JobStatusApproved]
	if len(next) != 2 || next[0] != JobStatusInProduction || next[1] != JobStatusDelivered {
		t.Fatalf("Approved next states = %v", next)
	}
}

func TestSeverityRejectsUnknownValues(t *testing.T) {
	var s Severity
	if err := s.UnmarshalText([]byte("fatal")); err == nil {
		t.Fatalf("expected unknown severity to fail")
	}
	if err := s.UnmarshalText([]byte("warning")); err != nil || s != SeverityWarning {
		t.Fatalf("UnmarshalText(warning) = %q, %v", s, err)
	}
}
