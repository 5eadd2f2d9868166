package domain

import "fmt"

var jobTransitions = map[JobStatus]map[JobStatus]bool{
	JobStatusPending:      {JobStatusInProduction: true},
	JobStatusInProduction: {JobStatusApproved: true, JobStatusPending: true},
	JobStatusApproved:     {JobStatusDelivered: true, JobStatusInProduction: true},
	JobStatusDelivered:    {},
}

var assetTransitions = map[AssetStatus]map[AssetStatus]bool{
	AssetStatusTodo:       {AssetStatusInProgress: true},
	AssetStatusInProgress: {AssetStatusReview: true, AssetStatusTodo: true},
	AssetStatusReview:     {AssetStatusApproved: true, AssetStatusInProgress: true},
	AssetStatusApproved:   {AssetStatusReview: true},
}

// TransitionError reports a status change the workflow does not allow.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %q to %q", e.Entity, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// ParseJobStatus validates a raw job status value.
func ParseJobStatus(raw string) (JobStatus, error) {
	status := JobStatus(raw)
	if _, ok := jobTransitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return status, nil
}

// ParseAssetStatus validates a raw asset status value.
func ParseAssetStatus(raw string) (AssetStatus, error) {
	status := AssetStatus(raw)
	if _, ok := assetTransitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return status, nil
}

// CheckJobTransition returns nil when from -> to is allowed. Same-state
// updates are accepted as no-ops.
func CheckJobTransition(from, to JobStatus) error {
	if from == to || jobTransitions[from][to] {
		return nil
	}
	return &TransitionError{Entity: "job", From: string(from), To: string(to)}
}

// CheckAssetTransition returns nil when from -> to is allowed.
func CheckAssetTransition(from, to AssetStatus) error {
	if from == to || assetTransitions[from][to] {
		return nil
	}
	return &TransitionError{Entity: "asset", From: string(from), To: string(to)}
}

// JobWorkflow lists the allowed next states per job status.
func JobWorkflow() map[JobStatus][]JobStatus {
	order := []JobStatus{JobStatusPending, JobStatusInProduction, JobStatusApproved, JobStatusDelivered}
	out := make(map[JobStatus][]JobStatus, len(order))
	for _, from := range order {
		next := []JobStatus{}
		for _, to := range order {
			if jobTransitions[from][to] {
				next = append(next, to)
			}
		}
		out[from] = next
	}
	return out
}

// AssetWorkflow lists the allowed next states per asset status.
func AssetWorkflow() map[AssetStatus][]AssetStatus {
	order := []AssetStatus{AssetStatusTodo, AssetStatusInProgress, AssetStatusReview, AssetStatusApproved}
	out := make(map[AssetStatus][]AssetStatus, len(order))
	for _, from := range order {
		next := []AssetStatus{}
		for _, to := range order {
			if assetTransitions[from][to] {
				next = append(next, to)
			}
		}
		out[from] = next
	}
	return out
}
