package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInvalidSpec         = errors.New("invalid spec")
	ErrInvalidModule       = errors.New("invalid module")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNoSpecsResolved     = errors.New("no specs resolved")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrProviderFailure     = errors.New("provider failure")
)
