package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"modcon/internal/domain"
	"modcon/internal/export"
	"modcon/internal/production"
	"modcon/internal/providers/brief"
)

const maxBodyBytes = 8 << 20

// SpecLibrary is the spec lookup surface the handlers need.
type SpecLibrary interface {
	Lookup(ctx context.Context, id string) (domain.Spec, error)
	All(ctx context.Context) ([]domain.Spec, error)
	SaveCustom(ctx context.Context, spec domain.Spec) (domain.Spec, error)
	Constraints(ctx context.Context, platformID, formatID string) (string, error)
}

// BriefAgent answers briefing chat turns.
type BriefAgent interface {
	Reply(ctx context.Context, req brief.ChatRequest) (string, error)
}

// App holds the services exposed over HTTP.
type App struct {
	Specs      SpecLibrary
	Production *production.Service
	Exports    *export.Generator
	Agent      BriefAgent
	Logger     zerolog.Logger
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, errorBody{Error: errorDetail{Code: errCode, Message: message}})
}

// fail maps domain errors onto HTTP statuses. Unknown errors are logged and
// reported without detail.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	var transition *domain.TransitionError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrUnsupportedPlatform):
		a.error(w, http.StatusUnprocessableEntity, "unsupported_platform", err.Error())
	case errors.As(err, &transition), errors.Is(err, domain.ErrConflict):
		a.error(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidSpec),
		errors.Is(err, domain.ErrInvalidModule),
		errors.Is(err, domain.ErrNoSpecsResolved):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrProviderFailure):
		a.Logger.Warn().Err(err).Str("path", r.URL.Path).Msg("upstream provider failed")
		a.error(w, http.StatusBadGateway, "upstream_error", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		a.error(w, http.StatusServiceUnavailable, "unavailable", "request cancelled")
	default:
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

// decode reads a JSON body into v and writes a 400 on failure.
func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		msg := "invalid payload"
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return false
	}
	return true
}
