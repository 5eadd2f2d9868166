package infra

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// SQLExecutor is the query surface repositories depend on.
type SQLExecutor interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// ErrSQLMarker is returned for queries that do not start with "--sql <uuid>".
var ErrSQLMarker = errors.New("sql marker missing or invalid")

var markerRegexp = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// SQLRunner strips the audit marker from each query before handing it to the
// pool and logs the marker with the outcome. *pgxpool.Pool satisfies pool.
type SQLRunner struct {
	pool   SQLExecutor
	logger zerolog.Logger
}

func NewSQLRunner(pool SQLExecutor, logger zerolog.Logger) *SQLRunner {
	return &SQLRunner{pool: pool, logger: logger.With().Str("component", "sql").Logger()}
}

func (r *SQLRunner) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	marker, body, err := extractMarker(query)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	start := time.Now()
	tag, err := r.pool.Exec(ctx, body, args...)
	r.done(marker, "exec", start, err)
	return tag, err
}

func (r *SQLRunner) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	marker, body, err := extractMarker(query)
	if err != nil {
		return errorRow{err: err}
	}
	return markedRow{row: r.pool.QueryRow(ctx, body, args...), runner: r, marker: marker, start: time.Now()}
}

func (r *SQLRunner) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	marker, body, err := extractMarker(query)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := r.pool.Query(ctx, body, args...)
	if err != nil {
		r.done(marker, "query", start, err)
		return nil, err
	}
	return markedRows{Rows: rows, runner: r, marker: marker, start: start}, nil
}

func (r *SQLRunner) done(marker, op string, start time.Time, err error) {
	if err != nil && !IsNoRows(err) {
		r.logger.Error().Err(err).Str("marker", marker).Str("op", op).Msg("sql failed")
		return
	}
	r.logger.Debug().Str("marker", marker).Str("op", op).Dur("elapsed", time.Since(start)).Msg("sql ok")
}

type markedRow struct {
	row    pgx.Row
	runner *SQLRunner
	marker string
	start  time.Time
}

func (m markedRow) Scan(dest ...any) error {
	err := m.row.Scan(dest...)
	m.runner.done(m.marker, "query_row", m.start, err)
	return err
}

type markedRows struct {
	pgx.Rows
	runner *SQLRunner
	marker string
	start  time.Time
}

func (m markedRows) Close() {
	m.Rows.Close()
	m.runner.done(m.marker, "query", m.start, m.Rows.Err())
}

type errorRow struct {
	err error
}

func (e errorRow) Scan(dest ...any) error {
	return e.err
}

// extractMarker splits the marker uuid from the statement that follows it.
func extractMarker(query string) (string, string, error) {
	trimmed := strings.TrimSpace(query)
	first, rest, _ := strings.Cut(trimmed, "\n")
	first = strings.TrimSpace(first)
	if !markerRegexp.MatchString(first) {
		return "", "", ErrSQLMarker
	}
	return strings.TrimPrefix(first, "--sql "), rest, nil
}

var _ SQLExecutor = (*SQLRunner)(nil)
