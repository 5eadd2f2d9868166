package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

type testRowsBase struct{}

func (testRowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (testRowsBase) Conn() *pgx.Conn { return nil }

func (testRowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (testRowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (testRowsBase) RawValues() [][]byte { return nil }

// sliceRows replays a fixed list of scan functions.
type sliceRows struct {
	testRowsBase
	scans []func(dest ...any) error
	idx   int
	err   error
}

func (r *sliceRows) Next() bool {
	if r.idx >= len(r.scans) {
		return false
	}
	r.idx++
	return true
}

func (r *sliceRows) Scan(dest ...any) error { return r.scans[r.idx-1](dest...) }

func (r *sliceRows) Err() error { return r.err }

func (r *sliceRows) Close() {}

type execCall struct {
	query string
	args  []any
}

// fakeSQL is an infra.SQLExecutor whose behaviour is set per test.
type fakeSQL struct {
	execs    []execCall
	affected int64
	execErr  error
	row      func(query string, args ...any) pgx.Row
	rows     func(query string, args ...any) (pgx.Rows, error)
}

func (f *fakeSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{query: query, args: args})
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", f.affected)), nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	if f.row == nil {
		return simpleRow{}
	}
	return f.row(query, args...)
}

func (f *fakeSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	if f.rows == nil {
		return &sliceRows{}, nil
	}
	return f.rows(query, args...)
}
