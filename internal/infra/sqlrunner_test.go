package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

type recordingPool struct {
	queries []string
}

func (p *recordingPool) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	p.queries = append(p.queries, query)
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (p *recordingPool) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	p.queries = append(p.queries, query)
	return errorRow{err: pgx.ErrNoRows}
}

func (p *recordingPool) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	p.queries = append(p.queries, query)
	return nil, errors.New("not supported")
}

func TestExtractMarker(t *testing.T) {
	marker, body, err := extractMarker("\n  --sql 0f1e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b\nselect 1;")
	if err != nil {
		t.Fatalf("extractMarker: %v", err)
	}
	if marker != "0f1e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b" || body != "select 1;" {
		t.Fatalf("got marker %q body %q", marker, body)
	}

	for _, q := range []string{"select 1;", "--sql not-a-uuid\nselect 1;", ""} {
		if _, _, err := extractMarker(q); !errors.Is(err, ErrSQLMarker) {
			t.Fatalf("extractMarker(%q) err = %v, want ErrSQLMarker", q, err)
		}
	}
}

func TestSQLRunnerStripsMarker(t *testing.T) {
	pool := &recordingPool{}
	runner := NewSQLRunner(pool, zerolog.Nop())

	tag, err := runner.Exec(context.Background(), "--sql 0f1e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b\nupdate t set a = 1;")
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if tag.RowsAffected() != 1 {
		t.Fatalf("RowsAffected = %d, want 1", tag.RowsAffected())
	}
	if err := runner.QueryRow(context.Background(), "--sql 1f1e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b\nselect a from t;").Scan(); !IsNoRows(err) {
		t.Fatalf("QueryRow err = %v, want no rows", err)
	}
	if _, err := runner.Exec(context.Background(), "update t set a = 2;"); !errors.Is(err, ErrSQLMarker) {
		t.Fatalf("Exec without marker err = %v", err)
	}

	want := []string{"update t set a = 1;", "select a from t;"}
	if len(pool.queries) != len(want) {
		t.Fatalf("pool saw %v, want %v", pool.queries, want)
	}
	for i := range want {
		if pool.queries[i] != want[i] {
			t.Fatalf("query %d = %q, want %q", i, pool.queries[i], want[i])
		}
	}
}
