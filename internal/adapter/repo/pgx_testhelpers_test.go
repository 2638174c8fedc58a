package repo

import (
	"context"
	"fmt"
	"reflect"

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

// sliceRows serves pre-baked row tuples.
type sliceRows struct {
	testRowsBase
	rows [][]any
	idx  int
}

func (r *sliceRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *sliceRows) Scan(dest ...any) error {
	return scanInto(dest, r.rows[r.idx-1]...)
}

func (r *sliceRows) Close()     {}
func (r *sliceRows) Err() error { return nil }

func scanInto(dest []any, values ...any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i := range dest {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(values[i]))
	}
	return nil
}

type execCall struct {
	query string
	args  []any
}

// fakeExecutor records statements and serves canned rows.
type fakeExecutor struct {
	execs   []execCall
	execErr func(query string) error
	row     func(query string, args ...any) pgx.Row
	rows    func(query string, args ...any) (pgx.Rows, error)
}

func (f *fakeExecutor) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{query: query, args: args})
	if f.execErr != nil {
		if err := f.execErr(query); err != nil {
			return pgconn.CommandTag{}, err
		}
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeExecutor) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if f.row == nil {
		return simpleRow{}
	}
	return f.row(query, args...)
}

func (f *fakeExecutor) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	if f.rows == nil {
		return &sliceRows{}, nil
	}
	return f.rows(query, args...)
}
