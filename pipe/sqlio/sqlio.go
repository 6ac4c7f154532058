// Package sqlio bridges pipelines and database/sql: queries materialize
// their rows into a pipeline, and Insert writes an image back. The scanner
// converts each row to the element type, mirroring how rows are consumed
// row by row but with the whole result set collected before the pipeline
// is returned.
package sqlio

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lguimbarda/iterflow/pipe"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query executes query against db and seeds a pipeline with every scanned
// row.
func Query[T any](ctx context.Context, db *sql.DB, query string, scanner Scanner[T], args ...any) *pipe.Pipe[T] {
	const op = "sqlio.Query"
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return pipe.Abort[T](op, err)
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		value, err := scanner(rows)
		if err != nil {
			return pipe.Abort[T](op, err)
		}
		out = append(out, value)
	}
	if err := rows.Err(); err != nil {
		return pipe.Abort[T](op, err)
	}
	return pipe.Next(op, out)
}

// QueryPairs executes query against db and collects two-column rows into a
// mapping pipeline keyed in row order. A key repeated across rows keeps
// its first position and takes the last value.
func QueryPairs[K comparable, V any](ctx context.Context, db *sql.DB, query string, args ...any) *pipe.MapPipe[K, V] {
	const op = "sqlio.QueryPairs"
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return pipe.FaultMap[K, V](err)
	}
	defer rows.Close()
	out := pipe.NewMapPipe[K, V]()
	for rows.Next() {
		var k K
		var v V
		if err := rows.Scan(&k, &v); err != nil {
			return pipe.FaultMap[K, V](err)
		}
		out.Set(k, v)
	}
	if err := rows.Err(); err != nil {
		return pipe.FaultMap[K, V](err)
	}
	pipe.Observe(op, out.Len())
	return out
}

// Insert writes the image into table one row per element, with toRow
// producing the column values. All rows go through a single transaction;
// any failure rolls the whole batch back. It returns the number of rows
// inserted.
func Insert[T any](ctx context.Context, db *sql.DB, table string, columns []string, p *pipe.Pipe[T], toRow func(T) []any) (int, error) {
	if err := p.Err(); err != nil {
		return 0, err
	}
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	stmt := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	prepared, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	defer prepared.Close()

	count := 0
	for _, v := range p.Image() {
		if _, err := prepared.ExecContext(ctx, toRow(v)...); err != nil {
			tx.Rollback()
			return 0, err
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}
