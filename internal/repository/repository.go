// Package repository holds the SQL behind every entity store.
//
// Each repository works over DBTX so the same code runs against the pool,
// a single connection or a transaction. Lookups by id report absence with
// a found flag rather than an error.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// queryOne runs a query expected to return at most one row.
func queryOne[T any](ctx context.Context, db DBTX, sql string, args ...any) (*T, bool, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, err
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &item, true, nil
}

// queryAll collects every row. The result is never nil.
func queryAll[T any](ctx context.Context, db DBTX, sql string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// mustReturn runs an INSERT/UPDATE ... RETURNING statement.
func mustReturn[T any](ctx context.Context, db DBTX, sql string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func deleteByID(ctx context.Context, db DBTX, table string, id int64) error {
	_, err := db.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	return err
}

func existsByID(ctx context.Context, db DBTX, table string, id int64) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM "+table+" WHERE id = $1)", id).Scan(&exists)
	return exists, err
}
