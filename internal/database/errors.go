package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coincollector/internal/store"

	"github.com/mattn/go-sqlite3"
)

// translateConstraintErr maps driver-level constraint violations onto the
// store taxonomy. The repositories probe for duplicates and missing parents
// before inserting, so this only fires when a concurrent writer won the race.
func translateConstraintErr(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %v", store.ErrParentNotFound, err)
		}
	}
	return fmt.Errorf("%w: %v", store.ErrStoreUnavailable, err)
}

// rowExists runs a lightweight existence probe without materializing a row.
func rowExists(ctx context.Context, q queryRower, query string, arg string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, query, arg).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: existence probe failed: %v", store.ErrStoreUnavailable, err)
	}
	return true, nil
}

// queryRower is satisfied by both *sql.DB and *sql.Tx, so probes can run
// inside or outside a transaction.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// checkAffected enforces the single-row contract on updates and deletes:
// zero rows means the id is gone, anything above one is a consistency breach.
func checkAffected(result sql.Result, entity, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: unable to get rows affected for %s %s: %v", store.ErrStoreUnavailable, entity, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %s", store.ErrNotFound, entity, id)
	}
	if affected != 1 {
		return fmt.Errorf("%w: %s %s affected %d rows", store.ErrStorageConsistency, entity, id, affected)
	}
	return nil
}
