package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/pogodoro/internal/db"
)

// FailingWriteUoW is a UnitOfWork that rejects one write inside the
// transaction so tests can prove a multi-statement use case rolls back.
//
// Only ExecContext calls whose SQL contains Match are counted (an empty
// Match counts every ExecContext); the FailOn-th such call returns Err.
// Writes issued through QueryRowContext, such as UPDATE ... RETURNING,
// pass through untouched.
type FailingWriteUoW struct {
	DB     *sql.DB
	Match  string
	FailOn int32
	Err    error

	RolledBack bool
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingWrites{DBTX: tx, match: u.Match, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		u.RolledBack = tx.Rollback() == nil
		return fnErr
	}
	return tx.Commit()
}

type failingWrites struct {
	db.DBTX
	match  string
	seen   atomic.Int32
	failOn int32
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.match) && f.seen.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
