package db

//go:generate mockgen -destination=../mocks/mock_store.go -package=mocks . Store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/logger"
)

// Store is a Querier that can also run a group of queries atomically.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore runs queries against a pgx pool.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

// NewSQLStore wraps pool in a Store.
func NewSQLStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		Queries: New(pool),
		pool:    pool,
	}
}

// ExecTx runs fn inside a transaction. The transaction is committed only if fn returns nil.
func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return pkgerrors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// Pool exposes the underlying pool for health checks and migrations.
func (s *SQLStore) Pool() *pgxpool.Pool {
	return s.pool
}

var _ Store = (*SQLStore)(nil)
