// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dompetku/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger persistence operations.
type TransactionRepository interface {
	// Append stores a new transaction and assigns its ID as
	// max(existing IDs, 0) + 1. The assigned ID is written back to the
	// entity. Single-writer access makes this allocation safe.
	Append(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// FindAll retrieves every transaction, newest-first by insertion
	// (descending ID), which is not necessarily date order.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// Delete removes the transaction with the given ID. Deleting an
	// absent ID is a no-op, not an error.
	Delete(ctx context.Context, id int64) error

	// DeleteByDebt removes every mirrored transaction whose source ref
	// points at the given debt and returns how many rows were removed.
	// Zero is a valid result: mirrors the user already deleted are
	// simply gone.
	DeleteByDebt(ctx context.Context, debtID uuid.UUID) (int64, error)
}
