// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dompetku/backend/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create stores a new debt with its (empty) payment history.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt with its payments in insertion order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindAll retrieves every debt, newest-first by creation time,
	// each with its payments in insertion order.
	FindAll(ctx context.Context) ([]*entity.Debt, error)

	// AppendPayment adds a payment to the end of the debt's payment list.
	AppendPayment(ctx context.Context, debtID uuid.UUID, payment entity.Payment) error

	// Delete removes the debt and all of its payments. Deleting an
	// absent ID is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
