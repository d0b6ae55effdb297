package ports

import (
	"context"

	"atm-transaction-core/internal/core/domain"
)

// JournalStore persists the append-only transaction journal.
type JournalStore interface {
	Append(ctx context.Context, entry domain.Entry) error
	// Recent returns up to limit entries, newest first, for the operator API.
	Recent(ctx context.Context, limit int) ([]domain.Entry, error)
}

// ReconciliationQueue escalates ambiguities (unconfirmed deposits, dispense
// faults) for offline resolution by an operator.
type ReconciliationQueue interface {
	Enqueue(ctx context.Context, c domain.ReconciliationCase) error
	// Pending returns up to limit open cases, oldest first.
	Pending(ctx context.Context, limit int) ([]domain.ReconciliationCase, error)
}
