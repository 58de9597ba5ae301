package repositories

import (
	"context"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
)

// LedgerRepository holds the flat entry snapshot that is the single source
// of truth for every derived view. The snapshot is versioned: any mutation
// bumps the version, which invalidates memoized views downstream.
type LedgerRepository interface {
	// ReplaceEntries swaps the whole snapshot.
	ReplaceEntries(ctx context.Context, entries []domain.LedgerEntry) error

	// AppendEntries adds entries to the current snapshot.
	AppendEntries(ctx context.Context, entries []domain.LedgerEntry) error

	// ListEntries returns the snapshot in original posting order.
	ListEntries(ctx context.Context) ([]domain.LedgerEntry, error)

	// Version returns the current snapshot version.
	Version(ctx context.Context) (int64, error)
}
