package services

import (
	"context"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
)

// LedgerService defines ingestion and validation over the entry snapshot.
type LedgerService interface {
	// IngestEntries validates and stores a batch of entries. When replace is
	// true the batch becomes the new snapshot, otherwise it is appended.
	// Returns the number of entries stored.
	IngestEntries(ctx context.Context, entries []domain.LedgerEntry, replace bool) (int, error)

	// ValidateLedger runs the ledger-wide debits-equal-credits check.
	ValidateLedger(ctx context.Context) (domain.LedgerCheck, error)
}

// EntryViewService produces filtered, sorted views of the raw entries for
// interactive inspection.
type EntryViewService interface {
	ViewEntries(ctx context.Context, params domain.ViewParams) ([]domain.LedgerEntry, error)
}
