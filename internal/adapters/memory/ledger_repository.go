package memory

import (
	"context"
	"sync"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/shambaledger/farm_ledger_app/internal/core/ports/repositories"
)

// ledgerRepository holds the entry snapshot in memory. Reads copy the slice
// so a derivation always works on an immutable snapshot; any mutation bumps
// the version, invalidating memoized views.
type ledgerRepository struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
	version int64
}

// NewLedgerRepository creates an empty in-memory ledger store.
func NewLedgerRepository() portsrepo.LedgerRepository {
	return &ledgerRepository{}
}

var _ portsrepo.LedgerRepository = (*ledgerRepository)(nil)

func (r *ledgerRepository) ReplaceEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make([]domain.LedgerEntry, len(entries))
	copy(r.entries, entries)
	r.version++
	return nil
}

func (r *ledgerRepository) AppendEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entries...)
	r.version++
	return nil
}

func (r *ledgerRepository) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]domain.LedgerEntry, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}

func (r *ledgerRepository) Version(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version, nil
}
