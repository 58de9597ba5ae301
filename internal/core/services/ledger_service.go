package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/shambaledger/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shambaledger/farm_ledger_app/internal/core/ports/services"
	"github.com/shambaledger/farm_ledger_app/internal/utils/accounting"
)

// ledgerService implements ingestion and the ledger-wide balance check.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
	chartRepo  portsrepo.ChartRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, chartRepo portsrepo.ChartRepository) portssvc.LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo, chartRepo: chartRepo}
}

var _ portssvc.LedgerService = (*ledgerService)(nil)

// IngestEntries validates and stores a batch of entries. Every line must be
// a well-formed double-entry line posted to a chart account; the whole batch
// is rejected on the first bad line so a partial snapshot never exists.
// Entries without an ID get a generated one.
func (s *ledgerService) IngestEntries(ctx context.Context, entries []domain.LedgerEntry, replace bool) (int, error) {
	validated := make([]domain.LedgerEntry, 0, len(entries))
	for i, entry := range entries {
		if err := accounting.ValidateEntry(entry); err != nil {
			s.LogError(ctx, err, "Rejected malformed ledger entry", slog.Int("index", i))
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, err := s.chartRepo.FindAccountByName(ctx, entry.AccountName); err != nil {
			s.LogError(ctx, err, "Rejected entry for unknown account",
				slog.Int("index", i),
				slog.String("account", entry.AccountName))
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		if entry.EntryID == "" {
			entry.EntryID = uuid.NewString()
		}
		validated = append(validated, entry)
	}

	var err error
	if replace {
		err = s.ledgerRepo.ReplaceEntries(ctx, validated)
	} else {
		err = s.ledgerRepo.AppendEntries(ctx, validated)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to store ledger entries")
		return 0, fmt.Errorf("failed to store ledger entries: %w", err)
	}

	s.LogInfo(ctx, "Ledger entries ingested",
		slog.Int("count", len(validated)),
		slog.Bool("replace", replace))
	return len(validated), nil
}

// ValidateLedger runs the exact debits-equal-credits check over the snapshot.
// An imbalance is reported, never raised.
func (s *ledgerService) ValidateLedger(ctx context.Context) (domain.LedgerCheck, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for validation")
		return domain.LedgerCheck{}, fmt.Errorf("failed to load ledger entries: %w", err)
	}

	check := accounting.ValidateLedger(entries)
	if !check.IsBalanced {
		s.LogInfo(ctx, "Ledger is out of balance",
			slog.String("variance", check.Variance.String()))
	}
	return check, nil
}
