package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/shambaledger/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shambaledger/farm_ledger_app/internal/core/ports/services"
	"github.com/shambaledger/farm_ledger_app/internal/utils/accounting"
)

// viewCacheKey identifies one memoized view evaluation. The snapshot version
// invalidates the cache on any ledger mutation; the day component covers the
// drift of relative date ranges across midnight.
type viewCacheKey struct {
	params  domain.ViewParams
	version int64
	day     string
}

// entryViewService produces filtered/sorted entry views with memoization.
// Memoization is an optimization only: the underlying view function is pure
// and idempotent, so a cache miss and a cache hit are indistinguishable.
type entryViewService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
	chartRepo  portsrepo.ChartRepository
	now        func() time.Time

	mu    sync.Mutex
	cache map[viewCacheKey][]domain.LedgerEntry
}

// EntryViewServiceOption is a functional option for configuring the view service.
type EntryViewServiceOption func(*entryViewService)

// WithClock overrides the clock used to resolve relative date ranges.
func WithClock(now func() time.Time) EntryViewServiceOption {
	return func(s *entryViewService) {
		s.now = now
	}
}

// NewEntryViewService creates a new entry view service with the provided options.
func NewEntryViewService(ledgerRepo portsrepo.LedgerRepository, chartRepo portsrepo.ChartRepository, options ...EntryViewServiceOption) portssvc.EntryViewService {
	svc := &entryViewService{
		ledgerRepo: ledgerRepo,
		chartRepo:  chartRepo,
		now:        time.Now,
		cache:      make(map[viewCacheKey][]domain.LedgerEntry),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EntryViewService = (*entryViewService)(nil)

// ViewEntries evaluates the view parameters against the current snapshot.
func (s *entryViewService) ViewEntries(ctx context.Context, params domain.ViewParams) ([]domain.LedgerEntry, error) {
	if err := validateViewParams(params); err != nil {
		return nil, err
	}

	version, err := s.ledgerRepo.Version(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot version: %w", err)
	}
	now := s.now()
	key := viewCacheKey{params: params, version: version, day: now.Format("2006-01-02")}

	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		s.LogDebug(ctx, "Entry view served from cache", slog.Int64("version", version))
		return cached, nil
	}

	entries, err := s.ledgerRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for view")
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}
	accounts, err := s.chartRepo.AccountsByName(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts for view")
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}

	view := accounting.ViewEntries(entries, accounts, params, now)

	s.mu.Lock()
	// Cached results from older snapshot versions are dead weight; drop them.
	for k := range s.cache {
		if k.version != version {
			delete(s.cache, k)
		}
	}
	s.cache[key] = view
	s.mu.Unlock()

	s.LogDebug(ctx, "Entry view computed",
		slog.Int("entries", len(entries)),
		slog.Int("matched", len(view)))
	return view, nil
}

func validateViewParams(params domain.ViewParams) error {
	if params.Category != "" && !params.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, params.Category)
	}
	if !params.Range.Valid() {
		return fmt.Errorf("%w: unknown date range %q", apperrors.ErrValidation, params.Range)
	}
	if !params.SortBy.Valid() {
		return fmt.Errorf("%w: unknown sort field %q", apperrors.ErrValidation, params.SortBy)
	}
	if !params.Order.Valid() {
		return fmt.Errorf("%w: unknown sort order %q", apperrors.ErrValidation, params.Order)
	}
	return nil
}
