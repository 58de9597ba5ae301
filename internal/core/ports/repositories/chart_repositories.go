package repositories

import (
	"context"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
)

// ChartRepository exposes the fixed chart of accounts. Classification must be
// total over the chart: FindAccountByName returns apperrors.ErrUnknownAccount
// for any name outside it.
type ChartRepository interface {
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// ListAccounts returns the chart in account-code order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// AccountsByName returns the chart keyed by account name.
	AccountsByName(ctx context.Context) (map[string]domain.Account, error)
}
