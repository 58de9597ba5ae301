package services

import (
	"context"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/shambaledger/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shambaledger/farm_ledger_app/internal/core/ports/services"
)

// accountService implements the AccountService interface over the fixed chart.
type accountService struct {
	BaseService
	chartRepo portsrepo.ChartRepository
}

// NewAccountService creates a new account service.
func NewAccountService(chartRepo portsrepo.ChartRepository) portssvc.AccountService {
	return &accountService{chartRepo: chartRepo}
}

var _ portssvc.AccountService = (*accountService)(nil)

// Classify maps an account name to its category, subcategory and normal side.
// The classifier is total over the chart: anything else is an error, not a
// silent default.
func (s *accountService) Classify(ctx context.Context, name string) (*domain.Account, error) {
	return s.chartRepo.FindAccountByName(ctx, name)
}

// ListAccounts returns the chart of accounts in code order.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.chartRepo.ListAccounts(ctx)
}
