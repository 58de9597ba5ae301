package services

import (
	"context"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
)

// AccountService exposes the chart of accounts and its classification.
type AccountService interface {
	// Classify maps an account name to its chart entry. Unknown names yield
	// apperrors.ErrUnknownAccount.
	Classify(ctx context.Context, name string) (*domain.Account, error)

	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
