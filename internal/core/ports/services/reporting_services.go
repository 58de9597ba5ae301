package services

import (
	"context"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
)

// ReportingService defines the four statement derivers. Each call is a pure
// one-shot transform over the current entry snapshot.
type ReportingService interface {
	TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error)

	BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error)

	ProfitAndLoss(ctx context.Context) (*domain.ProfitAndLossReport, error)

	CashFlow(ctx context.Context) (*domain.CashFlowReport, error)
}
