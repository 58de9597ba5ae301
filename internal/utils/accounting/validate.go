package accounting

import (
	"fmt"

	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// balanceSheetTolerance absorbs rounding in the assets vs liabilities+equity
// comparison. The ledger-wide check stays exact; only the balance sheet is
// tolerant, matching the two policies of the reporting screens.
var balanceSheetTolerance = decimal.NewFromInt(1)

// ValidateEntry checks that an entry is a well-formed double-entry line:
// exactly one of debit/credit present and positive, the other zero.
func ValidateEntry(e domain.LedgerEntry) error {
	if e.AccountName == "" {
		return fmt.Errorf("%w: missing account reference", apperrors.ErrInvalidEntry)
	}
	if e.Debit.IsNegative() || e.Credit.IsNegative() {
		return fmt.Errorf("%w: negative amount on account %q", apperrors.ErrInvalidEntry, e.AccountName)
	}
	hasDebit := e.Debit.IsPositive()
	hasCredit := e.Credit.IsPositive()
	if hasDebit == hasCredit {
		return fmt.Errorf("%w: exactly one of debit/credit must be positive on account %q", apperrors.ErrInvalidEntry, e.AccountName)
	}
	return nil
}

// ValidateLedger computes the ledger-wide balance check. The comparison is
// exact; variance is signed debit-minus-credit. An imbalance is a reportable
// state, so this never returns an error and never attempts correction.
func ValidateLedger(entries []domain.LedgerEntry) domain.LedgerCheck {
	totalDebit := TotalDebits(entries)
	totalCredit := TotalCredits(entries)
	variance := totalDebit.Sub(totalCredit)
	return domain.LedgerCheck{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		IsBalanced:  variance.IsZero(),
		Variance:    variance,
	}
}

// BalanceSheetCheck compares total assets against liabilities plus equity.
// The signed variance is assets minus liabilities+equity; balanced means the
// absolute variance is under one currency unit.
func BalanceSheetCheck(totalAssets, totalLiabilitiesEquity decimal.Decimal) (decimal.Decimal, bool) {
	variance := totalAssets.Sub(totalLiabilitiesEquity)
	return variance, variance.Abs().LessThan(balanceSheetTolerance)
}
