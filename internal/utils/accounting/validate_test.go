package accounting_test

import (
	"testing"

	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shambaledger/farm_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   domain.LedgerEntry
		wantErr bool
	}{
		{
			name:  "debit only is valid",
			entry: domain.LedgerEntry{AccountName: "Feeds", Debit: decimal.NewFromInt(840)},
		},
		{
			name:  "credit only is valid",
			entry: domain.LedgerEntry{AccountName: "DairySales", Credit: decimal.NewFromInt(1090)},
		},
		{
			name:    "both sides populated is rejected",
			entry:   domain.LedgerEntry{AccountName: "Feeds", Debit: decimal.NewFromInt(10), Credit: decimal.NewFromInt(10)},
			wantErr: true,
		},
		{
			name:    "neither side populated is rejected",
			entry:   domain.LedgerEntry{AccountName: "Feeds"},
			wantErr: true,
		},
		{
			name:    "negative amount is rejected",
			entry:   domain.LedgerEntry{AccountName: "Feeds", Debit: decimal.NewFromInt(-5)},
			wantErr: true,
		},
		{
			name:    "missing account is rejected",
			entry:   domain.LedgerEntry{Debit: decimal.NewFromInt(5)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateEntry(tt.entry)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidEntry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLedger_VarianceIdentity(t *testing.T) {
	entries := []domain.LedgerEntry{
		debitEntry("CashOnHand", 4590),
		creditEntry("DairySales", 1090),
		creditEntry("DairySales", 3500),
	}

	check := accounting.ValidateLedger(entries)

	// variance == sum(debit) - sum(credit), and balanced iff variance is zero
	assert.True(t, check.Variance.Equal(check.TotalDebit.Sub(check.TotalCredit)))
	assert.True(t, check.Variance.IsZero())
	assert.True(t, check.IsBalanced)
}

func TestValidateLedger_ImbalanceIsReportedNotRaised(t *testing.T) {
	entries := []domain.LedgerEntry{
		debitEntry("CashOnHand", 1000),
		creditEntry("DairySales", 999),
	}

	check := accounting.ValidateLedger(entries)

	assert.False(t, check.IsBalanced)
	assert.True(t, check.Variance.Equal(decimal.NewFromInt(1)))
}

func TestValidateLedger_ExactCheckHasNoTolerance(t *testing.T) {
	// A sub-unit variance is still an imbalance for the ledger-wide check
	entries := []domain.LedgerEntry{
		{AccountName: "CashOnHand", Debit: decimal.RequireFromString("100.5")},
		{AccountName: "DairySales", Credit: decimal.RequireFromString("100.4")},
	}

	check := accounting.ValidateLedger(entries)
	assert.False(t, check.IsBalanced)
}

func TestValidateLedger_EmptyLedger(t *testing.T) {
	check := accounting.ValidateLedger(nil)

	assert.True(t, check.TotalDebit.IsZero())
	assert.True(t, check.TotalCredit.IsZero())
	assert.True(t, check.IsBalanced)
	assert.True(t, check.Variance.IsZero())
}

func TestBalanceSheetCheck_TolerantComparison(t *testing.T) {
	assets := decimal.NewFromInt(2250815)

	// Exact equality balances
	variance, balanced := accounting.BalanceSheetCheck(assets, decimal.NewFromInt(2250815))
	assert.True(t, balanced)
	assert.True(t, variance.IsZero())

	// Sub-unit variance is absorbed
	variance, balanced = accounting.BalanceSheetCheck(assets, decimal.RequireFromString("2250814.40"))
	assert.True(t, balanced)
	assert.True(t, variance.Equal(decimal.RequireFromString("0.60")))

	// A whole currency unit is not
	_, balanced = accounting.BalanceSheetCheck(assets, decimal.NewFromInt(2250814))
	assert.False(t, balanced)
}
