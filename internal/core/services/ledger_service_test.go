package services_test

import (
	"context"
	"testing"

	"github.com/shambaledger/farm_ledger_app/internal/adapters/memory"
	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shambaledger/farm_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_IngestAssignsEntryIDs(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := memory.NewLedgerRepository()
	svc := services.NewLedgerService(ledgerRepo, memory.NewChartRepository())

	count, err := svc.IngestEntries(ctx, []domain.LedgerEntry{
		postDebit("CashOnHand", 1090),
		postCredit("DairySales", 1090),
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	stored, err := ledgerRepo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, e := range stored {
		assert.NotEmpty(t, e.EntryID)
	}
}

func TestLedgerService_IngestPreservesProvidedIDs(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := memory.NewLedgerRepository()
	svc := services.NewLedgerService(ledgerRepo, memory.NewChartRepository())

	entry := postDebit("CashOnHand", 50)
	entry.EntryID = "entry-001"

	_, err := svc.IngestEntries(ctx, []domain.LedgerEntry{entry}, true)
	require.NoError(t, err)

	stored, err := ledgerRepo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "entry-001", stored[0].EntryID)
}

func TestLedgerService_IngestRejectsWholeBatch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		bad     domain.LedgerEntry
		wantErr error
	}{
		{
			name:    "unknown account",
			bad:     postDebit("TractorFund", 100),
			wantErr: apperrors.ErrUnknownAccount,
		},
		{
			name: "both sides set",
			bad: domain.LedgerEntry{
				AccountName: "Feeds",
				Debit:       decimal.NewFromInt(10),
				Credit:      decimal.NewFromInt(10),
			},
			wantErr: apperrors.ErrInvalidEntry,
		},
		{
			name:    "neither side set",
			bad:     domain.LedgerEntry{AccountName: "Feeds"},
			wantErr: apperrors.ErrInvalidEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledgerRepo := memory.NewLedgerRepository()
			svc := services.NewLedgerService(ledgerRepo, memory.NewChartRepository())

			_, err := svc.IngestEntries(ctx, []domain.LedgerEntry{
				postDebit("CashOnHand", 100),
				tt.bad,
			}, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			stored, listErr := ledgerRepo.ListEntries(ctx)
			require.NoError(t, listErr)
			assert.Empty(t, stored, "a rejected batch must leave the snapshot untouched")
		})
	}
}

func TestLedgerService_AppendKeepsExistingEntries(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := memory.NewLedgerRepository()
	svc := services.NewLedgerService(ledgerRepo, memory.NewChartRepository())

	_, err := svc.IngestEntries(ctx, []domain.LedgerEntry{postDebit("CashOnHand", 100)}, true)
	require.NoError(t, err)
	_, err = svc.IngestEntries(ctx, []domain.LedgerEntry{postCredit("DairySales", 100)}, false)
	require.NoError(t, err)

	stored, err := ledgerRepo.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestLedgerService_ValidateLedger(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := memory.NewLedgerRepository()
	svc := services.NewLedgerService(ledgerRepo, memory.NewChartRepository())

	_, err := svc.IngestEntries(ctx, []domain.LedgerEntry{
		postDebit("CashOnHand", 4590),
		postCredit("DairySales", 4500),
	}, true)
	require.NoError(t, err)

	check, err := svc.ValidateLedger(ctx)
	require.NoError(t, err)
	assert.False(t, check.IsBalanced)
	assert.True(t, check.Variance.Equal(decimal.NewFromInt(90)))
}
