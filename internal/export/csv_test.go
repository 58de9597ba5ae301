package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shambaledger/farm_ledger_app/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrialBalance() *domain.TrialBalanceReport {
	return &domain.TrialBalanceReport{
		Groups: []domain.TrialBalanceGroup{
			{
				Category: domain.Assets,
				Rows: []domain.TrialBalanceRow{
					{AccountName: "CashOnHand", AccountCode: "1010", Debit: decimal.NewFromInt(4590), NetBalance: decimal.NewFromInt(4590)},
				},
				SubtotalDebit: decimal.NewFromInt(4590),
			},
			{
				Category: domain.Revenue,
				Rows: []domain.TrialBalanceRow{
					{AccountName: "DairySales", AccountCode: "4010", Credit: decimal.NewFromInt(4590), NetBalance: decimal.NewFromInt(4590)},
				},
				SubtotalCredit: decimal.NewFromInt(4590),
			},
		},
		TotalDebit:  decimal.NewFromInt(4590),
		TotalCredit: decimal.NewFromInt(4590),
		IsBalanced:  true,
	}
}

func TestWriteTrialBalance_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteTrialBalance(&buf, sampleTrialBalance(), export.FormatCSV))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 6) // header, 2 rows, 2 subtotals, total
	assert.Equal(t, []string{"category", "code", "account", "debit", "credit", "net", "net_display"}, records[0])
	assert.Equal(t, "CashOnHand", records[1][2])
	assert.Equal(t, "KES 4,590", records[1][6])
	assert.Equal(t, "SUBTOTAL", records[2][2])
	assert.Equal(t, "TOTAL", records[5][2])
	assert.Equal(t, "4590", records[5][3])
}

func TestWriteCashFlow_CSV(t *testing.T) {
	report := &domain.CashFlowReport{
		Operating: domain.CashFlowSection{
			Activity: domain.ActivityOperating,
			Lines: []domain.AccountAmount{
				{AccountName: "DairySales", Amount: decimal.NewFromInt(4590)},
				{AccountName: "Feeds", Amount: decimal.NewFromInt(-840)},
			},
			Inflows:  decimal.NewFromInt(4590),
			Outflows: decimal.NewFromInt(840),
			Net:      decimal.NewFromInt(3750),
		},
		Investing:     domain.CashFlowSection{Activity: domain.ActivityInvesting},
		Financing:     domain.CashFlowSection{Activity: domain.ActivityFinancing},
		NetCashChange: decimal.NewFromInt(3750),
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCashFlow(&buf, report, export.FormatCSV))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// header, 2 operating lines, 3 section nets, grand total
	require.Len(t, records, 7)
	assert.Equal(t, []string{"OPERATING", "Feeds", "-840", "KES (840)"}, records[2])
	assert.Equal(t, "NET CASH CHANGE", records[6][1])
}

func TestWrite_UnrenderableFormats(t *testing.T) {
	var buf bytes.Buffer
	report := sampleTrialBalance()

	for _, format := range []export.Format{export.FormatPDF, export.FormatExcel} {
		err := export.WriteTrialBalance(&buf, report, format)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat, format)
		assert.Zero(t, buf.Len(), "nothing may be written for %s", format)
	}
}

func TestWrite_UnknownFormatIsValidationError(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteBalanceSheet(&buf, &domain.BalanceSheetReport{}, export.Format("docx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFormatPredicates(t *testing.T) {
	assert.True(t, export.FormatCSV.Valid())
	assert.True(t, export.FormatCSV.Renderable())
	assert.True(t, export.FormatPDF.Valid())
	assert.False(t, export.FormatPDF.Renderable())
	assert.False(t, export.Format("docx").Valid())
}
