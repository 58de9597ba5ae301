package accounting_test

import (
	"testing"
	"time"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shambaledger/farm_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewChart() map[string]domain.Account {
	return map[string]domain.Account{
		"CashOnHand": {
			Name: "CashOnHand", Code: "1010", Category: domain.Assets,
			SubCategory: domain.CurrentAssets, NormalSide: domain.DebitSide,
			CashFlowActivity: domain.ActivityCash,
		},
		"Feeds": {
			Name: "Feeds", Code: "5010", Category: domain.Expenses,
			SubCategory: domain.CostOfGoodsSold, NormalSide: domain.DebitSide,
			CashFlowActivity: domain.ActivityOperating,
		},
		"DairySales": {
			Name: "DairySales", Code: "4010", Category: domain.Revenue,
			SubCategory: domain.OperatingRevenue, NormalSide: domain.CreditSide,
			CashFlowActivity: domain.ActivityOperating,
		},
		"BiologicalGains": {
			Name: "BiologicalGains", Code: "4510", Category: domain.Revenue,
			SubCategory: domain.OtherRevenue, NormalSide: domain.CreditSide,
			CashFlowActivity: domain.ActivityNonCash,
		},
	}
}

func viewEntry(account, description string, date time.Time, debit, credit int64) domain.LedgerEntry {
	return domain.LedgerEntry{
		AccountName: account,
		Description: description,
		Date:        date,
		Debit:       decimal.NewFromInt(debit),
		Credit:      decimal.NewFromInt(credit),
	}
}

func TestViewEntries_AbsoluteValueSort(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		viewEntry("BiologicalGains", "herd revaluation", now, 0, 10000),
		viewEntry("Feeds", "feed purchase", now, 300, 0),
		viewEntry("DairySales", "milk delivery", now, 0, 1090),
	}
	params := domain.DefaultViewParams()
	params.SortBy = domain.SortByBalance

	got := accounting.ViewEntries(entries, viewChart(), params, now)

	// Signed balances are -10000, 300, -1090; ascending order is on
	// magnitude, so 300 comes first and -10000 last.
	require.Len(t, got, 3)
	assert.Equal(t, "Feeds", got[0].AccountName)
	assert.Equal(t, "DairySales", got[1].AccountName)
	assert.Equal(t, "BiologicalGains", got[2].AccountName)

	params.Order = domain.Descending
	got = accounting.ViewEntries(entries, viewChart(), params, now)
	assert.Equal(t, "BiologicalGains", got[0].AccountName)
	assert.Equal(t, "DairySales", got[1].AccountName)
	assert.Equal(t, "Feeds", got[2].AccountName)
}

func TestViewEntries_QueryMatchesAcrossFields(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		viewEntry("DairySales", "milk delivery", now, 0, 1090),
		viewEntry("Feeds", "hay bales", now, 300, 0),
	}
	chart := viewChart()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"account name, case-insensitive", "dairy", []string{"DairySales"}},
		{"description substring", "bales", []string{"Feeds"}},
		{"category", "revenue", []string{"DairySales"}},
		{"no match", "tractor", nil},
		{"empty query keeps everything", "", []string{"DairySales", "Feeds"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := domain.DefaultViewParams()
			params.Query = tt.query
			got := accounting.ViewEntries(entries, chart, params, now)
			names := make([]string, 0, len(got))
			for _, e := range got {
				names = append(names, e.AccountName)
			}
			if tt.want == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.want, names)
			}
		})
	}
}

func TestViewEntries_CategoryFilter(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		viewEntry("DairySales", "milk delivery", now, 0, 1090),
		viewEntry("Feeds", "feed purchase", now, 300, 0),
		viewEntry("CashOnHand", "cash received", now, 1090, 0),
	}
	params := domain.DefaultViewParams()
	params.Category = domain.Revenue

	got := accounting.ViewEntries(entries, viewChart(), params, now)

	require.Len(t, got, 1)
	assert.Equal(t, "DairySales", got[0].AccountName)
}

func TestViewEntries_DateRanges(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		viewEntry("Feeds", "this week", now.AddDate(0, 0, -2), 100, 0),
		viewEntry("Feeds", "last month", now.AddDate(0, 0, -20), 100, 0),
		viewEntry("Feeds", "last quarter", now.AddDate(0, 0, -80), 100, 0),
		viewEntry("Feeds", "last year", time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC), 100, 0),
	}
	chart := viewChart()

	tests := []struct {
		rng  domain.DateRange
		want int
	}{
		{domain.RangeAll, 4},
		{domain.RangeLast7Days, 1},
		{domain.RangeLast30Days, 2},
		{domain.RangeLast90Days, 3},
		{domain.RangeThisYear, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			params := domain.DefaultViewParams()
			params.Range = tt.rng
			got := accounting.ViewEntries(entries, chart, params, now)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestViewEntries_StableTieBreak(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	// All four entries share the same date; snapshot order must survive.
	entries := []domain.LedgerEntry{
		viewEntry("Feeds", "first", now, 100, 0),
		viewEntry("DairySales", "second", now, 0, 100),
		viewEntry("CashOnHand", "third", now, 100, 0),
		viewEntry("Feeds", "fourth", now, 100, 0),
	}
	params := domain.DefaultViewParams()

	got := accounting.ViewEntries(entries, viewChart(), params, now)

	require.Len(t, got, 4)
	for i, e := range got {
		assert.Equal(t, entries[i].Description, e.Description)
	}
}

func TestViewEntries_InputNotMutated(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		viewEntry("Feeds", "b", now, 300, 0),
		viewEntry("DairySales", "a", now, 0, 1090),
	}
	params := domain.DefaultViewParams()
	params.SortBy = domain.SortByDescription

	got := accounting.ViewEntries(entries, viewChart(), params, now)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Description)
	assert.Equal(t, "b", entries[0].Description)

	again := accounting.ViewEntries(entries, viewChart(), params, now)
	assert.Equal(t, got, again)
}

func TestDateRange_Valid(t *testing.T) {
	assert.True(t, domain.RangeAll.Valid())
	assert.True(t, domain.RangeThisYear.Valid())
	assert.False(t, domain.DateRange("LAST_YEAR").Valid())
}

func TestAccountCategory_ClosedSet(t *testing.T) {
	for _, c := range domain.CategoryOrder {
		assert.True(t, c.Valid())
	}
	assert.False(t, domain.AccountCategory("FOO").Valid())
	assert.False(t, domain.AccountCategory("assets").Valid())
}

func TestSortField_ClosedSet(t *testing.T) {
	for _, s := range domain.SortFieldLabels {
		assert.True(t, s.Key.Valid())
		assert.NotEmpty(t, s.Label)
	}
	assert.False(t, domain.SortField("AMOUNT").Valid())
}
