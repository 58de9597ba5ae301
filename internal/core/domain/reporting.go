package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LedgerCheck is the result of the ledger-wide balance validation.
// An imbalance is a reportable state, never an error.
type LedgerCheck struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	IsBalanced  bool            `json:"isBalanced"`
	Variance    decimal.Decimal `json:"variance"`
}

// Ratio is a division-guarded ratio. Defined is false when the denominator
// was zero; such ratios render as "N/A" rather than NaN or Infinity.
type Ratio struct {
	Value   decimal.Decimal
	Defined bool
}

// MarshalJSON renders undefined ratios as the "N/A" sentinel.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return json.Marshal("N/A")
	}
	return r.Value.MarshalJSON()
}

func (r Ratio) String() string {
	if !r.Defined {
		return "N/A"
	}
	return r.Value.String()
}

// TrialBalanceRow is one account line in the trial balance.
type TrialBalanceRow struct {
	AccountName string          `json:"accountName"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	NetBalance  decimal.Decimal `json:"netBalance"`
}

// TrialBalanceGroup is one category section with its subtotal.
type TrialBalanceGroup struct {
	Category       AccountCategory   `json:"category"`
	Rows           []TrialBalanceRow `json:"rows"`
	SubtotalDebit  decimal.Decimal   `json:"subtotalDebit"`
	SubtotalCredit decimal.Decimal   `json:"subtotalCredit"`
}

// TrialBalanceReport lists every chart account with its debit/credit totals,
// grouped by category, with the ledger-wide balance check.
type TrialBalanceReport struct {
	Groups      []TrialBalanceGroup `json:"groups"`
	TotalDebit  decimal.Decimal     `json:"totalDebit"`
	TotalCredit decimal.Decimal     `json:"totalCredit"`
	IsBalanced  bool                `json:"isBalanced"`
	Variance    decimal.Decimal     `json:"variance"`
}

// BalanceSheetLine is one account with its net amount in a balance sheet section.
type BalanceSheetLine struct {
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// BalanceSheetSection groups accounts of one subcategory.
type BalanceSheetSection struct {
	SubCategory AccountSubCategory `json:"subCategory"`
	Lines       []BalanceSheetLine `json:"lines"`
	Total       decimal.Decimal    `json:"total"`
}

// BalanceSheetRatios are the derived indicators shown alongside the sheet.
// DebtToEquity is undefined when equity is zero; the composition percentages
// are undefined when total assets are zero.
type BalanceSheetRatios struct {
	WorkingCapital      decimal.Decimal `json:"workingCapital"`
	DebtToEquity        Ratio           `json:"debtToEquity"`
	AssetCompositionPct Ratio           `json:"assetCompositionPct"`
	EquityRatioPct      Ratio           `json:"equityRatioPct"`
}

// BalanceSheetReport presents assets against liabilities plus equity.
// IsBalanced uses the tolerant comparison (variance under one currency unit),
// unlike the exact ledger-wide check.
type BalanceSheetReport struct {
	CurrentAssets          BalanceSheetSection `json:"currentAssets"`
	NonCurrentAssets       BalanceSheetSection `json:"nonCurrentAssets"`
	CurrentLiabilities     BalanceSheetSection `json:"currentLiabilities"`
	NonCurrentLiabilities  BalanceSheetSection `json:"nonCurrentLiabilities"`
	Equity                 BalanceSheetSection `json:"equity"`
	TotalAssets            decimal.Decimal     `json:"totalAssets"`
	TotalLiabilities       decimal.Decimal     `json:"totalLiabilities"`
	TotalEquity            decimal.Decimal     `json:"totalEquity"`
	TotalLiabilitiesEquity decimal.Decimal     `json:"totalLiabilitiesEquity"`
	IsBalanced             bool                `json:"isBalanced"`
	Variance               decimal.Decimal     `json:"variance"`
	Ratios                 BalanceSheetRatios  `json:"ratios"`
}

// AccountAmount pairs an account with its net amount for P&L and cash flow lines.
type AccountAmount struct {
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfitAndLossReport derives gross and net profit from the revenue and
// expense accounts. Margins are percentages of total revenue, zero when
// revenue is zero.
type ProfitAndLossReport struct {
	Revenue                []AccountAmount `json:"revenue"`
	CostOfGoodsSold        []AccountAmount `json:"costOfGoodsSold"`
	OperatingExpenses      []AccountAmount `json:"operatingExpenses"`
	TotalRevenue           decimal.Decimal `json:"totalRevenue"`
	TotalCostOfGoodsSold   decimal.Decimal `json:"totalCostOfGoodsSold"`
	GrossProfit            decimal.Decimal `json:"grossProfit"`
	TotalOperatingExpenses decimal.Decimal `json:"totalOperatingExpenses"`
	NetProfit              decimal.Decimal `json:"netProfit"`
	GrossMarginPct         decimal.Decimal `json:"grossMarginPct"`
	NetMarginPct           decimal.Decimal `json:"netMarginPct"`
}

// CashFlowSection nets the inflows against the outflows of one activity bucket.
type CashFlowSection struct {
	Activity CashFlowActivity `json:"activity"`
	Lines    []AccountAmount  `json:"lines"`
	Inflows  decimal.Decimal  `json:"inflows"`
	Outflows decimal.Decimal  `json:"outflows"`
	Net      decimal.Decimal  `json:"net"`
}

// CashFlowReport buckets entries by the account's pre-classified activity.
// Non-cash accounts are excluded, so the report diverges from profit and
// loss by exactly the non-cash items. NetCashChange is the sum of the three
// section nets.
type CashFlowReport struct {
	Operating     CashFlowSection `json:"operating"`
	Investing     CashFlowSection `json:"investing"`
	Financing     CashFlowSection `json:"financing"`
	NetCashChange decimal.Decimal `json:"netCashChange"`
}
