package dto

import (
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shambaledger/farm_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Groups []domain.TrialBalanceGroup `json:"groups"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	IsBalanced        bool            `json:"isBalanced"`
	Variance          decimal.Decimal `json:"variance"`
	VarianceFormatted string          `json:"varianceFormatted"`
}

// ToTrialBalanceResponse converts a domain trial balance report to a DTO response
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Groups:            report.Groups,
		IsBalanced:        report.IsBalanced,
		Variance:          report.Variance,
		VarianceFormatted: utils.FormatKES(report.Variance),
	}
	response.Totals.Debit = report.TotalDebit
	response.Totals.Credit = report.TotalCredit
	return response
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	CurrentAssets         domain.BalanceSheetSection `json:"currentAssets"`
	NonCurrentAssets      domain.BalanceSheetSection `json:"nonCurrentAssets"`
	CurrentLiabilities    domain.BalanceSheetSection `json:"currentLiabilities"`
	NonCurrentLiabilities domain.BalanceSheetSection `json:"nonCurrentLiabilities"`
	Equity                domain.BalanceSheetSection `json:"equity"`
	Summary               struct {
		TotalAssets                     decimal.Decimal `json:"totalAssets"`
		TotalAssetsFormatted            string          `json:"totalAssetsFormatted"`
		TotalLiabilities                decimal.Decimal `json:"totalLiabilities"`
		TotalEquity                     decimal.Decimal `json:"totalEquity"`
		TotalLiabilitiesEquity          decimal.Decimal `json:"totalLiabilitiesEquity"`
		TotalLiabilitiesEquityFormatted string          `json:"totalLiabilitiesEquityFormatted"`
	} `json:"summary"`
	IsBalanced bool                      `json:"isBalanced"`
	Variance   decimal.Decimal           `json:"variance"`
	Ratios     domain.BalanceSheetRatios `json:"ratios"`
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	response := BalanceSheetResponse{
		CurrentAssets:         report.CurrentAssets,
		NonCurrentAssets:      report.NonCurrentAssets,
		CurrentLiabilities:    report.CurrentLiabilities,
		NonCurrentLiabilities: report.NonCurrentLiabilities,
		Equity:                report.Equity,
		IsBalanced:            report.IsBalanced,
		Variance:              report.Variance,
		Ratios:                report.Ratios,
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalAssetsFormatted = utils.FormatKES(report.TotalAssets)
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.TotalLiabilitiesEquity = report.TotalLiabilitiesEquity
	response.Summary.TotalLiabilitiesEquityFormatted = utils.FormatKES(report.TotalLiabilitiesEquity)
	return response
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	Revenue           []domain.AccountAmount `json:"revenue"`
	CostOfGoodsSold   []domain.AccountAmount `json:"costOfGoodsSold"`
	OperatingExpenses []domain.AccountAmount `json:"operatingExpenses"`
	Summary           struct {
		TotalRevenue       decimal.Decimal `json:"totalRevenue"`
		GrossProfit        decimal.Decimal `json:"grossProfit"`
		NetProfit          decimal.Decimal `json:"netProfit"`
		NetProfitFormatted string          `json:"netProfitFormatted"`
		GrossMarginPct     decimal.Decimal `json:"grossMarginPct"`
		NetMarginPct       decimal.Decimal `json:"netMarginPct"`
	} `json:"summary"`
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		Revenue:           report.Revenue,
		CostOfGoodsSold:   report.CostOfGoodsSold,
		OperatingExpenses: report.OperatingExpenses,
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.GrossProfit = report.GrossProfit
	response.Summary.NetProfit = report.NetProfit
	response.Summary.NetProfitFormatted = utils.FormatKES(report.NetProfit)
	response.Summary.GrossMarginPct = report.GrossMarginPct
	response.Summary.NetMarginPct = report.NetMarginPct
	return response
}

// CashFlowResponse represents the cash flow statement response
type CashFlowResponse struct {
	Operating              domain.CashFlowSection `json:"operating"`
	Investing              domain.CashFlowSection `json:"investing"`
	Financing              domain.CashFlowSection `json:"financing"`
	NetCashChange          decimal.Decimal        `json:"netCashChange"`
	NetCashChangeFormatted string                 `json:"netCashChangeFormatted"`
}

// ToCashFlowResponse converts a domain cash flow report to a DTO response
func ToCashFlowResponse(report *domain.CashFlowReport) CashFlowResponse {
	return CashFlowResponse{
		Operating:              report.Operating,
		Investing:              report.Investing,
		Financing:              report.Financing,
		NetCashChange:          report.NetCashChange,
		NetCashChangeFormatted: utils.FormatKES(report.NetCashChange),
	}
}
