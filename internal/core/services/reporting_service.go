package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/shambaledger/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shambaledger/farm_ledger_app/internal/core/ports/services"
	"github.com/shambaledger/farm_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the four statement derivers. Each deriver is a
// pure one-shot transform over the entry snapshot; nothing is cached here
// because the reports are cheap to recompute at the data volumes in scope.
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
	chartRepo  portsrepo.ChartRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(ledgerRepo portsrepo.LedgerRepository, chartRepo portsrepo.ChartRepository) portssvc.ReportingService {
	return &reportingService{ledgerRepo: ledgerRepo, chartRepo: chartRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// snapshot loads the entries and per-account balances every deriver starts from.
func (s *reportingService) snapshot(ctx context.Context) ([]domain.LedgerEntry, []domain.AccountBalance, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger entries for report")
		return nil, nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}
	accounts, err := s.chartRepo.AccountsByName(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts for report")
		return nil, nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}
	balances, err := accounting.SumByAccount(entries, accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate ledger entries")
		return nil, nil, err
	}
	return entries, balances, nil
}

// TrialBalance lists every chart account with its debit/credit totals,
// grouped by category with subtotals, plus the exact ledger-wide check.
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error) {
	entries, balances, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[domain.AccountCategory][]domain.AccountBalance)
	for _, b := range balances {
		byCategory[b.Account.Category] = append(byCategory[b.Account.Category], b)
	}

	report := &domain.TrialBalanceReport{}
	for _, category := range domain.CategoryOrder {
		group := domain.TrialBalanceGroup{Category: category}
		for _, b := range byCategory[category] {
			group.Rows = append(group.Rows, domain.TrialBalanceRow{
				AccountName: b.Account.Name,
				AccountCode: b.Account.Code,
				Debit:       b.TotalDebit,
				Credit:      b.TotalCredit,
				NetBalance:  b.NetBalance,
			})
			group.SubtotalDebit = group.SubtotalDebit.Add(b.TotalDebit)
			group.SubtotalCredit = group.SubtotalCredit.Add(b.TotalCredit)
		}
		report.Groups = append(report.Groups, group)
	}

	check := accounting.ValidateLedger(entries)
	report.TotalDebit = check.TotalDebit
	report.TotalCredit = check.TotalCredit
	report.IsBalanced = check.IsBalanced
	report.Variance = check.Variance

	s.LogInfo(ctx, "Trial balance report generated",
		slog.Int("groups", len(report.Groups)),
		slog.Bool("balanced", report.IsBalanced))
	return report, nil
}

// BalanceSheet presents assets against liabilities plus equity, with the
// tolerant balanced check and the derived ratios.
func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	_, balances, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	sections := map[domain.AccountSubCategory]*domain.BalanceSheetSection{
		domain.CurrentAssets:         {SubCategory: domain.CurrentAssets},
		domain.NonCurrentAssets:      {SubCategory: domain.NonCurrentAssets},
		domain.CurrentLiabilities:    {SubCategory: domain.CurrentLiabilities},
		domain.NonCurrentLiabilities: {SubCategory: domain.NonCurrentLiabilities},
		domain.OwnerEquity:           {SubCategory: domain.OwnerEquity},
	}
	for _, b := range balances {
		section, ok := sections[b.Account.SubCategory]
		if !ok {
			continue // revenue/expense accounts belong to P&L, not the sheet
		}
		section.Lines = append(section.Lines, domain.BalanceSheetLine{
			AccountName: b.Account.Name,
			Amount:      b.NetBalance,
		})
		section.Total = section.Total.Add(b.NetBalance)
	}

	report := &domain.BalanceSheetReport{
		CurrentAssets:         *sections[domain.CurrentAssets],
		NonCurrentAssets:      *sections[domain.NonCurrentAssets],
		CurrentLiabilities:    *sections[domain.CurrentLiabilities],
		NonCurrentLiabilities: *sections[domain.NonCurrentLiabilities],
		Equity:                *sections[domain.OwnerEquity],
	}
	report.TotalAssets = report.CurrentAssets.Total.Add(report.NonCurrentAssets.Total)
	report.TotalLiabilities = report.CurrentLiabilities.Total.Add(report.NonCurrentLiabilities.Total)
	report.TotalEquity = report.Equity.Total
	report.TotalLiabilitiesEquity = report.TotalLiabilities.Add(report.TotalEquity)
	report.Variance, report.IsBalanced = accounting.BalanceSheetCheck(report.TotalAssets, report.TotalLiabilitiesEquity)

	report.Ratios = domain.BalanceSheetRatios{
		WorkingCapital:      report.CurrentAssets.Total.Sub(report.CurrentLiabilities.Total),
		DebtToEquity:        accounting.SafeRatio(report.TotalLiabilities, report.TotalEquity),
		AssetCompositionPct: percentRatio(report.NonCurrentAssets.Total, report.TotalAssets),
		EquityRatioPct:      percentRatio(report.TotalEquity, report.TotalAssets),
	}

	s.LogInfo(ctx, "Balance sheet report generated",
		slog.String("total_assets", report.TotalAssets.String()),
		slog.Bool("balanced", report.IsBalanced))
	return report, nil
}

// percentRatio is a division-guarded percentage, undefined at a zero denominator.
func percentRatio(num, den decimal.Decimal) domain.Ratio {
	r := accounting.SafeRatio(num.Mul(decimal.NewFromInt(100)), den)
	if r.Defined {
		r.Value = r.Value.Round(2)
	}
	return r
}

// ProfitAndLoss derives gross and net profit: revenue minus cost of goods
// sold is gross profit, minus operating expenses is net profit. Margins are
// percentages of revenue, zero when revenue is zero.
func (s *reportingService) ProfitAndLoss(ctx context.Context) (*domain.ProfitAndLossReport, error) {
	_, balances, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.ProfitAndLossReport{}
	for _, b := range balances {
		line := domain.AccountAmount{AccountName: b.Account.Name, Amount: b.NetBalance}
		switch {
		case b.Account.Category == domain.Revenue:
			report.Revenue = append(report.Revenue, line)
			report.TotalRevenue = report.TotalRevenue.Add(b.NetBalance)
		case b.Account.SubCategory == domain.CostOfGoodsSold:
			report.CostOfGoodsSold = append(report.CostOfGoodsSold, line)
			report.TotalCostOfGoodsSold = report.TotalCostOfGoodsSold.Add(b.NetBalance)
		case b.Account.SubCategory == domain.OperatingExpenses:
			report.OperatingExpenses = append(report.OperatingExpenses, line)
			report.TotalOperatingExpenses = report.TotalOperatingExpenses.Add(b.NetBalance)
		}
	}

	report.GrossProfit = report.TotalRevenue.Sub(report.TotalCostOfGoodsSold)
	report.NetProfit = report.GrossProfit.Sub(report.TotalOperatingExpenses)
	report.GrossMarginPct = accounting.SafePercent(report.GrossProfit, report.TotalRevenue)
	report.NetMarginPct = accounting.SafePercent(report.NetProfit, report.TotalRevenue)

	s.LogInfo(ctx, "Profit and loss report generated",
		slog.String("net_profit", report.NetProfit.String()))
	return report, nil
}

// CashFlow buckets each account's flows by its pre-classified activity.
// Inflows are credits, outflows are debits; non-cash accounts and the cash
// accounts themselves are excluded, so cash flow diverges from profit and
// loss by exactly the non-cash items.
func (s *reportingService) CashFlow(ctx context.Context) (*domain.CashFlowReport, error) {
	_, balances, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	sections := map[domain.CashFlowActivity]*domain.CashFlowSection{
		domain.ActivityOperating: {Activity: domain.ActivityOperating},
		domain.ActivityInvesting: {Activity: domain.ActivityInvesting},
		domain.ActivityFinancing: {Activity: domain.ActivityFinancing},
	}
	for _, b := range balances {
		section, ok := sections[b.Account.CashFlowActivity]
		if !ok {
			continue
		}
		if b.TotalDebit.IsZero() && b.TotalCredit.IsZero() {
			continue
		}
		section.Lines = append(section.Lines, domain.AccountAmount{
			AccountName: b.Account.Name,
			Amount:      b.TotalCredit.Sub(b.TotalDebit),
		})
		section.Inflows = section.Inflows.Add(b.TotalCredit)
		section.Outflows = section.Outflows.Add(b.TotalDebit)
	}

	report := &domain.CashFlowReport{}
	for _, section := range sections {
		section.Net = section.Inflows.Sub(section.Outflows)
	}
	report.Operating = *sections[domain.ActivityOperating]
	report.Investing = *sections[domain.ActivityInvesting]
	report.Financing = *sections[domain.ActivityFinancing]
	report.NetCashChange = report.Operating.Net.Add(report.Investing.Net).Add(report.Financing.Net)

	s.LogInfo(ctx, "Cash flow report generated",
		slog.String("net_cash_change", report.NetCashChange.String()))
	return report, nil
}
