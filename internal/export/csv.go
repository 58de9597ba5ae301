// Package export renders report view-models for the download collaborators.
// The core hands over a complete, validated view-model; this package has no
// say in its contents. Only CSV is rendered here; the PDF and Excel format
// tags are accepted but answered with ErrUnsupportedFormat, matching the
// stubbed exporters of the mobile app.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shambaledger/farm_ledger_app/internal/utils"
)

// Format is the export format tag supplied by the caller.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatPDF   Format = "pdf"
	FormatExcel Format = "xlsx"
)

// Valid reports whether f is a recognized format tag.
func (f Format) Valid() bool {
	switch f {
	case FormatCSV, FormatPDF, FormatExcel:
		return true
	}
	return false
}

// Renderable reports whether this collaborator can actually render f.
func (f Format) Renderable() bool {
	return f == FormatCSV
}

func checkFormat(f Format) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrValidation, f)
	}
	if !f.Renderable() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, f)
	}
	return nil
}

// WriteTrialBalance renders the trial balance report.
func WriteTrialBalance(w io.Writer, report *domain.TrialBalanceReport, format Format) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "code", "account", "debit", "credit", "net", "net_display"}); err != nil {
		return err
	}
	for _, group := range report.Groups {
		for _, row := range group.Rows {
			record := []string{
				string(group.Category),
				row.AccountCode,
				row.AccountName,
				row.Debit.String(),
				row.Credit.String(),
				row.NetBalance.String(),
				utils.FormatKES(row.NetBalance),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		subtotal := []string{
			string(group.Category), "", "SUBTOTAL",
			group.SubtotalDebit.String(),
			group.SubtotalCredit.String(),
			"", "",
		}
		if err := cw.Write(subtotal); err != nil {
			return err
		}
	}
	total := []string{
		"", "", "TOTAL",
		report.TotalDebit.String(),
		report.TotalCredit.String(),
		report.Variance.String(),
		utils.FormatKES(report.Variance),
	}
	if err := cw.Write(total); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteBalanceSheet renders the balance sheet report.
func WriteBalanceSheet(w io.Writer, report *domain.BalanceSheetReport, format Format) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"section", "account", "amount", "amount_display"}); err != nil {
		return err
	}
	sections := []domain.BalanceSheetSection{
		report.CurrentAssets,
		report.NonCurrentAssets,
		report.CurrentLiabilities,
		report.NonCurrentLiabilities,
		report.Equity,
	}
	for _, section := range sections {
		for _, line := range section.Lines {
			record := []string{
				string(section.SubCategory),
				line.AccountName,
				line.Amount.String(),
				utils.FormatKES(line.Amount),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{string(section.SubCategory), "TOTAL", section.Total.String(), utils.FormatKES(section.Total)}); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"", "TOTAL ASSETS", report.TotalAssets.String(), utils.FormatKES(report.TotalAssets)}); err != nil {
		return err
	}
	if err := cw.Write([]string{"", "TOTAL LIABILITIES + EQUITY", report.TotalLiabilitiesEquity.String(), utils.FormatKES(report.TotalLiabilitiesEquity)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteProfitAndLoss renders the profit and loss report.
func WriteProfitAndLoss(w io.Writer, report *domain.ProfitAndLossReport, format Format) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"section", "account", "amount", "amount_display"}); err != nil {
		return err
	}
	write := func(section string, lines []domain.AccountAmount) error {
		for _, line := range lines {
			if err := cw.Write([]string{section, line.AccountName, line.Amount.String(), utils.FormatKES(line.Amount)}); err != nil {
				return err
			}
		}
		return nil
	}
	if err := write("REVENUE", report.Revenue); err != nil {
		return err
	}
	if err := write("COST_OF_GOODS_SOLD", report.CostOfGoodsSold); err != nil {
		return err
	}
	if err := write("OPERATING_EXPENSES", report.OperatingExpenses); err != nil {
		return err
	}
	if err := cw.Write([]string{"", "GROSS PROFIT", report.GrossProfit.String(), utils.FormatKES(report.GrossProfit)}); err != nil {
		return err
	}
	if err := cw.Write([]string{"", "NET PROFIT", report.NetProfit.String(), utils.FormatKES(report.NetProfit)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteCashFlow renders the cash flow statement.
func WriteCashFlow(w io.Writer, report *domain.CashFlowReport, format Format) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"activity", "account", "amount", "amount_display"}); err != nil {
		return err
	}
	for _, section := range []domain.CashFlowSection{report.Operating, report.Investing, report.Financing} {
		for _, line := range section.Lines {
			if err := cw.Write([]string{string(section.Activity), line.AccountName, line.Amount.String(), utils.FormatKES(line.Amount)}); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{string(section.Activity), "NET", section.Net.String(), utils.FormatKES(section.Net)}); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"", "NET CASH CHANGE", report.NetCashChange.String(), utils.FormatKES(report.NetCashChange)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
