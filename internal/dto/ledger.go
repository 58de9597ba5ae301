package dto

import (
	"fmt"
	"time"

	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shambaledger/farm_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest is one ledger line in an ingestion batch. Exactly one
// of debit/credit must be positive; the service rejects anything else.
type CreateEntryRequest struct {
	EntryID     string          `json:"entryID"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
	Account     string          `json:"account" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// CreateEntriesRequest is a batch of entries to ingest. Replace swaps the
// whole snapshot instead of appending.
type CreateEntriesRequest struct {
	Entries []CreateEntryRequest `json:"entries" binding:"required,min=1,dive"`
	Replace bool                 `json:"replace"`
}

// ToDomain converts the request line to a domain entry, parsing the date.
func (r CreateEntryRequest) ToDomain() (domain.LedgerEntry, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", apperrors.ErrValidation, r.Date)
	}
	return domain.LedgerEntry{
		EntryID:     r.EntryID,
		Date:        date,
		Description: r.Description,
		AccountName: r.Account,
		Debit:       r.Debit,
		Credit:      r.Credit,
	}, nil
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID          string          `json:"entryID"`
	Date             string          `json:"date"`
	Description      string          `json:"description"`
	Account          string          `json:"account"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	BalanceFormatted string          `json:"balanceFormatted"`
}

// ToEntryResponse converts a domain.LedgerEntry to an EntryResponse DTO.
func ToEntryResponse(e domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		EntryID:          e.EntryID,
		Date:             e.Date.Format("2006-01-02"),
		Description:      e.Description,
		Account:          e.AccountName,
		Debit:            e.Debit,
		Credit:           e.Credit,
		BalanceFormatted: utils.FormatKES(e.SignedBalance()),
	}
}

// ToEntryResponses converts a slice of domain entries to DTOs.
func ToEntryResponses(entries []domain.LedgerEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToEntryResponse(e)
	}
	return responses
}

// LedgerCheckResponse is the ledger-wide balance check response.
type LedgerCheckResponse struct {
	TotalDebit        decimal.Decimal `json:"totalDebit"`
	TotalCredit       decimal.Decimal `json:"totalCredit"`
	IsBalanced        bool            `json:"isBalanced"`
	Variance          decimal.Decimal `json:"variance"`
	VarianceFormatted string          `json:"varianceFormatted"`
}

// ToLedgerCheckResponse converts a domain.LedgerCheck to its DTO.
func ToLedgerCheckResponse(check domain.LedgerCheck) LedgerCheckResponse {
	return LedgerCheckResponse{
		TotalDebit:        check.TotalDebit,
		TotalCredit:       check.TotalCredit,
		IsBalanced:        check.IsBalanced,
		Variance:          check.Variance,
		VarianceFormatted: utils.FormatKES(check.Variance),
	}
}
