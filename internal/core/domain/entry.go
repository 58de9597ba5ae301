package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one line of a double-entry transaction. Exactly one of
// Debit/Credit is positive per line; the other is zero. Entries are
// immutable snapshots supplied by the data-entry screens.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	AccountName string          `json:"account"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// SignedBalance returns the entry's raw debit-minus-credit amount.
// The view engine orders numeric fields on the absolute value of this.
func (e LedgerEntry) SignedBalance() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}

// AccountBalance is the per-account aggregate derived from the entry snapshot.
// NetBalance follows the account's normal side: debit-natured accounts carry
// debit-minus-credit, credit-natured accounts the negation.
type AccountBalance struct {
	Account     Account         `json:"account"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	NetBalance  decimal.Decimal `json:"netBalance"`
}
