package accounting

import (
	"fmt"
	"sort"

	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GroupTotals holds the independent debit and credit sums of one group.
type GroupTotals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// SumBy groups entries by an arbitrary key function and sums the debit and
// credit fields independently.
func SumBy(entries []domain.LedgerEntry, keyFn func(domain.LedgerEntry) string) map[string]GroupTotals {
	totals := make(map[string]GroupTotals)
	for _, e := range entries {
		t := totals[keyFn(e)]
		t.Debit = t.Debit.Add(e.Debit)
		t.Credit = t.Credit.Add(e.Credit)
		totals[keyFn(e)] = t
	}
	return totals
}

// TotalDebits is the flat sum of the debit field across entries.
func TotalDebits(entries []domain.LedgerEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Debit)
	}
	return sum
}

// TotalCredits is the flat sum of the credit field across entries.
func TotalCredits(entries []domain.LedgerEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Credit)
	}
	return sum
}

// NetBalance derives the net from debit/credit totals per the account's
// normal side: debit-natured accounts carry debit minus credit, credit-natured
// accounts the negation. A positive net always means a normal-side excess.
func NetBalance(totalDebit, totalCredit decimal.Decimal, side domain.NormalSide) decimal.Decimal {
	net := totalDebit.Sub(totalCredit)
	if side == domain.CreditSide {
		return net.Neg()
	}
	return net
}

// SumByAccount aggregates entries per chart account. Every chart account
// appears in the result, with zero totals when it has no entries, so
// statements can render empty sections instead of omitting them. An entry
// referencing an account outside the chart is an error, never a silent
// default. Results are ordered by account code.
func SumByAccount(entries []domain.LedgerEntry, accounts map[string]domain.Account) ([]domain.AccountBalance, error) {
	totals := SumBy(entries, func(e domain.LedgerEntry) string { return e.AccountName })
	for name := range totals {
		if _, ok := accounts[name]; !ok {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownAccount, name)
		}
	}

	balances := make([]domain.AccountBalance, 0, len(accounts))
	for name, acct := range accounts {
		t := totals[name]
		balances = append(balances, domain.AccountBalance{
			Account:     acct,
			TotalDebit:  t.Debit,
			TotalCredit: t.Credit,
			NetBalance:  NetBalance(t.Debit, t.Credit, acct.NormalSide),
		})
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Account.Code < balances[j].Account.Code
	})
	return balances, nil
}

// SafeRatio divides num by den, reporting an undefined ratio when the
// denominator is zero. The quotient is rounded to four decimal places.
func SafeRatio(num, den decimal.Decimal) domain.Ratio {
	if den.IsZero() {
		return domain.Ratio{}
	}
	return domain.Ratio{Value: num.DivRound(den, 4), Defined: true}
}

// SafePercent computes num/den as a percentage rounded to two decimal
// places, returning zero when the denominator is zero.
func SafePercent(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Mul(decimal.NewFromInt(100)).DivRound(den, 2)
}
