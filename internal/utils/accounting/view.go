package accounting

import (
	"sort"
	"strings"
	"time"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
)

// entryComparator orders two entries; negative means a before b. Comparators
// for numeric fields work on absolute values: sign is ignored for ordering,
// matching the behaviour of the interactive screens.
type entryComparator func(a, b domain.LedgerEntry) int

// comparatorFor builds the comparator for a sort field. Account metadata is
// needed only for the category sort.
func comparatorFor(field domain.SortField, accounts map[string]domain.Account) entryComparator {
	switch field {
	case domain.SortByAccount:
		return func(a, b domain.LedgerEntry) int {
			return strings.Compare(a.AccountName, b.AccountName)
		}
	case domain.SortByDescription:
		return func(a, b domain.LedgerEntry) int {
			return strings.Compare(a.Description, b.Description)
		}
	case domain.SortByCategory:
		return func(a, b domain.LedgerEntry) int {
			return strings.Compare(
				string(accounts[a.AccountName].Category),
				string(accounts[b.AccountName].Category),
			)
		}
	case domain.SortByBalance:
		return func(a, b domain.LedgerEntry) int {
			return a.SignedBalance().Abs().Cmp(b.SignedBalance().Abs())
		}
	case domain.SortByDebit:
		return func(a, b domain.LedgerEntry) int {
			return a.Debit.Abs().Cmp(b.Debit.Abs())
		}
	case domain.SortByCredit:
		return func(a, b domain.LedgerEntry) int {
			return a.Credit.Abs().Cmp(b.Credit.Abs())
		}
	default: // SortByDate
		return func(a, b domain.LedgerEntry) int {
			switch {
			case a.Date.Before(b.Date):
				return -1
			case a.Date.After(b.Date):
				return 1
			default:
				return 0
			}
		}
	}
}

// matchesQuery reports whether the entry matches a case-insensitive substring
// query against account name, description, category and subcategory.
func matchesQuery(e domain.LedgerEntry, acct domain.Account, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.AccountName), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(string(acct.Category)), q) ||
		strings.Contains(strings.ToLower(string(acct.SubCategory)), q)
}

// ViewEntries produces the filtered, sorted view of the entry snapshot.
// The input slice is never mutated; ties keep the snapshot order. The
// function is pure: the same snapshot, params and now always yield the
// same sequence.
func ViewEntries(entries []domain.LedgerEntry, accounts map[string]domain.Account, params domain.ViewParams, now time.Time) []domain.LedgerEntry {
	from, bounded := params.Range.Resolve(now)

	filtered := make([]domain.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		acct := accounts[e.AccountName]
		if params.Category != "" && acct.Category != params.Category {
			continue
		}
		if bounded && e.Date.Before(from) {
			continue
		}
		if !matchesQuery(e, acct, params.Query) {
			continue
		}
		filtered = append(filtered, e)
	}

	cmp := comparatorFor(params.SortBy, accounts)
	sort.SliceStable(filtered, func(i, j int) bool {
		c := cmp(filtered[i], filtered[j])
		if params.Order == domain.Descending {
			return c > 0
		}
		return c < 0
	})
	return filtered
}
