package domain

import "time"

// DateRange is the closed set of relative periods offered by the entry views.
// The set is not extensible; new periods require a new constant and resolver.
type DateRange string

const (
	RangeAll        DateRange = "ALL"
	RangeLast7Days  DateRange = "LAST_7_DAYS"
	RangeLast30Days DateRange = "LAST_30_DAYS"
	RangeLast90Days DateRange = "LAST_90_DAYS"
	RangeThisYear   DateRange = "THIS_YEAR"
)

// dateRangeResolvers maps each bounded range to its lower-bound resolver.
// RangeAll is absent: it imposes no bound.
var dateRangeResolvers = map[DateRange]func(now time.Time) time.Time{
	RangeLast7Days:  func(now time.Time) time.Time { return now.AddDate(0, 0, -7) },
	RangeLast30Days: func(now time.Time) time.Time { return now.AddDate(0, 0, -30) },
	RangeLast90Days: func(now time.Time) time.Time { return now.AddDate(0, 0, -90) },
	RangeThisYear: func(now time.Time) time.Time {
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	},
}

// Resolve returns the inclusive lower bound of the range evaluated against
// now. The second return is false when the range is unbounded.
func (r DateRange) Resolve(now time.Time) (time.Time, bool) {
	resolver, ok := dateRangeResolvers[r]
	if !ok {
		return time.Time{}, false
	}
	return resolver(now), true
}

// Valid reports whether r is a member of the closed range set.
func (r DateRange) Valid() bool {
	if r == RangeAll {
		return true
	}
	_, ok := dateRangeResolvers[r]
	return ok
}

// SortField identifies one sortable column of the entry view.
type SortField string

const (
	SortByDate        SortField = "DATE"
	SortByAccount     SortField = "ACCOUNT"
	SortByDescription SortField = "DESCRIPTION"
	SortByCategory    SortField = "CATEGORY"
	SortByBalance     SortField = "BALANCE"
	SortByDebit       SortField = "DEBIT"
	SortByCredit      SortField = "CREDIT"
)

// SortFieldLabels is the closed table of sortable fields and their display
// labels, in menu order.
var SortFieldLabels = []struct {
	Key   SortField
	Label string
}{
	{SortByDate, "Date"},
	{SortByAccount, "Account"},
	{SortByDescription, "Description"},
	{SortByCategory, "Category"},
	{SortByBalance, "Balance"},
	{SortByDebit, "Debit"},
	{SortByCredit, "Credit"},
}

// Valid reports whether f is a known sort field.
func (f SortField) Valid() bool {
	for _, s := range SortFieldLabels {
		if s.Key == f {
			return true
		}
	}
	return false
}

// SortOrder is the direction of an entry view sort.
type SortOrder string

const (
	Ascending  SortOrder = "ASC"
	Descending SortOrder = "DESC"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	return o == Ascending || o == Descending
}

// ViewParams are the immutable parameters of one entry view evaluation.
// Category empty means all categories. The struct is comparable so it can
// key a memoization cache.
type ViewParams struct {
	Query    string
	Category AccountCategory
	Range    DateRange
	SortBy   SortField
	Order    SortOrder
}

// DefaultViewParams is the view shown before the user touches any control.
func DefaultViewParams() ViewParams {
	return ViewParams{
		Range:  RangeAll,
		SortBy: SortByDate,
		Order:  Ascending,
	}
}
