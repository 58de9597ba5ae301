package domain

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Assets      AccountCategory = "ASSETS"
	Liabilities AccountCategory = "LIABILITIES"
	Equity      AccountCategory = "EQUITY"
	Revenue     AccountCategory = "REVENUE"
	Expenses    AccountCategory = "EXPENSES"
)

// CategoryOrder is the fixed presentation order of categories in reports.
var CategoryOrder = []AccountCategory{Assets, Liabilities, Equity, Revenue, Expenses}

// Valid reports whether c is a member of the closed category set.
func (c AccountCategory) Valid() bool {
	for _, known := range CategoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// AccountSubCategory is the finer classification used by the statement derivers.
type AccountSubCategory string

const (
	CurrentAssets         AccountSubCategory = "CURRENT_ASSETS"
	NonCurrentAssets      AccountSubCategory = "NON_CURRENT_ASSETS"
	CurrentLiabilities    AccountSubCategory = "CURRENT_LIABILITIES"
	NonCurrentLiabilities AccountSubCategory = "NON_CURRENT_LIABILITIES"
	OwnerEquity           AccountSubCategory = "OWNER_EQUITY"
	OperatingRevenue      AccountSubCategory = "OPERATING_REVENUE"
	OtherRevenue          AccountSubCategory = "OTHER_REVENUE"
	CostOfGoodsSold       AccountSubCategory = "COST_OF_GOODS_SOLD"
	OperatingExpenses     AccountSubCategory = "OPERATING_EXPENSES"
)

// NormalSide indicates whether an account's natural positive balance is a debit or a credit.
type NormalSide string

const (
	DebitSide  NormalSide = "DEBIT"
	CreditSide NormalSide = "CREDIT"
)

// CashFlowActivity classifies an account for the cash flow statement.
// It is a static property of the account, not derived from entries:
// non-cash accounts (e.g. biological gains, depreciation) never contribute
// to cash flow even though they appear in profit and loss, and the cash
// accounts themselves are the counter-side of every flow, so they are
// excluded from the activity buckets as well.
type CashFlowActivity string

const (
	ActivityOperating CashFlowActivity = "OPERATING"
	ActivityInvesting CashFlowActivity = "INVESTING"
	ActivityFinancing CashFlowActivity = "FINANCING"
	ActivityNonCash   CashFlowActivity = "NON_CASH"
	ActivityCash      CashFlowActivity = "CASH"
)

// Account represents one bucket in the farm chart of accounts.
// Accounts are read-only snapshots; the chart is fixed at startup.
type Account struct {
	Name             string             `json:"name"`
	Code             string             `json:"code"`
	Category         AccountCategory    `json:"category"`
	SubCategory      AccountSubCategory `json:"subCategory"`
	NormalSide       NormalSide         `json:"normalSide"`
	CashFlowActivity CashFlowActivity   `json:"cashFlowActivity"`
	Description      string             `json:"description"`
}

// NormalSideFor returns the conventional normal side for a category.
func NormalSideFor(category AccountCategory) NormalSide {
	switch category {
	case Assets, Expenses:
		return DebitSide
	default:
		return CreditSide
	}
}
