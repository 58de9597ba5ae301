package memory

import (
	"time"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

func debit(date time.Time, description, account string, amount int64) domain.LedgerEntry {
	return domain.LedgerEntry{
		Date:        date,
		Description: description,
		AccountName: account,
		Debit:       decimal.NewFromInt(amount),
	}
}

func credit(date time.Time, description, account string, amount int64) domain.LedgerEntry {
	return domain.LedgerEntry{
		Date:        date,
		Description: description,
		AccountName: account,
		Credit:      decimal.NewFromInt(amount),
	}
}

// DemoEntries is a balanced sample ledger for a smallholder dairy/beef farm,
// used when demo seeding is enabled. Every transaction posts equal debits
// and credits.
func DemoEntries() []domain.LedgerEntry {
	d := func(month time.Month, day int) time.Time {
		return time.Date(2025, month, day, 0, 0, 0, 0, time.UTC)
	}
	return []domain.LedgerEntry{
		debit(d(time.January, 5), "Owner capital deposit", "BankAccount", 1500000),
		credit(d(time.January, 5), "Owner capital deposit", "OwnerCapital", 1500000),

		debit(d(time.January, 12), "Development loan drawdown", "BankAccount", 500000),
		credit(d(time.January, 12), "Development loan drawdown", "BankLoan", 500000),

		debit(d(time.February, 2), "Purchase of 12 dairy cows", "DairyCattle", 600000),
		credit(d(time.February, 2), "Purchase of 12 dairy cows", "BankAccount", 600000),

		debit(d(time.February, 20), "Milking machine purchase", "FarmMachinery", 250000),
		credit(d(time.February, 20), "Milking machine purchase", "BankAccount", 250000),

		debit(d(time.March, 3), "Feed purchase on supplier credit", "Feeds", 40000),
		credit(d(time.March, 3), "Feed purchase on supplier credit", "AccountsPayable", 40000),

		debit(d(time.March, 28), "March milk deliveries", "CashOnHand", 75000),
		credit(d(time.March, 28), "March milk deliveries", "DairySales", 75000),

		debit(d(time.April, 15), "Steers sold to abattoir on account", "AccountsReceivable", 120000),
		credit(d(time.April, 15), "Steers sold to abattoir on account", "BeefSales", 120000),

		debit(d(time.April, 30), "April wages", "SalariesAndWages", 60000),
		credit(d(time.April, 30), "April wages", "BankAccount", 60000),

		debit(d(time.May, 9), "Vaccination round", "VeterinaryServices", 15000),
		credit(d(time.May, 9), "Vaccination round", "CashOnHand", 15000),

		debit(d(time.June, 30), "Half-year herd revaluation", "DairyCattle", 90000),
		credit(d(time.June, 30), "Half-year herd revaluation", "BiologicalGains", 90000),

		debit(d(time.July, 8), "Fuel for milk runs", "FuelAndTransport", 12000),
		credit(d(time.July, 8), "Fuel for milk runs", "CashOnHand", 12000),

		debit(d(time.July, 31), "Machinery depreciation", "Depreciation", 25000),
		credit(d(time.July, 31), "Machinery depreciation", "FarmMachinery", 25000),
	}
}
