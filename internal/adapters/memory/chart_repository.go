package memory

import (
	"context"
	"fmt"

	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/shambaledger/farm_ledger_app/internal/core/ports/repositories"
)

// farmChart is the fixed chart of accounts for the farm ledger. Codes follow
// the usual 1xxx assets / 2xxx liabilities / 3xxx equity / 4xxx revenue /
// 5xxx expenses convention; x5xx blocks hold the non-current / other /
// operating-expense subcategories.
var farmChart = []domain.Account{
	// Current assets (1000 block)
	{Name: "CashOnHand", Code: "1010", Category: domain.Assets, SubCategory: domain.CurrentAssets, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityCash, Description: "Petty cash held at the farm"},
	{Name: "BankAccount", Code: "1020", Category: domain.Assets, SubCategory: domain.CurrentAssets, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityCash, Description: "Main farm bank account"},
	{Name: "AccountsReceivable", Code: "1030", Category: domain.Assets, SubCategory: domain.CurrentAssets, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityOperating, Description: "Amounts owed by produce buyers"},
	{Name: "FeedInventory", Code: "1040", Category: domain.Assets, SubCategory: domain.CurrentAssets, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityOperating, Description: "Feed stock on hand"},

	// Non-current assets (1500 block)
	{Name: "DairyCattle", Code: "1510", Category: domain.Assets, SubCategory: domain.NonCurrentAssets, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityInvesting, Description: "Dairy herd at valuation"},
	{Name: "BeefCattle", Code: "1520", Category: domain.Assets, SubCategory: domain.NonCurrentAssets, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityInvesting, Description: "Beef herd at valuation"},
	{Name: "FarmMachinery", Code: "1530", Category: domain.Assets, SubCategory: domain.NonCurrentAssets, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityInvesting, Description: "Tractors and milking equipment"},
	{Name: "LandAndBuildings", Code: "1540", Category: domain.Assets, SubCategory: domain.NonCurrentAssets, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityInvesting, Description: "Farm land, barns and stores"},

	// Current liabilities (2000 block)
	{Name: "AccountsPayable", Code: "2010", Category: domain.Liabilities, SubCategory: domain.CurrentLiabilities, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityOperating, Description: "Amounts owed to suppliers"},
	{Name: "WagesPayable", Code: "2020", Category: domain.Liabilities, SubCategory: domain.CurrentLiabilities, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityOperating, Description: "Accrued farmhand wages"},

	// Non-current liabilities (2500 block)
	{Name: "BankLoan", Code: "2510", Category: domain.Liabilities, SubCategory: domain.NonCurrentLiabilities, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityFinancing, Description: "Long-term bank loan"},
	{Name: "EquipmentLoan", Code: "2520", Category: domain.Liabilities, SubCategory: domain.NonCurrentLiabilities, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityFinancing, Description: "Machinery financing"},

	// Equity (3000 block)
	{Name: "OwnerCapital", Code: "3010", Category: domain.Equity, SubCategory: domain.OwnerEquity, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityFinancing, Description: "Owner capital contributions"},
	{Name: "RetainedEarnings", Code: "3020", Category: domain.Equity, SubCategory: domain.OwnerEquity, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityFinancing, Description: "Accumulated farm profits"},

	// Operating revenue (4000 block)
	{Name: "DairySales", Code: "4010", Category: domain.Revenue, SubCategory: domain.OperatingRevenue, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityOperating, Description: "Milk sales"},
	{Name: "BeefSales", Code: "4020", Category: domain.Revenue, SubCategory: domain.OperatingRevenue, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityOperating, Description: "Beef and culled stock sales"},
	{Name: "CropSales", Code: "4030", Category: domain.Revenue, SubCategory: domain.OperatingRevenue, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityOperating, Description: "Maize and fodder sales"},
	{Name: "PoultrySales", Code: "4040", Category: domain.Revenue, SubCategory: domain.OperatingRevenue, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityOperating, Description: "Egg and broiler sales"},

	// Other revenue (4500 block)
	{Name: "BiologicalGains", Code: "4510", Category: domain.Revenue, SubCategory: domain.OtherRevenue, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityNonCash, Description: "Herd growth and revaluation gains"},
	{Name: "GrantIncome", Code: "4520", Category: domain.Revenue, SubCategory: domain.OtherRevenue, NormalSide: domain.CreditSide, CashFlowActivity: domain.ActivityOperating, Description: "Agricultural subsidies received"},

	// Cost of goods sold (5000 block)
	{Name: "Feeds", Code: "5010", Category: domain.Expenses, SubCategory: domain.CostOfGoodsSold, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityOperating, Description: "Animal feed purchases"},
	{Name: "VeterinaryServices", Code: "5020", Category: domain.Expenses, SubCategory: domain.CostOfGoodsSold, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityOperating, Description: "Vet visits and medicine"},
	{Name: "BreedingCosts", Code: "5030", Category: domain.Expenses, SubCategory: domain.CostOfGoodsSold, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityOperating, Description: "AI and breeding services"},

	// Operating expenses (5500 block)
	{Name: "SalariesAndWages", Code: "5510", Category: domain.Expenses, SubCategory: domain.OperatingExpenses, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityOperating, Description: "Farmhand salaries and casual wages"},
	{Name: "FuelAndTransport", Code: "5520", Category: domain.Expenses, SubCategory: domain.OperatingExpenses, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityOperating, Description: "Fuel and produce transport"},
	{Name: "RepairsAndMaintenance", Code: "5530", Category: domain.Expenses, SubCategory: domain.OperatingExpenses, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityOperating, Description: "Fence, barn and machinery repairs"},
	{Name: "UtilitiesAndWater", Code: "5540", Category: domain.Expenses, SubCategory: domain.OperatingExpenses, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityOperating, Description: "Electricity and water"},
	{Name: "Depreciation", Code: "5550", Category: domain.Expenses, SubCategory: domain.OperatingExpenses, NormalSide: domain.DebitSide, CashFlowActivity: domain.ActivityNonCash, Description: "Depreciation of machinery and buildings"},
}

// chartRepository serves the static farm chart of accounts.
type chartRepository struct {
	byName  map[string]domain.Account
	ordered []domain.Account
}

// NewChartRepository builds the repository over the fixed farm chart.
func NewChartRepository() portsrepo.ChartRepository {
	byName := make(map[string]domain.Account, len(farmChart))
	for _, acct := range farmChart {
		byName[acct.Name] = acct
	}
	ordered := make([]domain.Account, len(farmChart))
	copy(ordered, farmChart)
	return &chartRepository{byName: byName, ordered: ordered}
}

var _ portsrepo.ChartRepository = (*chartRepository)(nil)

func (r *chartRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	acct, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownAccount, name)
	}
	return &acct, nil
}

func (r *chartRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts := make([]domain.Account, len(r.ordered))
	copy(accounts, r.ordered)
	return accounts, nil
}

func (r *chartRepository) AccountsByName(ctx context.Context) (map[string]domain.Account, error) {
	accounts := make(map[string]domain.Account, len(r.byName))
	for name, acct := range r.byName {
		accounts[name] = acct
	}
	return accounts, nil
}
