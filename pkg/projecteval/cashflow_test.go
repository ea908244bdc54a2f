package projecteval

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateCashFlowConstructionYears(t *testing.T) {
	p := testProject(2, 1)
	p.Results.FixedAssetsInvestment[0] = amt("40")
	p.Results.FixedAssetsInvestment[1] = amt("60")

	assertNoError(t, calculateCashFlow(p), "calculateCashFlow")

	assertAmount(t, p.Results.CashIn[0], "0", "construction inflow")
	assertAmount(t, p.Results.CashOut[0], "40", "year 1 outflow")
	assertAmount(t, p.Results.NetCashFlow[0], "-40", "year 1 net")
	assertAmount(t, p.Results.NetCashFlow[1], "-60", "year 2 net")
	assertAmount(t, p.Results.CumulativeCashFlow[1], "-100", "cumulative after construction")
}

func TestCalculateCashFlowOperationYear(t *testing.T) {
	p := testProject(1, 1)
	p.Results.Revenue[1] = amt("200")
	p.Revenue.AssetSale.Set(2, amt("10"))
	p.Results.Cost[1] = amt("100")
	p.Results.Depreciation[1] = amt("20")
	p.Results.Amortization[1] = amt("5")
	p.Results.IncomeTax[1] = amt("8")
	p.Results.CityMaintenanceTax[1] = amt("3")
	p.Results.EducationSurtax[1] = amt("2")
	p.Results.WorkingCapitalInvestment[1] = amt("30")

	assertNoError(t, calculateCashFlow(p), "calculateCashFlow")

	// Asset sale is already inside aggregated revenue and is added again
	// as a separate inflow.
	assertAmount(t, p.Results.CashIn[1], "210", "operating inflow")
	// Cost less non-cash charges, plus taxes and working capital:
	// (100 - 20 - 5) + 8 + 3 + 2 + 30
	assertAmount(t, p.Results.CashOut[1], "118", "operating outflow")
	assertAmount(t, p.Results.NetCashFlow[1], "92", "operating net")
}

func TestCalculateCashFlowCumulativeRecurrence(t *testing.T) {
	p := testProject(2, 3)
	p.Results.FixedAssetsInvestment[0] = amt("50")
	p.Results.FixedAssetsInvestment[1] = amt("50")
	for i := 2; i < 5; i++ {
		p.Results.Revenue[i] = amt("45")
	}

	assertNoError(t, calculateCashFlow(p), "calculateCashFlow")

	sum := decimal.Zero
	for i := range p.Results.NetCashFlow {
		sum = sum.Add(p.Results.NetCashFlow[i].Decimal)
		assertAmount(t, p.Results.CumulativeCashFlow[i], sum.String(), "cumulative recurrence")
	}
	assertAmount(t, p.Results.CumulativeCashFlow[4], "35", "final cumulative")
}
