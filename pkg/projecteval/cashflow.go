package projecteval

import "github.com/shopspring/decimal"

// calculateCashFlow assembles per-year cash inflow, outflow, net and
// cumulative flows across the whole horizon.
//
// Construction years flow out the investment schedule only. Operation years
// take in revenue plus asset-sale proceeds (the sale is deliberately counted
// both inside aggregated revenue and again as a separate inflow),
// and flow out the operating cost (total cost less the non-cash depreciation
// and amortization charges) plus taxes and the working-capital injection.
func calculateCashFlow(p *Project) error {
	res := &p.Results

	for year := 1; year <= p.Period.TotalYears(); year++ {
		i := year - 1
		if p.Period.IsConstructionYear(year) {
			out := res.FixedAssetsInvestment[i]
			res.CashOut[i] = out
			res.NetCashFlow[i] = round2(decimal.Zero.Sub(out.Decimal))
			continue
		}

		in := round2(res.Revenue[i].Add(p.Revenue.AssetSale.Get(year)))
		operatingCost := round2(res.Cost[i].
			Sub(res.Depreciation[i].Decimal).
			Sub(res.Amortization[i].Decimal))
		out := round2(operatingCost.
			Add(res.IncomeTax[i].Decimal).
			Add(res.CityMaintenanceTax[i].Decimal).
			Add(res.EducationSurtax[i].Decimal).
			Add(res.WorkingCapitalInvestment[i].Decimal))

		res.CashIn[i] = in
		res.CashOut[i] = out
		res.NetCashFlow[i] = round2(in.Sub(out.Decimal))
	}

	cumulative := decimal.Zero
	for i := range res.NetCashFlow {
		cumulative = cumulative.Add(res.NetCashFlow[i].Decimal)
		res.CumulativeCashFlow[i] = round2(cumulative)
	}
	return nil
}
