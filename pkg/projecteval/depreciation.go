package projecteval

import "github.com/shopspring/decimal"

// calculateDepreciation fills the straight-line depreciation and amortization
// schedules. Charges apply to every operation year; construction years stay
// zero. Depreciation is deliberately uncapped: when the operation period
// outlasts the depreciation years the flat annual charge keeps accruing.
func calculateDepreciation(p *Project) error {
	a := p.Assets
	av := p.AssetValues
	res := &p.Results

	annualDepreciation := Amount{decimal.Zero}
	if a.DepreciationYears > 0 {
		annualDepreciation = round2(av.FixedAssetsWithInterest.
			Mul(one.Sub(a.SalvageRate.Decimal)).
			Div(decimal.NewFromInt(int64(a.DepreciationYears))))
	}

	intangibleAnnual := decimal.Zero
	if a.AmortizationYears > 0 {
		intangibleAnnual = round2(av.IntangibleAssets.Div(decimal.NewFromInt(int64(a.AmortizationYears)))).Decimal
	}
	otherAnnual := decimal.Zero
	if a.OtherAssetsYears > 0 {
		otherAnnual = round2(av.OtherAssets.Div(decimal.NewFromInt(int64(a.OtherAssetsYears)))).Decimal
	}
	annualAmortization := round2(intangibleAnnual.Add(otherAnnual))

	for year := p.Period.OperationStartYear(); year <= p.Period.TotalYears(); year++ {
		res.Depreciation[year-1] = annualDepreciation
		res.Amortization[year-1] = annualAmortization
	}
	return nil
}
