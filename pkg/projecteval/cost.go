package projecteval

import "github.com/shopspring/decimal"

// repairRate is the fixed asset-value-proportional repair charge: 0.5% of
// the fixed-asset base per operation year. Not user-configurable.
var repairRate = decimal.RequireFromString("0.005")

// fuelPowerVATRate is the statutory input-VAT rate on fuel and power.
// Material uses the configurable input-VAT parameter; labor, repair and
// other costs carry no input VAT.
var fuelPowerVATRate = decimal.RequireFromString("0.09")

// calculateCost fills the repair stream, aggregates the five cost streams
// per operation year, and extracts input VAT per stream. Stored costs stay
// gross: the VAT extraction feeds the netting stage but never reduces cost.
func calculateCost(p *Project) error {
	cost := &p.Cost
	res := &p.Results
	inputRate := p.Tax.VATInputRate.Decimal

	annualRepair := round2(p.AssetValues.FixedAssetsWithInterest.Mul(repairRate))

	cost.Repair = YearSeries{}
	for year := p.Period.OperationStartYear(); year <= p.Period.TotalYears(); year++ {
		cost.Repair.Set(year, annualRepair)

		material := cost.Material.Get(year)
		fuelPower := cost.FuelPower.Get(year)
		labor := cost.Labor.Get(year)
		other := cost.Other.Get(year)

		res.Cost[year-1] = round2(material.
			Add(fuelPower).
			Add(labor).
			Add(annualRepair.Decimal).
			Add(other))

		materialVAT := round2(material.Mul(inputRate).Div(one.Add(inputRate)))
		fuelPowerVAT := round2(fuelPower.Mul(fuelPowerVATRate).Div(one.Add(fuelPowerVATRate)))
		res.VATInput[year-1] = round2(materialVAT.Add(fuelPowerVAT.Decimal))
	}
	return nil
}
