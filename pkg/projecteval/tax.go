package projecteval

import "github.com/shopspring/decimal"

// calculateTax nets output VAT against input VAT (floored at zero) and
// derives the surcharge taxes from the net VAT payable. The surcharges feed
// both the profit stage and the cash-flow stage.
func calculateTax(p *Project) error {
	res := &p.Results

	for i := range res.VATOutput {
		payable := res.VATOutput[i].Sub(res.VATInput[i].Decimal)
		if payable.IsNegative() {
			payable = decimal.Zero
		}
		paid := round2(payable)
		res.VATPaid[i] = paid
		res.CityMaintenanceTax[i] = round2(paid.Mul(p.Tax.CityMaintenanceTaxRate.Decimal))
		res.EducationSurtax[i] = round2(paid.Mul(p.Tax.EducationSurtaxRate.Decimal))
	}
	return nil
}
