package projecteval

import "github.com/shopspring/decimal"

// calculateProfit walks the operation years in ascending order, threading a
// bounded FIFO queue of outstanding losses through the loop. The queue holds
// at most LossOffsetYears entries; a loss that ages out of the window before
// being offset is permanently forfeited.
//
// Income tax is charged on the offset-adjusted taxable base, while profit
// after tax nets against the raw pre-tax profit. The two can differ in a
// year that consumes carried losses; that asymmetry is standard accounting
// behavior and is reproduced deliberately.
func calculateProfit(p *Project) error {
	res := &p.Results
	window := p.Financial.LossOffsetYears
	losses := make([]decimal.Decimal, 0, window)

	for year := p.Period.OperationStartYear(); year <= p.Period.TotalYears(); year++ {
		i := year - 1
		subsidy := p.Tax.SubsidyIncome.Get(year)

		profitBeforeTax := round2(res.Revenue[i].
			Add(subsidy).
			Sub(res.Cost[i].Decimal).
			Sub(res.Depreciation[i].Decimal).
			Sub(res.Amortization[i].Decimal).
			Sub(res.CityMaintenanceTax[i].Decimal).
			Sub(res.EducationSurtax[i].Decimal))
		res.ProfitBeforeTax[i] = profitBeforeTax

		var incomeTax Amount
		if !profitBeforeTax.IsNegative() {
			taxable := profitBeforeTax.Decimal
			for qi := 0; qi < len(losses) && taxable.IsPositive(); qi++ {
				if losses[qi].LessThanOrEqual(taxable) {
					taxable = taxable.Sub(losses[qi])
					losses[qi] = decimal.Zero
				} else {
					losses[qi] = losses[qi].Sub(taxable)
					taxable = decimal.Zero
				}
			}
			kept := losses[:0]
			for _, loss := range losses {
				if loss.IsPositive() {
					kept = append(kept, loss)
				}
			}
			losses = kept
			incomeTax = round2(taxable.Mul(p.Tax.IncomeTaxRate.Decimal))
		} else {
			losses = append(losses, profitBeforeTax.Abs())
			if len(losses) > window {
				losses = losses[1:]
			}
			incomeTax = Amount{decimal.Zero}
		}
		res.IncomeTax[i] = incomeTax

		profitAfterTax := round2(profitBeforeTax.Sub(incomeTax.Decimal))
		res.ProfitAfterTax[i] = profitAfterTax
		surplusReserve := round2(profitAfterTax.Mul(p.Financial.SurplusReserveRate.Decimal))
		res.SurplusReserve[i] = surplusReserve
		res.DistributableProfit[i] = round2(profitAfterTax.Sub(surplusReserve.Decimal))
	}
	return nil
}
