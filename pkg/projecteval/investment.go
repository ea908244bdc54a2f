package projecteval

import "github.com/shopspring/decimal"

var (
	one = decimal.NewFromInt(1)

	// Statutory allocation and rate constants. Not user-configurable.
	otherAssetsShare  = decimal.RequireFromString("0.5")
	deductibleVATRate = decimal.RequireFromString("0.09")

	scheduleYearOne = decimal.RequireFromString("0.4")
	scheduleYearTwo = decimal.RequireFromString("0.3")
	scheduleTail    = decimal.RequireFromString("0.3")
)

// calculateInvestment consolidates the investment estimate into asset bases
// and lays out the construction-year investment schedule.
func calculateInvestment(p *Project) error {
	inv := &p.Investment
	av := &p.AssetValues
	res := &p.Results

	// Fixed assets exclude the land-use fee, which forms intangible assets.
	av.FixedAssetsOriginalValue = round2(inv.BuildingCost.
		Add(inv.EquipmentProcurementCost.Decimal).
		Add(inv.EquipmentInstallationCost.Decimal).
		Add(inv.PublicEquipmentProcurementCost.Decimal).
		Add(inv.PublicEquipmentInstallationCost.Decimal).
		Add(inv.ConstructionManagementFee.Decimal).
		Add(inv.TechnicalConsultingFee.Decimal).
		Add(inv.InfrastructureFee.Decimal).
		Add(inv.PatentFee.Decimal).
		Add(inv.OtherPreparationFee.Decimal).
		Add(inv.BasicContingencyReserve.Decimal).
		Add(inv.PriceContingencyReserve.Decimal))

	av.FixedAssetsWithInterest = round2(av.FixedAssetsOriginalValue.Add(inv.ConstructionInterest.Decimal))
	av.IntangibleAssets = round2(inv.LandUseFee.Add(inv.PatentFee.Decimal))
	av.OtherAssets = round2(inv.OtherPreparationFee.Mul(otherAssetsShare))

	// Deductible input VAT on construction uses the statutory 9% rate
	// regardless of the configured input-VAT parameter.
	av.DeductibleTax = round2(inv.BuildingCost.
		Add(inv.EquipmentProcurementCost.Decimal).
		Add(inv.EquipmentInstallationCost.Decimal).
		Add(inv.PublicEquipmentProcurementCost.Decimal).
		Add(inv.PublicEquipmentInstallationCost.Decimal).
		Mul(deductibleVATRate).Div(one.Add(deductibleVATRate)))

	res.TotalInvestment = round2(av.FixedAssetsWithInterest.
		Add(av.IntangibleAssets.Decimal).
		Add(av.OtherAssets.Decimal).
		Add(inv.WorkingCapital.Decimal))

	totalAssets := av.FixedAssetsWithInterest.
		Add(av.IntangibleAssets.Decimal).
		Add(av.OtherAssets.Decimal)
	scheduleInvestment(res.FixedAssetsInvestment, totalAssets, p.Period.ConstructionYears)

	// Working capital goes in whole at the start of operations.
	res.WorkingCapitalInvestment[p.Period.OperationStartYear()-1] = round2(inv.WorkingCapital.Decimal)
	return nil
}

// scheduleInvestment distributes totalAssets over the construction years.
// Three or more years follow the canonical 40/30/30 split, with the final
// 30% tranche shared evenly across year 3 and any later construction years.
// Shorter builds split evenly. The last construction year always takes the
// arithmetic residual, so the schedule entries sum to totalAssets exactly
// even after per-entry rounding.
func scheduleInvestment(schedule []Amount, totalAssets decimal.Decimal, constructionYears int) {
	allocated := decimal.Zero
	assign := func(idx int, v Amount) {
		schedule[idx] = v
		allocated = allocated.Add(v.Decimal)
	}

	if constructionYears >= 3 {
		assign(0, round2(totalAssets.Mul(scheduleYearOne)))
		assign(1, round2(totalAssets.Mul(scheduleYearTwo)))
		tailYears := constructionYears - 2
		tailShare := round2(totalAssets.Mul(scheduleTail).Div(decimal.NewFromInt(int64(tailYears))))
		for i := 2; i < constructionYears-1; i++ {
			assign(i, tailShare)
		}
	} else {
		perYear := round2(totalAssets.Div(decimal.NewFromInt(int64(constructionYears))))
		for i := 0; i < constructionYears-1; i++ {
			assign(i, perYear)
		}
	}
	schedule[constructionYears-1] = round2(totalAssets.Sub(allocated))
}
