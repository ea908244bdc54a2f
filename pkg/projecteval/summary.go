package projecteval

import "github.com/shopspring/decimal"

// Read-only summary views over a calculated project, shaped for the
// reporting and export collaborators. None of them mutate the ledger.

// InvestmentSummary groups the investment estimate and derived asset bases.
type InvestmentSummary struct {
	EngineeringCost          Amount `json:"engineering_cost"`
	OtherConstructionCost    Amount `json:"other_construction_cost"`
	ContingencyReserve       Amount `json:"contingency_reserve"`
	ConstructionInterest     Amount `json:"construction_interest"`
	WorkingCapital           Amount `json:"working_capital"`
	FixedAssetsOriginalValue Amount `json:"fixed_assets_original_value"`
	FixedAssetsWithInterest  Amount `json:"fixed_assets_with_interest"`
	IntangibleAssets         Amount `json:"intangible_assets"`
	OtherAssets              Amount `json:"other_assets"`
	DeductibleTax            Amount `json:"deductible_tax"`
	TotalInvestment          Amount `json:"total_investment"`
}

// InvestmentSummary returns the consolidated investment view.
func (p *Project) InvestmentSummary() InvestmentSummary {
	inv := p.Investment
	return InvestmentSummary{
		EngineeringCost: round2(inv.BuildingCost.
			Add(inv.EquipmentProcurementCost.Decimal).
			Add(inv.EquipmentInstallationCost.Decimal).
			Add(inv.PublicEquipmentProcurementCost.Decimal).
			Add(inv.PublicEquipmentInstallationCost.Decimal)),
		OtherConstructionCost: round2(inv.ConstructionManagementFee.
			Add(inv.TechnicalConsultingFee.Decimal).
			Add(inv.InfrastructureFee.Decimal).
			Add(inv.LandUseFee.Decimal).
			Add(inv.PatentFee.Decimal).
			Add(inv.OtherPreparationFee.Decimal)),
		ContingencyReserve: round2(inv.BasicContingencyReserve.
			Add(inv.PriceContingencyReserve.Decimal)),
		ConstructionInterest:     inv.ConstructionInterest,
		WorkingCapital:           inv.WorkingCapital,
		FixedAssetsOriginalValue: p.AssetValues.FixedAssetsOriginalValue,
		FixedAssetsWithInterest:  p.AssetValues.FixedAssetsWithInterest,
		IntangibleAssets:         p.AssetValues.IntangibleAssets,
		OtherAssets:              p.AssetValues.OtherAssets,
		DeductibleTax:            p.AssetValues.DeductibleTax,
		TotalInvestment:          p.Results.TotalInvestment,
	}
}

// RevenueSummary lays every revenue stream out as dense per-year columns.
type RevenueSummary struct {
	Years              []int    `json:"years"`
	Building           []Amount `json:"building"`
	SupportingFacility []Amount `json:"supporting_facility"`
	PropertyService    []Amount `json:"property_service"`
	Parking            []Amount `json:"parking"`
	Advertising        []Amount `json:"advertising"`
	AssetSale          []Amount `json:"asset_sale"`
	Total              []Amount `json:"total"`
	VATOutput          []Amount `json:"vat_output"`
}

// RevenueSummary returns the per-stream revenue view.
func (p *Project) RevenueSummary() RevenueSummary {
	total := p.Period.TotalYears()
	return RevenueSummary{
		Years:              yearLabels(total),
		Building:           seriesColumn(p.Revenue.Building, total),
		SupportingFacility: seriesColumn(p.Revenue.SupportingFacility, total),
		PropertyService:    seriesColumn(p.Revenue.PropertyService, total),
		Parking:            seriesColumn(p.Revenue.Parking, total),
		Advertising:        seriesColumn(p.Revenue.Advertising, total),
		AssetSale:          seriesColumn(p.Revenue.AssetSale, total),
		Total:              p.Results.Revenue,
		VATOutput:          p.Results.VATOutput,
	}
}

// CostSummary lays every cost stream out as dense per-year columns.
type CostSummary struct {
	Years        []int    `json:"years"`
	Material     []Amount `json:"material"`
	FuelPower    []Amount `json:"fuel_power"`
	Labor        []Amount `json:"labor"`
	Repair       []Amount `json:"repair"`
	Other        []Amount `json:"other"`
	Depreciation []Amount `json:"depreciation"`
	Amortization []Amount `json:"amortization"`
	Total        []Amount `json:"total"`
	VATInput     []Amount `json:"vat_input"`
}

// CostSummary returns the per-stream cost view.
func (p *Project) CostSummary() CostSummary {
	total := p.Period.TotalYears()
	return CostSummary{
		Years:        yearLabels(total),
		Material:     seriesColumn(p.Cost.Material, total),
		FuelPower:    seriesColumn(p.Cost.FuelPower, total),
		Labor:        seriesColumn(p.Cost.Labor, total),
		Repair:       seriesColumn(p.Cost.Repair, total),
		Other:        seriesColumn(p.Cost.Other, total),
		Depreciation: p.Results.Depreciation,
		Amortization: p.Results.Amortization,
		Total:        p.Results.Cost,
		VATInput:     p.Results.VATInput,
	}
}

// ProfitSummary exposes the profit and distribution columns.
type ProfitSummary struct {
	Years               []int    `json:"years"`
	ProfitBeforeTax     []Amount `json:"profit_before_tax"`
	IncomeTax           []Amount `json:"income_tax"`
	ProfitAfterTax      []Amount `json:"profit_after_tax"`
	SurplusReserve      []Amount `json:"surplus_reserve"`
	DistributableProfit []Amount `json:"distributable_profit"`
}

// ProfitSummary returns the profit view.
func (p *Project) ProfitSummary() ProfitSummary {
	return ProfitSummary{
		Years:               yearLabels(p.Period.TotalYears()),
		ProfitBeforeTax:     p.Results.ProfitBeforeTax,
		IncomeTax:           p.Results.IncomeTax,
		ProfitAfterTax:      p.Results.ProfitAfterTax,
		SurplusReserve:      p.Results.SurplusReserve,
		DistributableProfit: p.Results.DistributableProfit,
	}
}

// CashFlowStatement is the year-by-year cash flow table.
type CashFlowStatement struct {
	Years              []int    `json:"years"`
	CashIn             []Amount `json:"cash_in"`
	CashOut            []Amount `json:"cash_out"`
	NetCashFlow        []Amount `json:"net_cash_flow"`
	CumulativeCashFlow []Amount `json:"cumulative_cash_flow"`
}

// CashFlowStatement returns the cash-flow table.
func (p *Project) CashFlowStatement() CashFlowStatement {
	return CashFlowStatement{
		Years:              yearLabels(p.Period.TotalYears()),
		CashIn:             p.Results.CashIn,
		CashOut:            p.Results.CashOut,
		NetCashFlow:        p.Results.NetCashFlow,
		CumulativeCashFlow: p.Results.CumulativeCashFlow,
	}
}

// FinancialIndicators bundles the scalar investment indicators.
type FinancialIndicators struct {
	TotalInvestment     Amount  `json:"total_investment"`
	NPV                 Amount  `json:"npv"`
	IRR                 Amount  `json:"irr"`
	StaticPaybackYears  *Amount `json:"static_payback_years"`
	DynamicPaybackYears *Amount `json:"dynamic_payback_years"`
}

// FinancialIndicators returns the indicator view.
func (p *Project) FinancialIndicators() FinancialIndicators {
	return FinancialIndicators{
		TotalInvestment:     p.Results.TotalInvestment,
		NPV:                 p.Results.NPV,
		IRR:                 p.Results.IRR,
		StaticPaybackYears:  p.Results.StaticPaybackYears,
		DynamicPaybackYears: p.Results.DynamicPaybackYears,
	}
}

// ProfitabilityAnalysis aggregates profit over the operation period.
type ProfitabilityAnalysis struct {
	TotalProfitAfterTax Amount `json:"total_profit_after_tax"`
	TotalIncomeTax      Amount `json:"total_income_tax"`
	AvgProfitAfterTax   Amount `json:"avg_profit_after_tax"`
	AvgIncomeTax        Amount `json:"avg_income_tax"`
	TotalInvestment     Amount `json:"total_investment"`
}

// ProfitabilityAnalysis returns cumulative and per-year averages of profit
// and income tax over the operation years.
func (p *Project) ProfitabilityAnalysis() ProfitabilityAnalysis {
	totalProfit := decimal.Zero
	totalTax := decimal.Zero
	for i := range p.Results.ProfitAfterTax {
		totalProfit = totalProfit.Add(p.Results.ProfitAfterTax[i].Decimal)
		totalTax = totalTax.Add(p.Results.IncomeTax[i].Decimal)
	}

	avgProfit := decimal.Zero
	avgTax := decimal.Zero
	if p.Period.OperationYears > 0 {
		years := decimal.NewFromInt(int64(p.Period.OperationYears))
		avgProfit = totalProfit.Div(years)
		avgTax = totalTax.Div(years)
	}

	return ProfitabilityAnalysis{
		TotalProfitAfterTax: round2(totalProfit),
		TotalIncomeTax:      round2(totalTax),
		AvgProfitAfterTax:   round2(avgProfit),
		AvgIncomeTax:        round2(avgTax),
		TotalInvestment:     p.Results.TotalInvestment,
	}
}

// debtShare is the assumed borrowed fraction of total investment used by the
// solvency view.
var debtShare = decimal.RequireFromString("0.7")

// SolvencyAnalysis is a simplified debt view assuming a fixed borrowed share
// of total investment.
type SolvencyAnalysis struct {
	TotalDebt        Amount `json:"total_debt"`
	DebtRatioPercent Amount `json:"debt_ratio_percent"`
}

// SolvencyAnalysis returns the simplified solvency view.
func (p *Project) SolvencyAnalysis() SolvencyAnalysis {
	debt := round2(p.Results.TotalInvestment.Mul(debtShare))
	ratio := Amount{decimal.Zero}
	if !p.Results.TotalInvestment.IsZero() {
		ratio = round2(debt.Div(p.Results.TotalInvestment.Decimal).Mul(decimal.NewFromInt(100)))
	}
	return SolvencyAnalysis{TotalDebt: debt, DebtRatioPercent: ratio}
}

func yearLabels(total int) []int {
	years := make([]int, total)
	for i := range years {
		years[i] = i + 1
	}
	return years
}

func seriesColumn(s YearSeries, total int) []Amount {
	out := make([]Amount, total)
	for i := range out {
		out[i] = Amount{s.Get(i + 1)}
	}
	return out
}
