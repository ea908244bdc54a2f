package projecteval

import (
	"github.com/shopspring/decimal"
)

// YearSeries maps a 1-based project year to an amount. Absent years mean zero.
// Keys are never renumbered: period changes only drop entries beyond the new
// horizon.
type YearSeries map[int]Amount

// Get returns the amount for a year, or zero when absent.
func (s YearSeries) Get(year int) decimal.Decimal {
	if v, ok := s[year]; ok {
		return v.Decimal
	}
	return decimal.Zero
}

// Set stores the amount for a year, allocating the map if needed.
func (s *YearSeries) Set(year int, v Amount) {
	if *s == nil {
		*s = YearSeries{}
	}
	(*s)[year] = v
}

func (s YearSeries) trim(maxYear int) {
	for year := range s {
		if year > maxYear {
			delete(s, year)
		}
	}
}

func (s YearSeries) clone() YearSeries {
	if s == nil {
		return nil
	}
	out := make(YearSeries, len(s))
	for year, v := range s {
		out[year] = v
	}
	return out
}

// InvestmentInputs holds the fixed (not per-year) investment estimate.
type InvestmentInputs struct {
	// Engineering cost
	BuildingCost                    Amount `json:"building_cost"`
	EquipmentProcurementCost        Amount `json:"equipment_procurement_cost"`
	EquipmentInstallationCost       Amount `json:"equipment_installation_cost"`
	PublicEquipmentProcurementCost  Amount `json:"public_equipment_procurement_cost"`
	PublicEquipmentInstallationCost Amount `json:"public_equipment_installation_cost"`

	// Other construction cost
	ConstructionManagementFee Amount `json:"construction_management_fee"`
	TechnicalConsultingFee    Amount `json:"technical_consulting_fee"`
	InfrastructureFee         Amount `json:"infrastructure_fee"`
	LandUseFee                Amount `json:"land_use_fee"`
	PatentFee                 Amount `json:"patent_fee"`
	OtherPreparationFee       Amount `json:"other_preparation_fee"`

	// Contingency reserve
	BasicContingencyReserve Amount `json:"basic_contingency_reserve"`
	PriceContingencyReserve Amount `json:"price_contingency_reserve"`

	ConstructionInterest Amount `json:"construction_interest"`
	WorkingCapital       Amount `json:"working_capital"`
}

// AssetParameters configures depreciation and amortization schedules.
// A years value of zero means the corresponding charge is simply not taken.
type AssetParameters struct {
	DepreciationYears int    `json:"depreciation_years"`
	SalvageRate       Amount `json:"salvage_rate"`
	AmortizationYears int    `json:"amortization_years"`
	OtherAssetsYears  int    `json:"other_assets_years"`
}

// AssetDerived holds asset bases computed by the investment stage.
type AssetDerived struct {
	FixedAssetsOriginalValue Amount `json:"fixed_assets_original_value"`
	FixedAssetsWithInterest  Amount `json:"fixed_assets_with_interest"`
	IntangibleAssets         Amount `json:"intangible_assets"`
	OtherAssets              Amount `json:"other_assets"`
	DeductibleTax            Amount `json:"deductible_tax"`
}

// RevenueInputs holds the six per-year revenue streams.
type RevenueInputs struct {
	Building           YearSeries `json:"building"`
	SupportingFacility YearSeries `json:"supporting_facility"`
	PropertyService    YearSeries `json:"property_service"`
	Parking            YearSeries `json:"parking"`
	Advertising        YearSeries `json:"advertising"`
	AssetSale          YearSeries `json:"asset_sale"`
}

// CostInputs holds the per-year cost streams. Repair is engine-computed from
// the fixed-asset base and rebuilt on every calculation run.
type CostInputs struct {
	Material  YearSeries `json:"material"`
	FuelPower YearSeries `json:"fuel_power"`
	Labor     YearSeries `json:"labor"`
	Repair    YearSeries `json:"repair"`
	Other     YearSeries `json:"other"`
}

// TaxParameters holds rates and the optional per-year subsidy income.
type TaxParameters struct {
	VATOutputRateGeneral   Amount     `json:"vat_output_rate_general"`
	VATOutputRateService   Amount     `json:"vat_output_rate_service"`
	VATInputRate           Amount     `json:"vat_input_rate"`
	CityMaintenanceTaxRate Amount     `json:"city_maintenance_tax_rate"`
	EducationSurtaxRate    Amount     `json:"education_surtax_rate"`
	IncomeTaxRate          Amount     `json:"income_tax_rate"`
	SubsidyIncome          YearSeries `json:"subsidy_income"`
}

// FinancialParameters holds discounting and profit-distribution settings.
type FinancialParameters struct {
	DiscountRate       Amount `json:"discount_rate"`
	LossOffsetYears    int    `json:"loss_offset_years"`
	SurplusReserveRate Amount `json:"surplus_reserve_rate"`
}

// Results holds every engine output. All per-year slices have length
// Period.TotalYears() with index 0 = year 1.
type Results struct {
	TotalInvestment Amount `json:"total_investment"`

	FixedAssetsInvestment    []Amount `json:"fixed_assets_investment"`
	WorkingCapitalInvestment []Amount `json:"working_capital_investment"`

	Depreciation []Amount `json:"depreciation"`
	Amortization []Amount `json:"amortization"`

	Revenue             []Amount `json:"revenue"`
	Cost                []Amount `json:"cost"`
	ProfitBeforeTax     []Amount `json:"profit_before_tax"`
	IncomeTax           []Amount `json:"income_tax"`
	ProfitAfterTax      []Amount `json:"profit_after_tax"`
	SurplusReserve      []Amount `json:"surplus_reserve"`
	DistributableProfit []Amount `json:"distributable_profit"`

	VATOutput          []Amount `json:"vat_output"`
	VATInput           []Amount `json:"vat_input"`
	VATPaid            []Amount `json:"vat_paid"`
	CityMaintenanceTax []Amount `json:"city_maintenance_tax"`
	EducationSurtax    []Amount `json:"education_surtax"`

	CashIn             []Amount `json:"cash_in"`
	CashOut            []Amount `json:"cash_out"`
	NetCashFlow        []Amount `json:"net_cash_flow"`
	CumulativeCashFlow []Amount `json:"cumulative_cash_flow"`

	NPV                 Amount  `json:"npv"`
	IRR                 Amount  `json:"irr"`
	StaticPaybackYears  *Amount `json:"static_payback_years"`
	DynamicPaybackYears *Amount `json:"dynamic_payback_years"`
}

func zeroAmounts(n int) []Amount {
	out := make([]Amount, n)
	for i := range out {
		out[i] = Amount{decimal.Zero}
	}
	return out
}

// reset reinitializes every result array to totalYears zero entries and
// clears the scalar indicators.
func (r *Results) reset(totalYears int) {
	r.TotalInvestment = Amount{decimal.Zero}
	r.FixedAssetsInvestment = zeroAmounts(totalYears)
	r.WorkingCapitalInvestment = zeroAmounts(totalYears)
	r.Depreciation = zeroAmounts(totalYears)
	r.Amortization = zeroAmounts(totalYears)
	r.Revenue = zeroAmounts(totalYears)
	r.Cost = zeroAmounts(totalYears)
	r.ProfitBeforeTax = zeroAmounts(totalYears)
	r.IncomeTax = zeroAmounts(totalYears)
	r.ProfitAfterTax = zeroAmounts(totalYears)
	r.SurplusReserve = zeroAmounts(totalYears)
	r.DistributableProfit = zeroAmounts(totalYears)
	r.VATOutput = zeroAmounts(totalYears)
	r.VATInput = zeroAmounts(totalYears)
	r.VATPaid = zeroAmounts(totalYears)
	r.CityMaintenanceTax = zeroAmounts(totalYears)
	r.EducationSurtax = zeroAmounts(totalYears)
	r.CashIn = zeroAmounts(totalYears)
	r.CashOut = zeroAmounts(totalYears)
	r.NetCashFlow = zeroAmounts(totalYears)
	r.CumulativeCashFlow = zeroAmounts(totalYears)
	r.NPV = Amount{decimal.Zero}
	r.IRR = Amount{decimal.Zero}
	r.StaticPaybackYears = nil
	r.DynamicPaybackYears = nil
}

// Project is the full ledger: every input the caller sets plus the Results
// the engine populates. A Project is exclusively owned by one caller; it has
// no internal synchronization.
type Project struct {
	Name        string              `json:"name"`
	Period      Period              `json:"period"`
	Investment  InvestmentInputs    `json:"investment"`
	Assets      AssetParameters     `json:"assets"`
	AssetValues AssetDerived        `json:"asset_values"`
	Revenue     RevenueInputs       `json:"revenue"`
	Cost        CostInputs          `json:"cost"`
	Tax         TaxParameters       `json:"tax"`
	Financial   FinancialParameters `json:"financial"`
	Results     Results             `json:"results"`
}

// NewProject returns a project pre-filled with the sample appraisal figures
// used as defaults.
func NewProject() *Project {
	p := &Project{
		Name:   "construction project",
		Period: Period{ConstructionYears: 3, OperationYears: 17},
		Investment: InvestmentInputs{
			BuildingCost:              amt("67062.86"),
			EquipmentProcurementCost:  amt("2360.38"),
			EquipmentInstallationCost: amt("18299.19"),
			TechnicalConsultingFee:    amt("6036.83"),
			InfrastructureFee:         amt("1737.79"),
			LandUseFee:                amt("6505.72"),
			OtherPreparationFee:       amt("323.19"),
			BasicContingencyReserve:   amt("10532.08"),
			ConstructionInterest:      amt("5721.185772330424"),
			WorkingCapital:            amt("90"),
		},
		Assets: AssetParameters{
			DepreciationYears: 20,
			SalvageRate:       amt("0.05"),
			AmortizationYears: 50,
			OtherAssetsYears:  5,
		},
		Tax: TaxParameters{
			VATOutputRateGeneral:   amt("0.09"),
			VATOutputRateService:   amt("0.06"),
			VATInputRate:           amt("0.13"),
			CityMaintenanceTaxRate: amt("0.07"),
			EducationSurtaxRate:    amt("0.05"),
			IncomeTaxRate:          amt("0.25"),
		},
		Financial: FinancialParameters{
			DiscountRate:       amt("0.06"),
			LossOffsetYears:    5,
			SurplusReserveRate: amt("0.1"),
		},
	}
	p.Results.reset(p.Period.TotalYears())
	return p
}

// UpdatePeriod changes the project timeline and migrates per-year data:
// entries at years within the new horizon are kept unchanged, entries beyond
// it are dropped. Results are reinitialized for the new horizon.
func (p *Project) UpdatePeriod(constructionYears, operationYears int) error {
	next := Period{ConstructionYears: constructionYears, OperationYears: operationYears}
	if err := next.Validate(); err != nil {
		return err
	}
	p.Period = next

	total := next.TotalYears()
	for _, s := range p.yearSeries() {
		s.trim(total)
	}
	p.Results.reset(total)
	return nil
}

func (p *Project) yearSeries() []YearSeries {
	return []YearSeries{
		p.Revenue.Building,
		p.Revenue.SupportingFacility,
		p.Revenue.PropertyService,
		p.Revenue.Parking,
		p.Revenue.Advertising,
		p.Revenue.AssetSale,
		p.Cost.Material,
		p.Cost.FuelPower,
		p.Cost.Labor,
		p.Cost.Repair,
		p.Cost.Other,
		p.Tax.SubsidyIncome,
	}
}

// Clone returns an independently owned deep copy of the project. Scenario
// sweeps calculate on clones so concurrent runs never share state.
func (p *Project) Clone() *Project {
	out := *p

	out.Revenue.Building = p.Revenue.Building.clone()
	out.Revenue.SupportingFacility = p.Revenue.SupportingFacility.clone()
	out.Revenue.PropertyService = p.Revenue.PropertyService.clone()
	out.Revenue.Parking = p.Revenue.Parking.clone()
	out.Revenue.Advertising = p.Revenue.Advertising.clone()
	out.Revenue.AssetSale = p.Revenue.AssetSale.clone()
	out.Cost.Material = p.Cost.Material.clone()
	out.Cost.FuelPower = p.Cost.FuelPower.clone()
	out.Cost.Labor = p.Cost.Labor.clone()
	out.Cost.Repair = p.Cost.Repair.clone()
	out.Cost.Other = p.Cost.Other.clone()
	out.Tax.SubsidyIncome = p.Tax.SubsidyIncome.clone()

	out.Results.FixedAssetsInvestment = append([]Amount(nil), p.Results.FixedAssetsInvestment...)
	out.Results.WorkingCapitalInvestment = append([]Amount(nil), p.Results.WorkingCapitalInvestment...)
	out.Results.Depreciation = append([]Amount(nil), p.Results.Depreciation...)
	out.Results.Amortization = append([]Amount(nil), p.Results.Amortization...)
	out.Results.Revenue = append([]Amount(nil), p.Results.Revenue...)
	out.Results.Cost = append([]Amount(nil), p.Results.Cost...)
	out.Results.ProfitBeforeTax = append([]Amount(nil), p.Results.ProfitBeforeTax...)
	out.Results.IncomeTax = append([]Amount(nil), p.Results.IncomeTax...)
	out.Results.ProfitAfterTax = append([]Amount(nil), p.Results.ProfitAfterTax...)
	out.Results.SurplusReserve = append([]Amount(nil), p.Results.SurplusReserve...)
	out.Results.DistributableProfit = append([]Amount(nil), p.Results.DistributableProfit...)
	out.Results.VATOutput = append([]Amount(nil), p.Results.VATOutput...)
	out.Results.VATInput = append([]Amount(nil), p.Results.VATInput...)
	out.Results.VATPaid = append([]Amount(nil), p.Results.VATPaid...)
	out.Results.CityMaintenanceTax = append([]Amount(nil), p.Results.CityMaintenanceTax...)
	out.Results.EducationSurtax = append([]Amount(nil), p.Results.EducationSurtax...)
	out.Results.CashIn = append([]Amount(nil), p.Results.CashIn...)
	out.Results.CashOut = append([]Amount(nil), p.Results.CashOut...)
	out.Results.NetCashFlow = append([]Amount(nil), p.Results.NetCashFlow...)
	out.Results.CumulativeCashFlow = append([]Amount(nil), p.Results.CumulativeCashFlow...)

	if p.Results.StaticPaybackYears != nil {
		out.Results.StaticPaybackYears = amountPtr(*p.Results.StaticPaybackYears)
	}
	if p.Results.DynamicPaybackYears != nil {
		out.Results.DynamicPaybackYears = amountPtr(*p.Results.DynamicPaybackYears)
	}
	return &out
}
