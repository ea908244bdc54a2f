package projecteval

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SensitivityFactor names an input dimension a scenario sweep can scale.
type SensitivityFactor string

const (
	FactorRevenue      SensitivityFactor = "revenue"
	FactorCost         SensitivityFactor = "cost"
	FactorInvestment   SensitivityFactor = "investment"
	FactorDiscountRate SensitivityFactor = "discount_rate"
)

// ValidFactor reports whether f names a known sweep dimension.
func ValidFactor(f SensitivityFactor) bool {
	switch f {
	case FactorRevenue, FactorCost, FactorInvestment, FactorDiscountRate:
		return true
	}
	return false
}

// SensitivityPoint captures the indicators of one adjusted scenario.
type SensitivityPoint struct {
	ChangePercent       Amount  `json:"change_percent"`
	NPV                 Amount  `json:"npv"`
	IRR                 Amount  `json:"irr"`
	StaticPaybackYears  *Amount `json:"static_payback_years"`
	DynamicPaybackYears *Amount `json:"dynamic_payback_years"`
}

// SensitivityResult is one factor's full sweep.
type SensitivityResult struct {
	Factor SensitivityFactor  `json:"factor"`
	Points []SensitivityPoint `json:"points"`
}

var hundred = decimal.NewFromInt(100)

// AnalyzeSensitivity sweeps a single factor across the given percent changes.
// Each scenario runs on an independent deep copy, so the base project and its
// results are never touched.
func AnalyzeSensitivity(base *Project, factor SensitivityFactor, changes []Amount) (SensitivityResult, error) {
	if !ValidFactor(factor) {
		return SensitivityResult{}, NewError(ErrCodeValidation, fmt.Sprintf("unknown sensitivity factor %q", factor))
	}

	result := SensitivityResult{Factor: factor, Points: make([]SensitivityPoint, 0, len(changes))}
	for _, change := range changes {
		point, err := AnalyzeScenario(base, map[SensitivityFactor]Amount{factor: change})
		if err != nil {
			return SensitivityResult{}, err
		}
		point.ChangePercent = change
		result.Points = append(result.Points, point)
	}
	return result, nil
}

// AnalyzeScenario applies several factor adjustments to one scenario at once
// and returns its indicators. ChangePercent is left zero; callers sweeping a
// single factor fill it in themselves.
func AnalyzeScenario(base *Project, adjustments map[SensitivityFactor]Amount) (SensitivityPoint, error) {
	scenario := base.Clone()
	for factor, change := range adjustments {
		if err := applyFactor(scenario, factor, change); err != nil {
			return SensitivityPoint{}, err
		}
	}
	if err := scenario.CalculateAll(); err != nil {
		return SensitivityPoint{}, err
	}
	return SensitivityPoint{
		NPV:                 scenario.Results.NPV,
		IRR:                 scenario.Results.IRR,
		StaticPaybackYears:  scenario.Results.StaticPaybackYears,
		DynamicPaybackYears: scenario.Results.DynamicPaybackYears,
	}, nil
}

// applyFactor scales the factor's inputs by (1 + change/100).
//
// Revenue scaling covers the operating streams but not asset-sale proceeds,
// and cost scaling skips the repair series the engine derives itself.
// Investment scaling covers the engineering, construction-fee and contingency
// items; land, patent, preparation fees, capitalized interest and working
// capital stay fixed, matching how the estimate is usually stress-tested.
func applyFactor(p *Project, factor SensitivityFactor, change Amount) error {
	if !ValidFactor(factor) {
		return NewError(ErrCodeValidation, fmt.Sprintf("unknown sensitivity factor %q", factor))
	}
	multiplier := one.Add(change.Div(hundred))

	switch factor {
	case FactorRevenue:
		scaleSeries(multiplier,
			p.Revenue.Building,
			p.Revenue.SupportingFacility,
			p.Revenue.PropertyService,
			p.Revenue.Parking,
			p.Revenue.Advertising)

	case FactorCost:
		scaleSeries(multiplier,
			p.Cost.Material,
			p.Cost.FuelPower,
			p.Cost.Labor,
			p.Cost.Other)

	case FactorInvestment:
		for _, field := range []*Amount{
			&p.Investment.BuildingCost,
			&p.Investment.EquipmentProcurementCost,
			&p.Investment.EquipmentInstallationCost,
			&p.Investment.PublicEquipmentProcurementCost,
			&p.Investment.PublicEquipmentInstallationCost,
			&p.Investment.ConstructionManagementFee,
			&p.Investment.TechnicalConsultingFee,
			&p.Investment.InfrastructureFee,
			&p.Investment.BasicContingencyReserve,
			&p.Investment.PriceContingencyReserve,
		} {
			field.Decimal = field.Decimal.Mul(multiplier)
		}

	case FactorDiscountRate:
		p.Financial.DiscountRate.Decimal = p.Financial.DiscountRate.Mul(multiplier)
	}
	return nil
}

func scaleSeries(multiplier decimal.Decimal, series ...YearSeries) {
	for _, s := range series {
		for year, v := range s {
			s[year] = Amount{v.Mul(multiplier)}
		}
	}
}
