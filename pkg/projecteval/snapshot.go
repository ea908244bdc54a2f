package projecteval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Snapshot is a flat key-value export of every project input. Scalar inputs
// appear under dotted keys ("investment.building_cost"); per-year series
// entries carry the year as a trailing segment ("revenue.building.4").
// Amounts are stored as exact decimal strings, so loading a snapshot and
// recalculating reproduces results bit for bit.
//
// Engine-derived fields (asset bases, repair cost, results) are not part of a
// snapshot; they are rebuilt by the next calculation run.
type Snapshot map[string]string

func (p *Project) amountFields() map[string]*Amount {
	return map[string]*Amount{
		"investment.building_cost":                      &p.Investment.BuildingCost,
		"investment.equipment_procurement_cost":         &p.Investment.EquipmentProcurementCost,
		"investment.equipment_installation_cost":        &p.Investment.EquipmentInstallationCost,
		"investment.public_equipment_procurement_cost":  &p.Investment.PublicEquipmentProcurementCost,
		"investment.public_equipment_installation_cost": &p.Investment.PublicEquipmentInstallationCost,
		"investment.construction_management_fee":        &p.Investment.ConstructionManagementFee,
		"investment.technical_consulting_fee":           &p.Investment.TechnicalConsultingFee,
		"investment.infrastructure_fee":                 &p.Investment.InfrastructureFee,
		"investment.land_use_fee":                       &p.Investment.LandUseFee,
		"investment.patent_fee":                         &p.Investment.PatentFee,
		"investment.other_preparation_fee":              &p.Investment.OtherPreparationFee,
		"investment.basic_contingency_reserve":          &p.Investment.BasicContingencyReserve,
		"investment.price_contingency_reserve":          &p.Investment.PriceContingencyReserve,
		"investment.construction_interest":              &p.Investment.ConstructionInterest,
		"investment.working_capital":                    &p.Investment.WorkingCapital,
		"assets.salvage_rate":                           &p.Assets.SalvageRate,
		"tax.vat_output_rate_general":                   &p.Tax.VATOutputRateGeneral,
		"tax.vat_output_rate_service":                   &p.Tax.VATOutputRateService,
		"tax.vat_input_rate":                            &p.Tax.VATInputRate,
		"tax.city_maintenance_tax_rate":                 &p.Tax.CityMaintenanceTaxRate,
		"tax.education_surtax_rate":                     &p.Tax.EducationSurtaxRate,
		"tax.income_tax_rate":                           &p.Tax.IncomeTaxRate,
		"financial.discount_rate":                       &p.Financial.DiscountRate,
		"financial.surplus_reserve_rate":                &p.Financial.SurplusReserveRate,
	}
}

func (p *Project) intFields() map[string]*int {
	return map[string]*int{
		"period.construction_years":   &p.Period.ConstructionYears,
		"period.operation_years":      &p.Period.OperationYears,
		"assets.depreciation_years":   &p.Assets.DepreciationYears,
		"assets.amortization_years":   &p.Assets.AmortizationYears,
		"assets.other_assets_years":   &p.Assets.OtherAssetsYears,
		"financial.loss_offset_years": &p.Financial.LossOffsetYears,
	}
}

func (p *Project) seriesFields() map[string]*YearSeries {
	return map[string]*YearSeries{
		"revenue.building":            &p.Revenue.Building,
		"revenue.supporting_facility": &p.Revenue.SupportingFacility,
		"revenue.property_service":    &p.Revenue.PropertyService,
		"revenue.parking":             &p.Revenue.Parking,
		"revenue.advertising":         &p.Revenue.Advertising,
		"revenue.asset_sale":          &p.Revenue.AssetSale,
		"cost.material":               &p.Cost.Material,
		"cost.fuel_power":             &p.Cost.FuelPower,
		"cost.labor":                  &p.Cost.Labor,
		"cost.other":                  &p.Cost.Other,
		"tax.subsidy_income":          &p.Tax.SubsidyIncome,
	}
}

// Snapshot exports every input field. Every scalar key is always present;
// series keys are present only for the years that hold a value.
func (p *Project) Snapshot() Snapshot {
	snap := Snapshot{"name": p.Name}
	for key, v := range p.amountFields() {
		snap[key] = v.Decimal.String()
	}
	for key, v := range p.intFields() {
		snap[key] = strconv.Itoa(*v)
	}
	for prefix, s := range p.seriesFields() {
		for year, v := range *s {
			snap[prefix+"."+strconv.Itoa(year)] = v.Decimal.String()
		}
	}
	return snap
}

// ApplySnapshot writes snapshot values onto the project in place. Unknown
// keys are ignored so snapshots from newer schema revisions still load;
// malformed values fail with a validation error and may leave the project
// partially updated. Results are reset and must be recalculated.
func (p *Project) ApplySnapshot(snap Snapshot) error {
	amounts := p.amountFields()
	ints := p.intFields()
	series := p.seriesFields()

	for key, raw := range snap {
		switch {
		case key == "name":
			p.Name = raw

		case amounts[key] != nil:
			d, err := decimal.NewFromString(raw)
			if err != nil {
				return WrapError(ErrCodeValidation, fmt.Sprintf("invalid amount for %q", key), err)
			}
			amounts[key].Decimal = d

		case ints[key] != nil:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return WrapError(ErrCodeValidation, fmt.Sprintf("invalid integer for %q", key), err)
			}
			*ints[key] = n

		default:
			prefix, yearPart, ok := splitSeriesKey(key)
			s := series[prefix]
			if !ok || s == nil {
				continue
			}
			year, err := strconv.Atoi(yearPart)
			if err != nil || year < 1 {
				return NewError(ErrCodeValidation, fmt.Sprintf("invalid year in key %q", key))
			}
			d, err := decimal.NewFromString(raw)
			if err != nil {
				return WrapError(ErrCodeValidation, fmt.Sprintf("invalid amount for %q", key), err)
			}
			s.Set(year, Amount{d})
		}
	}

	if err := p.Period.Validate(); err != nil {
		return err
	}
	for _, s := range p.yearSeries() {
		s.trim(p.Period.TotalYears())
	}
	p.Results.reset(p.Period.TotalYears())
	return nil
}

// LoadProject builds a project from a snapshot, starting from the model
// defaults for any scalar the snapshot omits.
func LoadProject(snap Snapshot) (*Project, error) {
	p := NewProject()
	if err := p.ApplySnapshot(snap); err != nil {
		return nil, err
	}
	return p, nil
}

func splitSeriesKey(key string) (prefix, year string, ok bool) {
	i := strings.LastIndex(key, ".")
	if i < 0 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}
