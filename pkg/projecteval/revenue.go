package projecteval

// calculateRevenue aggregates the six revenue streams per operation year and
// extracts output VAT by rate group: the general group (building, supporting
// facility, parking, advertising, asset sale) at the general rate, property
// service at the service rate.
func calculateRevenue(p *Project) error {
	rev := &p.Revenue
	res := &p.Results
	ra := p.Tax.VATOutputRateGeneral.Decimal
	rb := p.Tax.VATOutputRateService.Decimal

	for year := p.Period.OperationStartYear(); year <= p.Period.TotalYears(); year++ {
		building := rev.Building.Get(year)
		supporting := rev.SupportingFacility.Get(year)
		propertyService := rev.PropertyService.Get(year)
		parking := rev.Parking.Get(year)
		advertising := rev.Advertising.Get(year)
		assetSale := rev.AssetSale.Get(year)

		res.Revenue[year-1] = round2(building.
			Add(supporting).
			Add(propertyService).
			Add(parking).
			Add(advertising).
			Add(assetSale))

		generalGroup := building.Add(supporting).Add(parking).Add(advertising).Add(assetSale)
		vatGeneral := round2(generalGroup.Mul(ra).Div(one.Add(ra)))
		vatService := round2(propertyService.Mul(rb).Div(one.Add(rb)))
		res.VATOutput[year-1] = round2(vatGeneral.Add(vatService.Decimal))
	}
	return nil
}
