package projecteval

import (
	"bytes"
	"testing"
)

func TestAnalyzeSensitivityRevenue(t *testing.T) {
	p := calculatedProject(t)

	result, err := AnalyzeSensitivity(p, FactorRevenue, []Amount{amt("-10"), amt("0"), amt("10")})
	assertNoError(t, err, "AnalyzeSensitivity")

	if result.Factor != FactorRevenue {
		t.Errorf("factor: got %s", result.Factor)
	}
	if len(result.Points) != 3 {
		t.Fatalf("points: got %d, want 3", len(result.Points))
	}

	assertAmount(t, result.Points[1].ChangePercent, "0", "baseline point")
	assertAmount(t, result.Points[1].NPV, p.Results.NPV.Decimal.String(), "baseline NPV matches base run")

	if !result.Points[2].NPV.GreaterThan(result.Points[1].NPV.Decimal) {
		t.Error("raising revenue should raise NPV")
	}
	if !result.Points[0].NPV.LessThan(result.Points[1].NPV.Decimal) {
		t.Error("cutting revenue should cut NPV")
	}
}

func TestAnalyzeSensitivityLeavesBaseUntouched(t *testing.T) {
	p := calculatedProject(t)
	before := resultsJSON(t, p)
	snapBefore := p.Snapshot()

	_, err := AnalyzeSensitivity(p, FactorCost, []Amount{amt("50"), amt("-50")})
	assertNoError(t, err, "AnalyzeSensitivity")

	if !bytes.Equal(before, resultsJSON(t, p)) {
		t.Error("sweep mutated base results")
	}
	for key, want := range snapBefore {
		if got := p.Snapshot()[key]; got != want {
			t.Errorf("sweep mutated input %s: got %s, want %s", key, got, want)
		}
	}
}

func TestAnalyzeSensitivityDirections(t *testing.T) {
	p := calculatedProject(t)
	base, err := AnalyzeScenario(p, nil)
	assertNoError(t, err, "base scenario")

	up := func(factor SensitivityFactor) SensitivityPoint {
		point, err := AnalyzeScenario(p, map[SensitivityFactor]Amount{factor: amt("10")})
		assertNoError(t, err, "scenario "+string(factor))
		return point
	}

	if !up(FactorCost).NPV.LessThan(base.NPV.Decimal) {
		t.Error("raising cost should cut NPV")
	}
	if !up(FactorInvestment).NPV.LessThan(base.NPV.Decimal) {
		t.Error("raising investment should cut NPV")
	}
	if !up(FactorDiscountRate).NPV.LessThan(base.NPV.Decimal) {
		t.Error("raising the discount rate should cut NPV")
	}
}

func TestAnalyzeScenarioMultiFactor(t *testing.T) {
	p := calculatedProject(t)

	point, err := AnalyzeScenario(p, map[SensitivityFactor]Amount{
		FactorRevenue: amt("-10"),
		FactorCost:    amt("10"),
	})
	assertNoError(t, err, "multi-factor scenario")

	if !point.NPV.LessThan(p.Results.NPV.Decimal) {
		t.Error("adverse combined scenario should cut NPV")
	}
}

func TestAnalyzeSensitivityUnknownFactor(t *testing.T) {
	p := calculatedProject(t)

	_, err := AnalyzeSensitivity(p, SensitivityFactor("weather"), []Amount{amt("10")})
	assertErrorCode(t, err, ErrCodeValidation, "unknown factor")
}

func TestApplyFactorScopes(t *testing.T) {
	p := calculatedProject(t)
	p.Revenue.AssetSale.Set(4, amt("100"))
	p.Investment.LandUseFee = amt("100")

	scenario := p.Clone()
	assertNoError(t, applyFactor(scenario, FactorRevenue, amt("10")), "scale revenue")
	assertNoError(t, applyFactor(scenario, FactorInvestment, amt("10")), "scale investment")

	// Asset-sale proceeds and land cost are out of scope for the sweeps.
	assertAmount(t, Amount{scenario.Revenue.AssetSale.Get(4)}, "100", "asset sale unscaled")
	assertAmount(t, scenario.Investment.LandUseFee, "100", "land use fee unscaled")
	assertAmount(t, Amount{scenario.Revenue.Building.Get(3)}, "440", "building revenue scaled")
	assertAmount(t, scenario.Investment.BuildingCost, "1100", "building cost scaled")
}
