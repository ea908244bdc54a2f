package projecteval

import (
	"bytes"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	p := calculatedProject(t)
	want := resultsJSON(t, p)

	restored, err := LoadProject(p.Snapshot())
	assertNoError(t, err, "LoadProject")
	assertNoError(t, restored.CalculateAll(), "recalculate restored")

	if !bytes.Equal(want, resultsJSON(t, restored)) {
		t.Error("restored project produced different results")
	}
	if restored.Name != p.Name {
		t.Errorf("restored name: got %q, want %q", restored.Name, p.Name)
	}
}

func TestSnapshotCoversScalars(t *testing.T) {
	snap := NewProject().Snapshot()

	for _, key := range []string{
		"name",
		"period.construction_years",
		"investment.building_cost",
		"investment.construction_interest",
		"assets.depreciation_years",
		"assets.salvage_rate",
		"tax.income_tax_rate",
		"financial.discount_rate",
		"financial.loss_offset_years",
	} {
		if _, ok := snap[key]; !ok {
			t.Errorf("snapshot missing key %q", key)
		}
	}
	if snap["investment.construction_interest"] != "5721.185772330424" {
		t.Errorf("interest lost precision: %s", snap["investment.construction_interest"])
	}
}

func TestSnapshotSeriesKeys(t *testing.T) {
	p := testProject(1, 2)
	p.Revenue.Building.Set(2, amt("10.50"))
	p.Tax.SubsidyIncome.Set(3, amt("7"))

	snap := p.Snapshot()
	if snap["revenue.building.2"] != "10.50" {
		t.Errorf("series key: got %q", snap["revenue.building.2"])
	}
	if snap["tax.subsidy_income.3"] != "7" {
		t.Errorf("subsidy key: got %q", snap["tax.subsidy_income.3"])
	}
	if _, ok := snap["revenue.building.1"]; ok {
		t.Error("empty years must not be exported")
	}
}

func TestApplySnapshotIgnoresUnknownKeys(t *testing.T) {
	p := NewProject()
	err := p.ApplySnapshot(Snapshot{
		"future.some_new_field":    "123",
		"investment.building_cost": "500",
	})
	assertNoError(t, err, "apply with unknown key")
	assertAmount(t, p.Investment.BuildingCost, "500", "known key applied")
}

func TestApplySnapshotRejectsMalformedValues(t *testing.T) {
	err := NewProject().ApplySnapshot(Snapshot{"investment.building_cost": "abc"})
	assertErrorCode(t, err, ErrCodeValidation, "malformed amount")

	err = NewProject().ApplySnapshot(Snapshot{"period.operation_years": "many"})
	assertErrorCode(t, err, ErrCodeValidation, "malformed integer")

	err = NewProject().ApplySnapshot(Snapshot{"revenue.building.zero": "10"})
	assertErrorCode(t, err, ErrCodeValidation, "malformed series year")
}

func TestApplySnapshotTrimsToNewPeriod(t *testing.T) {
	p, err := LoadProject(Snapshot{
		"period.construction_years": "1",
		"period.operation_years":    "2",
		"revenue.building.3":        "100",
		"revenue.building.9":        "200",
	})
	assertNoError(t, err, "LoadProject")

	assertAmount(t, Amount{p.Revenue.Building.Get(3)}, "100", "entry in horizon")
	assertAmount(t, Amount{p.Revenue.Building.Get(9)}, "0", "entry past horizon dropped")
}
