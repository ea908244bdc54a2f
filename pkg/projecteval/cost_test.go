package projecteval

import "testing"

func TestCalculateCostRepairFromAssetBase(t *testing.T) {
	p := testProject(1, 2)
	p.AssetValues.FixedAssetsWithInterest = amt("1000")

	assertNoError(t, calculateCost(p), "calculateCost")

	// 0.5% of the fixed-asset base, operation years only.
	assertAmount(t, Amount{p.Cost.Repair.Get(2)}, "5", "repair year 2")
	assertAmount(t, Amount{p.Cost.Repair.Get(3)}, "5", "repair year 3")
	assertAmount(t, Amount{p.Cost.Repair.Get(1)}, "0", "repair construction year")
	assertAmount(t, p.Results.Cost[1], "5", "cost is repair only")
}

func TestCalculateCostTotalsAndInputVAT(t *testing.T) {
	p := testProject(1, 1)
	p.AssetValues.FixedAssetsWithInterest = amt("1000")
	p.Cost.Material.Set(2, amt("113"))
	p.Cost.FuelPower.Set(2, amt("109"))
	p.Cost.Labor.Set(2, amt("50"))
	p.Cost.Other.Set(2, amt("23"))

	assertNoError(t, calculateCost(p), "calculateCost")

	// 113 + 109 + 50 + 5 repair + 23
	assertAmount(t, p.Results.Cost[1], "300", "total cost")
	// Material 113 at 13%, fuel 109 at the statutory 9%: 13 + 9.
	assertAmount(t, p.Results.VATInput[1], "22", "input VAT")
}

func TestCalculateCostRebuildsRepair(t *testing.T) {
	p := testProject(1, 1)
	p.AssetValues.FixedAssetsWithInterest = amt("1000")
	p.Cost.Repair.Set(2, amt("999"))

	assertNoError(t, calculateCost(p), "calculateCost")

	// Caller-supplied repair entries are discarded.
	assertAmount(t, Amount{p.Cost.Repair.Get(2)}, "5", "repair rebuilt")
}
