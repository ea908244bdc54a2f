package projecteval

import "testing"

func TestCalculateIndicatorsNPVZeroRate(t *testing.T) {
	p := testProject(1, 2)
	p.Financial.DiscountRate = amt("0")
	p.Results.NetCashFlow[0] = amt("-100")
	p.Results.NetCashFlow[1] = amt("60")
	p.Results.NetCashFlow[2] = amt("70")
	p.Results.CumulativeCashFlow[0] = amt("-100")
	p.Results.CumulativeCashFlow[1] = amt("-40")
	p.Results.CumulativeCashFlow[2] = amt("30")

	assertNoError(t, calculateIndicators(p), "calculateIndicators")

	// At rate zero NPV is just the sum of net flows.
	assertAmount(t, p.Results.NPV, "30", "NPV at zero rate")
}

func TestCalculateIndicatorsNPVDiscounting(t *testing.T) {
	p := testProject(1, 1)
	p.Financial.DiscountRate = amt("0.1")
	p.Results.NetCashFlow[0] = amt("-100")
	p.Results.NetCashFlow[1] = amt("110")

	assertNoError(t, calculateIndicators(p), "calculateIndicators")

	// -100 + 110/1.1 = 0; the zero-NPV rate is exactly 10%.
	assertAmount(t, p.Results.NPV, "0", "NPV at the break-even rate")
	assertAmount(t, p.Results.IRR, "0.1", "IRR by bisection")
}

func TestStaticPayback(t *testing.T) {
	cumulative := []Amount{amt("-100"), amt("-40"), amt("20")}
	net := []Amount{amt("-100"), amt("60"), amt("60")}

	got := staticPayback(cumulative, net)
	// Crossing in index 2: 2 + 40/60.
	assertAmountPtr(t, got, "2.67", "static payback")
}

func TestStaticPaybackNeverRecovered(t *testing.T) {
	cumulative := []Amount{amt("-100"), amt("-90"), amt("-80")}
	net := []Amount{amt("-100"), amt("10"), amt("10")}

	if got := staticPayback(cumulative, net); got != nil {
		t.Errorf("static payback: got %s, want nil", got.Decimal.String())
	}
}

func TestStaticPaybackBounds(t *testing.T) {
	// The payback lies between the last negative-cumulative year and the
	// crossing year.
	cumulative := []Amount{amt("-100"), amt("-1"), amt("99")}
	net := []Amount{amt("-100"), amt("99"), amt("100")}

	got := staticPayback(cumulative, net)
	assertAmountPtr(t, got, "2.01", "near-integer payback")
}

func TestDynamicPaybackZeroRateMatchesStatic(t *testing.T) {
	net := []Amount{amt("-100"), amt("60"), amt("60")}

	got := dynamicPayback(net, amt("0").Decimal)
	assertAmountPtr(t, got, "2.67", "dynamic payback at zero rate")
}

func TestDynamicPaybackDiscountedLater(t *testing.T) {
	net := []Amount{amt("-100"), amt("60"), amt("60"), amt("60")}

	static := staticPayback([]Amount{amt("-100"), amt("-40"), amt("20"), amt("80")}, net)
	dynamic := dynamicPayback(net, amt("0.1").Decimal)

	if static == nil || dynamic == nil {
		t.Fatal("expected both payback values")
	}
	if !dynamic.GreaterThan(static.Decimal) {
		t.Errorf("dynamic payback %s should exceed static %s under discounting",
			dynamic.Decimal.String(), static.Decimal.String())
	}
}
