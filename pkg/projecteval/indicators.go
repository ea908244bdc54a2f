package projecteval

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	irrLowerBound    = -0.9
	irrUpperBound    = 1.0
	irrTolerance     = 1e-4
	irrMaxIterations = 1000
)

// calculateIndicators derives the discounted-cash-flow indicators from the
// net cash-flow series: NPV at the configured discount rate, IRR by
// bisection, and the static and dynamic payback periods.
func calculateIndicators(p *Project) error {
	res := &p.Results
	net := res.NetCashFlow
	rate := p.Financial.DiscountRate.Decimal

	// NPV: year 1 undiscounted, each term rounded before accumulation.
	npv := decimal.Zero
	for i := range net {
		if net[i].IsZero() {
			continue
		}
		npv = npv.Add(round2(net[i].Mul(discountFactor(rate, i))).Decimal)
	}
	res.NPV = round2(npv)

	flows := make([]float64, len(net))
	for i := range net {
		flows[i], _ = net[i].Float64()
	}
	res.IRR = roundTo(decimal.NewFromFloat(bisectIRR(flows)), 4)

	res.StaticPaybackYears = staticPayback(res.CumulativeCashFlow, net)
	res.DynamicPaybackYears = dynamicPayback(net, rate)
	return nil
}

func discountFactor(rate decimal.Decimal, yearIndex int) decimal.Decimal {
	return one.Div(one.Add(rate).Pow(decimal.NewFromInt(int64(yearIndex))))
}

// bisectIRR narrows a fixed rate bracket toward the zero of NPV(rate) and
// returns the midpoint of the final bracket. For cash-flow sequences with no
// sign change or several sign changes the result is a best-effort root, not
// a guaranteed unique IRR.
func bisectIRR(flows []float64) float64 {
	lower, upper := irrLowerBound, irrUpperBound
	mid := 0.0
	for iter := 0; iter < irrMaxIterations; iter++ {
		mid = (lower + upper) / 2
		npv := 0.0
		for i, cf := range flows {
			npv += cf / math.Pow(1+mid, float64(i))
		}
		if math.Abs(npv) < irrTolerance {
			return mid
		}
		if npv > 0 {
			lower = mid
		} else {
			upper = mid
		}
	}
	return mid
}

// staticPayback finds the first crossing where cumulative cash flow turns
// non-negative and interpolates within that year. Nil means the investment
// is never recovered within the horizon.
func staticPayback(cumulative, net []Amount) *Amount {
	for i := 1; i < len(cumulative); i++ {
		if cumulative[i].IsNegative() || !cumulative[i-1].IsNegative() || net[i].IsZero() {
			continue
		}
		payback := decimal.NewFromInt(int64(i)).
			Add(cumulative[i-1].Abs().Div(net[i].Abs()))
		return amountPtr(round2(payback))
	}
	return nil
}

// dynamicPayback runs the same crossing search over the cumulative
// discounted cash flow.
func dynamicPayback(net []Amount, rate decimal.Decimal) *Amount {
	cumulative := decimal.Zero
	for i := range net {
		discounted := decimal.Zero
		if !net[i].IsZero() {
			discounted = round2(net[i].Mul(discountFactor(rate, i))).Decimal
		}
		previous := cumulative
		cumulative = cumulative.Add(discounted)

		if i > 0 && !cumulative.IsNegative() && previous.IsNegative() && !discounted.IsZero() {
			payback := decimal.NewFromInt(int64(i)).
				Add(previous.Abs().Div(discounted.Abs()))
			return amountPtr(round2(payback))
		}
	}
	return nil
}
