package projecteval

import "fmt"

// stage is one step of the calculation pipeline. Stages read fields earlier
// stages wrote and write disjoint Results fields, so order matters.
type stage struct {
	name string
	run  func(*Project) error
}

var pipeline = []stage{
	{"investment", calculateInvestment},
	{"depreciation", calculateDepreciation},
	{"revenue", calculateRevenue},
	{"cost", calculateCost},
	{"tax", calculateTax},
	{"profit", calculateProfit},
	{"cashflow", calculateCashFlow},
	{"indicators", calculateIndicators},
}

// CalculateAll resets every Results array and runs the full pipeline once,
// populating Results deterministically from the current inputs. Re-running
// on an unchanged project yields identical results. On a stage failure the
// pipeline halts immediately; Results must then be treated as undefined.
func (p *Project) CalculateAll() error {
	if err := p.Period.Validate(); err != nil {
		return err
	}
	p.Results.reset(p.Period.TotalYears())

	for _, s := range pipeline {
		if err := s.run(p); err != nil {
			if IsErrorCode(err, ErrCodeConfiguration) {
				return err
			}
			return WrapError(ErrCodeComputation, fmt.Sprintf("%s stage failed", s.name), err)
		}
	}
	return nil
}
