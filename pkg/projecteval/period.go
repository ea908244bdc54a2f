package projecteval

import "fmt"

// Period describes the project timeline: a construction phase with only
// investment outflows followed by an operation phase generating revenue.
// Years are 1-based over [1, TotalYears].
type Period struct {
	ConstructionYears int `json:"construction_years"`
	OperationYears    int `json:"operation_years"`
}

// TotalYears returns the full calculation horizon.
func (p Period) TotalYears() int {
	return p.ConstructionYears + p.OperationYears
}

// OperationStartYear returns the first operation year.
func (p Period) OperationStartYear() int {
	return p.ConstructionYears + 1
}

// IsConstructionYear reports whether year falls in the construction phase.
func (p Period) IsConstructionYear(year int) bool {
	return year >= 1 && year <= p.ConstructionYears
}

// IsOperationYear reports whether year falls in the operation phase.
func (p Period) IsOperationYear(year int) bool {
	return year >= p.OperationStartYear() && year <= p.TotalYears()
}

// Validate rejects non-positive phase lengths. Upper bounds (such as UI
// limits on construction and operation length) are the caller's concern.
func (p Period) Validate() error {
	if p.ConstructionYears < 1 {
		return NewError(ErrCodeConfiguration, fmt.Sprintf("construction period must be at least 1 year, got %d", p.ConstructionYears))
	}
	if p.OperationYears < 1 {
		return NewError(ErrCodeConfiguration, fmt.Sprintf("operation period must be at least 1 year, got %d", p.OperationYears))
	}
	return nil
}
