package projecteval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// setupTestDB creates a temporary database for testing and returns a Core instance.
// The caller should defer cleanup() to remove the temp file.
func setupTestDB(t *testing.T) (*Core, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "projecteval-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	core, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open test db: %v", err)
	}

	cleanup := func() {
		core.Close()
		os.RemoveAll(tmpDir)
	}

	return core, cleanup
}

// testProject returns a blank project with the standard rates but no default
// estimate figures, so tests can hand-compute expectations.
func testProject(constructionYears, operationYears int) *Project {
	p := &Project{
		Name:   "test project",
		Period: Period{ConstructionYears: constructionYears, OperationYears: operationYears},
		Tax: TaxParameters{
			VATOutputRateGeneral:   amt("0.09"),
			VATOutputRateService:   amt("0.06"),
			VATInputRate:           amt("0.13"),
			CityMaintenanceTaxRate: amt("0.07"),
			EducationSurtaxRate:    amt("0.05"),
			IncomeTaxRate:          amt("0.25"),
		},
		Financial: FinancialParameters{
			DiscountRate:       amt("0.06"),
			LossOffsetYears:    5,
			SurplusReserveRate: amt("0.1"),
		},
	}
	p.Results.reset(p.Period.TotalYears())
	return p
}

// assertAmount fails the test if got does not equal the decimal literal want.
func assertAmount(t *testing.T, got Amount, want, msg string) {
	t.Helper()
	w := decimal.RequireFromString(want)
	if !got.Decimal.Equal(w) {
		t.Errorf("%s: got %s, want %s", msg, got.Decimal.String(), want)
	}
}

// assertAmountPtr fails the test if got is nil or does not equal want.
func assertAmountPtr(t *testing.T, got *Amount, want, msg string) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: got nil, want %s", msg, want)
	}
	assertAmount(t, *got, want, msg)
}

// assertNoError fails the test if err is not nil.
func assertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", msg, err)
	}
}

// assertError fails the test if err is nil.
func assertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error but got nil", msg)
	}
}

// assertErrorCode fails the test if err does not carry the given code.
func assertErrorCode(t *testing.T, err error, code ErrorCode, msg string) {
	t.Helper()
	assertError(t, err, msg)
	if !IsErrorCode(err, code) {
		t.Fatalf("%s: got error %v, want code %s", msg, err, code)
	}
}
