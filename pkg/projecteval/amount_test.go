package projecteval

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound2TiesAwayFromZero(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2.675", "2.68"},
		{"-2.675", "-2.68"},
		{"2.665", "2.67"},
		{"2.664", "2.66"},
		{"0.005", "0.01"},
		{"-0.005", "-0.01"},
		{"100", "100"},
	}
	for _, tc := range cases {
		got := round2(decimal.RequireFromString(tc.in))
		assertAmount(t, got, tc.want, "round2("+tc.in+")")
	}
}

func TestRoundToFourPlaces(t *testing.T) {
	got := roundTo(decimal.RequireFromString("0.123456"), 4)
	assertAmount(t, got, "0.1235", "roundTo 4 places")

	got = roundTo(decimal.RequireFromString("-0.00005"), 4)
	assertAmount(t, got, "-0.0001", "roundTo negative tie")
}

func TestAmountJSONNumber(t *testing.T) {
	data, err := json.Marshal(amt("12.34"))
	assertNoError(t, err, "marshal amount")
	if string(data) != "12.34" {
		t.Errorf("marshal: got %s, want 12.34", data)
	}

	var a Amount
	assertNoError(t, json.Unmarshal([]byte("56.78"), &a), "unmarshal number")
	assertAmount(t, a, "56.78", "unmarshal number")

	assertNoError(t, json.Unmarshal([]byte(`"90.12"`), &a), "unmarshal string")
	assertAmount(t, a, "90.12", "unmarshal string")
}

func TestAmountSQLRoundTrip(t *testing.T) {
	v, err := amt("5721.185772330424").Value()
	assertNoError(t, err, "value")
	if v != "5721.185772330424" {
		t.Errorf("value: got %v, want exact decimal string", v)
	}

	var a Amount
	assertNoError(t, a.Scan("5721.185772330424"), "scan string")
	assertAmount(t, a, "5721.185772330424", "scan string")

	assertNoError(t, a.Scan(int64(42)), "scan int64")
	assertAmount(t, a, "42", "scan int64")

	assertNoError(t, a.Scan(nil), "scan nil")
	assertAmount(t, a, "0", "scan nil")

	assertError(t, a.Scan("not a number"), "scan garbage")
}
