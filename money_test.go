package ipoboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"₹49,350", "49350"},
		{"₹1,000", "1000"},
		{"₹0", "0"},
		{"45530.15 Cr", "45530.15"},
		{"₹329 - 136", "329"},
		{"", "0"},
		{"n/a", "0"},
	}
	for _, c := range cases {
		got := ParseAmount(c.in)
		want, _ := decimal.NewFromString(c.want)
		if !got.Equal(want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", c.in, got, want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	got := FormatAmount(decimal.NewFromInt(3500))
	if ParseAmount(got).Cmp(decimal.NewFromInt(3500)) != 0 {
		t.Fatalf("formatted amount %q does not round-trip", got)
	}
	if got == "3500" {
		t.Fatalf("expected currency formatting, got bare number %q", got)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	sum := ParseAmount("₹1,000").Add(ParseAmount("₹2,500"))
	if FormatAmount(sum) != FormatAmount(decimal.NewFromInt(3500)) {
		t.Fatalf("sum %s not canonically formatted", FormatAmount(sum))
	}
}
