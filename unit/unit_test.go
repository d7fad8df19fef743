// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"rectlayout.org/unit"
)

func TestMetric_DpToPx(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}

	{
		exp := unit.Dp(5)
		got := m.PxToDp(m.Dp(5))
		if got != exp {
			t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		var zero unit.Metric
		if got := zero.Px(unit.Dp(7)); got != 7 {
			t.Errorf("zero Metric should treat dp as px, got %v", got)
		}
	}

	{
		sum := unit.Add(m, unit.Dp(5), unit.Px(3))
		if exp := unit.Px(13); sum != exp {
			t.Errorf("Add mismatch %v != %v", exp, sum)
		}
	}
}

func TestParse(t *testing.T) {
	tests := map[string]struct {
		in   string
		want unit.Value
		err  bool
	}{
		"bare number":  {in: "10", want: unit.Px(10)},
		"pixels":       {in: "2.5px", want: unit.Px(2.5)},
		"dps":          {in: "8dp", want: unit.Dp(8)},
		"empty":        {in: "", err: true},
		"unknown unit": {in: "3sp", err: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := unit.Parse(tt.in)
			if tt.err {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
