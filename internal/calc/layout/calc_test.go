package layout

import (
	"errors"
	"math"
	"testing"

	soil "Strata/internal/calc/soil"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestSuggestLayout_PerfectSquares(t *testing.T) {
	for k := 1; k <= 6; k++ {
		rows, cols, err := SuggestLayout(k * k)
		if err != nil {
			t.Fatalf("SuggestLayout(%d): %v", k*k, err)
		}
		if rows != k || cols != k {
			t.Fatalf("SuggestLayout(%d) = %dx%d, want %dx%d", k*k, rows, cols, k, k)
		}
	}
}

func TestSuggestLayout_CoversPileCount(t *testing.T) {
	for n := 1; n <= 60; n++ {
		rows, cols, err := SuggestLayout(n)
		if err != nil {
			t.Fatalf("SuggestLayout(%d): %v", n, err)
		}
		if rows*cols < n {
			t.Fatalf("SuggestLayout(%d) = %dx%d, grid too small", n, rows, cols)
		}
		if rows < cols {
			t.Fatalf("SuggestLayout(%d) = %dx%d, rows should not be fewer than cols", n, rows, cols)
		}
	}
}

func TestSuggestLayout_Invalid(t *testing.T) {
	if _, _, err := SuggestLayout(0); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGroupEfficiency_Value(t *testing.T) {
	// 2x2 grid, spacing 2.5 m, diameter 0.6 m:
	// ratio = 4.1667, 4 / (1 + 0.41667) = 2.8235 -> 2.82
	eff, err := GroupEfficiency(2, 2, 2.5, 0.6)
	if err != nil {
		t.Fatalf("GroupEfficiency: %v", err)
	}
	nearlyEqual(t, "efficiency", eff, 2.82)
}

func TestGroupEfficiency_CappedByPileCount(t *testing.T) {
	for _, spacing := range []float64{0, 0.5, 1, 2.5, 5, 10} {
		eff, err := GroupEfficiency(3, 4, spacing, 0.6)
		if err != nil {
			t.Fatalf("GroupEfficiency(spacing=%v): %v", spacing, err)
		}
		if eff > 12 {
			t.Fatalf("efficiency %v exceeds pile count 12 at spacing %v", eff, spacing)
		}
		if eff <= 0 {
			t.Fatalf("efficiency %v not positive at spacing %v", eff, spacing)
		}
	}
}

func TestGroupEfficiency_DecreasesWithSpacing(t *testing.T) {
	prev := math.MaxFloat64
	for _, spacing := range []float64{1, 2, 3, 4, 5} {
		eff, err := GroupEfficiency(3, 3, spacing, 0.6)
		if err != nil {
			t.Fatalf("GroupEfficiency(spacing=%v): %v", spacing, err)
		}
		if eff >= prev {
			t.Fatalf("efficiency did not decrease: %v -> %v at spacing %v", prev, eff, spacing)
		}
		prev = eff
	}
}

func TestGroupEfficiency_Invalid(t *testing.T) {
	if _, err := GroupEfficiency(2, 2, 2.5, 0); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("zero diameter: err = %v, want ErrInvalidInput", err)
	}
	if _, err := GroupEfficiency(0, 2, 2.5, 0.6); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("zero rows: err = %v, want ErrInvalidInput", err)
	}
}

func TestCalculate_GroupCapacity(t *testing.T) {
	res, err := Calculate(Input{PileCount: 3, SpacingM: 2.5, DiameterM: 0.6, AllowableKN: 427.67})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.Rows != 2 || res.Cols != 2 {
		t.Fatalf("layout = %dx%d, want 2x2", res.Rows, res.Cols)
	}
	nearlyEqual(t, "efficiency", res.GroupEfficiency, 2.82)
	nearlyEqual(t, "group capacity", res.GroupCapacityKN, soil.Round2(427.67*2.82))
}
