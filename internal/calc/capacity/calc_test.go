package capacity

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

func mediumClayInput(loadKN float64) Input {
	return Input{
		DiameterM:    0.6,
		SafetyFactor: 2.5,
		TotalLoadKN:  loadKN,
		Layers:       []soil.Spec{{Type: soil.MediumClay, ThicknessM: 10}},
	}
}

func TestCalculate_MediumClayScenario(t *testing.T) {
	res, err := Calculate(mediumClayInput(1000))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	nearlyEqual(t, "perimeter", res.PerimeterM, 1.88)
	nearlyEqual(t, "base area", res.BaseAreaM2, 0.28)
	nearlyEqual(t, "total length", res.TotalLengthM, 10)
	nearlyEqual(t, "skin friction", res.SkinFrictionKN, 942.0)
	nearlyEqual(t, "end bearing", res.EndBearingKN, 127.17)
	nearlyEqual(t, "ultimate", res.UltimateKN, 1069.17)
	nearlyEqual(t, "allowable", res.AllowableKN, 427.67)
	if res.PileCount != 3 {
		t.Fatalf("pile count = %d, want 3", res.PileCount)
	}
}

func TestCalculate_MultiLayerSkinSum(t *testing.T) {
	res, err := Calculate(Input{
		DiameterM:    0.5,
		SafetyFactor: 2,
		Layers: []soil.Spec{
			{Type: soil.SoftClay, ThicknessM: 4},
			{Type: soil.StiffClay, ThicknessM: 6},
		},
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	perimeter := 3.14 * 0.5
	skin := 25*perimeter*4 + 75*perimeter*6
	end := 75 * 9 * 3.14 * 0.25 * 0.25
	nearlyEqual(t, "skin friction", res.SkinFrictionKN, soil.Round2(skin))
	nearlyEqual(t, "end bearing", res.EndBearingKN, soil.Round2(end))
	nearlyEqual(t, "allowable", res.AllowableKN, soil.Round2((skin+end)/2))
}

func TestCalculate_SingleLayerFormula(t *testing.T) {
	cases := []struct {
		diameter, sf, cohesion, thickness float64
		typ                               soil.Type
	}{
		{0.3, 2, 25, 5, soil.SoftClay},
		{0.6, 2.5, 50, 10, soil.MediumClay},
		{1.2, 3, 75, 18, soil.StiffClay},
	}
	for _, c := range cases {
		res, err := Calculate(Input{
			DiameterM:    c.diameter,
			SafetyFactor: c.sf,
			Layers:       []soil.Spec{{Type: c.typ, ThicknessM: c.thickness}},
		})
		if err != nil {
			t.Fatalf("Calculate(%v): %v", c, err)
		}
		want := soil.Round2((c.cohesion*3.14*c.diameter*c.thickness +
			c.cohesion*9*3.14*(c.diameter/2)*(c.diameter/2)) / c.sf)
		nearlyEqual(t, "allowable", res.AllowableKN, want)
	}
}

func TestCalculate_SandOnlyProfileHasNoCapacity(t *testing.T) {
	res, err := Calculate(Input{
		DiameterM:    0.6,
		SafetyFactor: 2.5,
		Layers:       []soil.Spec{{Type: soil.DenseSand, ThicknessM: 10}},
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	nearlyEqual(t, "skin friction", res.SkinFrictionKN, 0)
	nearlyEqual(t, "end bearing", res.EndBearingKN, 0)
	nearlyEqual(t, "allowable", res.AllowableKN, 0)

	// Asking for a pile count against zero capacity must fail, not divide.
	_, err = Calculate(Input{
		DiameterM:    0.6,
		SafetyFactor: 2.5,
		TotalLoadKN:  1000,
		Layers:       []soil.Spec{{Type: soil.DenseSand, ThicknessM: 10}},
	})
	if !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCalculate_InvalidInputs(t *testing.T) {
	cases := map[string]Input{
		"zero diameter":       {DiameterM: 0, SafetyFactor: 2.5, Layers: []soil.Spec{{Type: soil.SoftClay, ThicknessM: 5}}},
		"negative diameter":   {DiameterM: -0.6, SafetyFactor: 2.5, Layers: []soil.Spec{{Type: soil.SoftClay, ThicknessM: 5}}},
		"zero safety factor":  {DiameterM: 0.6, SafetyFactor: 0, Layers: []soil.Spec{{Type: soil.SoftClay, ThicknessM: 5}}},
		"empty profile":       {DiameterM: 0.6, SafetyFactor: 2.5},
		"zero thickness":      {DiameterM: 0.6, SafetyFactor: 2.5, Layers: []soil.Spec{{Type: soil.SoftClay, ThicknessM: 0}}},
	}
	for name, in := range cases {
		if _, err := Calculate(in); !errors.Is(err, soil.ErrInvalidInput) {
			t.Fatalf("%s: err = %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestRequiredPileCount_ConservativeOnExactDivision(t *testing.T) {
	// 1000/500 divides exactly; the count is still one more than the quotient.
	count, err := RequiredPileCount(1000, 500)
	if err != nil {
		t.Fatalf("RequiredPileCount: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestRequiredPileCount_Properties(t *testing.T) {
	load := 1000.0
	prev := math.MaxInt
	for _, allowable := range []float64{100, 250, 427.67, 500, 804.47, 2000} {
		count, err := RequiredPileCount(load, allowable)
		if err != nil {
			t.Fatalf("RequiredPileCount(%v): %v", allowable, err)
		}
		if count > prev {
			t.Fatalf("count increased from %d to %d as capacity grew to %v", prev, count, allowable)
		}
		if float64(count)*allowable < load {
			t.Fatalf("count %d * capacity %v < load %v", count, allowable, load)
		}
		prev = count
	}
}

func TestRequiredPileCount_Invalid(t *testing.T) {
	if _, err := RequiredPileCount(1000, 0); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("zero capacity: err = %v, want ErrInvalidInput", err)
	}
	if _, err := RequiredPileCount(0, 500); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("zero load: err = %v, want ErrInvalidInput", err)
	}
}
