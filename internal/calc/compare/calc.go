package compare

import (
	"fmt"
	"math"

	capacity "Strata/internal/calc/capacity"
	quantity "Strata/internal/calc/quantity"
	soil "Strata/internal/calc/soil"
)

// Design is one side of a comparison. Comparison mode deliberately uses a
// single shared cohesion value instead of a full soil profile: it exists for
// quick what-if runs where the stratigraphy is held constant.
type Design struct {
	DiameterM    float64 `json:"diameter_m"`
	LengthM      float64 `json:"length_m"`
	SafetyFactor float64 `json:"safety_factor"`
}

type Input struct {
	DesignA      Design  `json:"design_a"`
	DesignB      Design  `json:"design_b"`
	TotalLoadKN  float64 `json:"total_load_kn"`
	CohesionKPa  float64 `json:"cohesion_kpa"`
	ConcreteRate float64 `json:"concrete_rate"`
}

type Metrics struct {
	AllowableKN     float64 `json:"allowable_kn"`
	PileCount       int     `json:"pile_count"`
	VolumePerPileM3 float64 `json:"volume_per_pile_m3"`
	TotalCostUSD    float64 `json:"total_cost_usd"`
}

type Result struct {
	A Metrics `json:"a"`
	B Metrics `json:"b"`
}

// Calculate runs the capacity→count→volume→cost pipeline for both designs.
// The two sides share no state and are evaluated independently.
func Calculate(in Input) (Result, error) {
	if in.TotalLoadKN <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive total load", soil.ErrInvalidInput)
	}
	if in.CohesionKPa <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive cohesion", soil.ErrInvalidInput)
	}
	a, err := summarize(in.DesignA, in.TotalLoadKN, in.CohesionKPa, in.ConcreteRate)
	if err != nil {
		return Result{}, err
	}
	b, err := summarize(in.DesignB, in.TotalLoadKN, in.CohesionKPa, in.ConcreteRate)
	if err != nil {
		return Result{}, err
	}
	return Result{A: a, B: b}, nil
}

func summarize(d Design, loadKN, cohesionKPa, ratePerM3 float64) (Metrics, error) {
	if d.DiameterM <= 0 || d.LengthM <= 0 || d.SafetyFactor <= 0 {
		return Metrics{}, fmt.Errorf("%w: non-positive design parameter", soil.ErrInvalidInput)
	}
	perimeter := soil.PiApprox * d.DiameterM
	skin := cohesionKPa * perimeter * d.LengthM
	base := cohesionKPa * capacity.BearingFactor * (soil.PiApprox * (d.DiameterM / 2) * (d.DiameterM / 2))
	allowable := (skin + base) / d.SafetyFactor

	// The count is taken from the unrounded capacity; the displayed value is
	// rounded afterwards. Summary reports produced this way historically.
	piles := int(math.Floor(loadKN/allowable)) + 1

	volume, err := quantity.ConcreteVolume(d.DiameterM, d.LengthM)
	if err != nil {
		return Metrics{}, err
	}
	cost, err := quantity.TotalCost(volume*float64(piles), ratePerM3)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		AllowableKN:     soil.Round2(allowable),
		PileCount:       piles,
		VolumePerPileM3: volume,
		TotalCostUSD:    cost,
	}, nil
}
