package capacity

import (
	"fmt"
	"math"

	soil "Strata/internal/calc/soil"
)

// BearingFactor is the bearing capacity factor Nc for saturated clay under
// undrained conditions.
const BearingFactor = 9.0

type Input struct {
	DiameterM    float64     `json:"diameter_m"`
	SafetyFactor float64     `json:"safety_factor"`
	TotalLoadKN  float64     `json:"total_load_kn"`
	Layers       []soil.Spec `json:"layers"`
}

type Result struct {
	PerimeterM      float64 `json:"perimeter_m"`
	BaseAreaM2      float64 `json:"base_area_m2"`
	TotalLengthM    float64 `json:"total_length_m"`
	SkinFrictionKN  float64 `json:"skin_friction_kn"`
	EndBearingKN    float64 `json:"end_bearing_kn"`
	UltimateKN      float64 `json:"ultimate_kn"`
	AllowableKN     float64 `json:"allowable_kn"`
	PileCount       int     `json:"pile_count,omitempty"`
	LoadPerPileKN   float64 `json:"load_per_pile_kn,omitempty"`
}

// Calculate resolves the soil profile with the default cohesion catalogue and
// runs the total-stress capacity method. When TotalLoadKN is positive the
// required pile count is filled in as well.
func Calculate(in Input) (Result, error) {
	profile, err := soil.NewProfile(soil.DefaultCatalogue(), in.Layers)
	if err != nil {
		return Result{}, err
	}
	return CalculateProfile(in.DiameterM, in.SafetyFactor, in.TotalLoadKN, profile)
}

// CalculateProfile is the catalogue-independent entry point: the caller
// supplies an already resolved profile.
//
// Skin friction sums cohesion * perimeter * thickness over all layers; end
// bearing is governed by the last layer. Each returned magnitude is rounded
// to two decimals independently of the others.
func CalculateProfile(diameterM, safetyFactor, totalLoadKN float64, profile soil.Profile) (Result, error) {
	if diameterM <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive diameter", soil.ErrInvalidInput)
	}
	if safetyFactor <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive safety factor", soil.ErrInvalidInput)
	}
	if len(profile) == 0 {
		return Result{}, fmt.Errorf("%w: soil profile is empty", soil.ErrInvalidInput)
	}
	for i, layer := range profile {
		if layer.ThicknessM <= 0 {
			return Result{}, fmt.Errorf("%w: non-positive thickness in layer %d", soil.ErrInvalidInput, i+1)
		}
	}

	perimeter := soil.PiApprox * diameterM
	baseArea := soil.PiApprox * (diameterM / 2) * (diameterM / 2)

	skin := 0.0
	for _, layer := range profile {
		skin += layer.CohesionKPa * perimeter * layer.ThicknessM
	}
	end := profile.Last().CohesionKPa * BearingFactor * baseArea
	ultimate := skin + end
	allowable := soil.Round2(ultimate / safetyFactor)

	res := Result{
		PerimeterM:     soil.Round2(perimeter),
		BaseAreaM2:     soil.Round2(baseArea),
		TotalLengthM:   soil.Round2(profile.TotalLengthM()),
		SkinFrictionKN: soil.Round2(skin),
		EndBearingKN:   soil.Round2(end),
		UltimateKN:     soil.Round2(ultimate),
		AllowableKN:    allowable,
	}

	if totalLoadKN > 0 {
		count, err := RequiredPileCount(totalLoadKN, allowable)
		if err != nil {
			return Result{}, err
		}
		res.PileCount = count
		res.LoadPerPileKN = soil.Round2(totalLoadKN / float64(count))
	}
	return res, nil
}

// RequiredPileCount is deliberately conservative: floor(load/capacity) + 1
// yields strictly more capacity than the load requires even when the division
// is exact (load/capacity = 5.0 gives 6 piles, not 5).
func RequiredPileCount(totalLoadKN, allowableKN float64) (int, error) {
	if allowableKN <= 0 {
		return 0, fmt.Errorf("%w: non-positive allowable capacity", soil.ErrInvalidInput)
	}
	if totalLoadKN <= 0 {
		return 0, fmt.Errorf("%w: non-positive total load", soil.ErrInvalidInput)
	}
	return int(math.Floor(totalLoadKN/allowableKN)) + 1, nil
}
