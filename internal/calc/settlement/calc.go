package settlement

import (
	"fmt"

	soil "Strata/internal/calc/soil"
)

// Load fractions at which the load-settlement curve is sampled.
var curveFractions = [5]float64{0.2, 0.4, 0.6, 0.8, 1.0}

type Input struct {
	LoadKN         float64 `json:"load_kn"`
	PileLengthM    float64 `json:"pile_length_m"`
	DiameterM      float64 `json:"diameter_m"`
	SoilModulusKPa float64 `json:"soil_modulus_kpa"`
}

type Result struct {
	SettlementMM float64 `json:"settlement_mm"`
}

type CurvePoint struct {
	LoadKN       float64 `json:"load_kn"`
	SettlementMM float64 `json:"settlement_mm"`
}

// Calculate estimates elastic settlement: S = Q*L / (A*Es*1000) meters,
// converted to millimeters and rounded to two decimals.
func Calculate(in Input) (Result, error) {
	area := soil.PiApprox * (in.DiameterM / 2) * (in.DiameterM / 2)
	if area <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive pile base area", soil.ErrInvalidInput)
	}
	if in.SoilModulusKPa <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive soil modulus", soil.ErrInvalidInput)
	}
	if in.LoadKN <= 0 || in.PileLengthM <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive load or pile length", soil.ErrInvalidInput)
	}
	meters := (in.LoadKN * in.PileLengthM) / (area * in.SoilModulusKPa * 1000)
	return Result{SettlementMM: soil.Round2(meters * 1000)}, nil
}

// Curve evaluates the settlement formula at five load fractions of the
// reference load. Each point is an independent call, no interpolation.
func Curve(in Input) ([]CurvePoint, error) {
	points := make([]CurvePoint, 0, len(curveFractions))
	for _, f := range curveFractions {
		partial := in
		partial.LoadKN = in.LoadKN * f
		res, err := Calculate(partial)
		if err != nil {
			return nil, err
		}
		points = append(points, CurvePoint{LoadKN: partial.LoadKN, SettlementMM: res.SettlementMM})
	}
	return points, nil
}
