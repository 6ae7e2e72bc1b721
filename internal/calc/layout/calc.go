package layout

import (
	"fmt"
	"math"

	soil "Strata/internal/calc/soil"
)

type Input struct {
	PileCount   int     `json:"pile_count"`
	SpacingM    float64 `json:"spacing_m"`
	DiameterM   float64 `json:"diameter_m"`
	AllowableKN float64 `json:"allowable_kn"`
}

type Result struct {
	Rows            int     `json:"rows"`
	Cols            int     `json:"cols"`
	GroupEfficiency float64 `json:"group_efficiency"`
	GroupCapacityKN float64 `json:"group_capacity_kn,omitempty"`
}

// SuggestLayout places n piles on a near-square grid: rows = ceil(sqrt(n)),
// cols = ceil(n/rows). rows*cols >= n always holds.
func SuggestLayout(pileCount int) (rows, cols int, err error) {
	if pileCount <= 0 {
		return 0, 0, fmt.Errorf("%w: non-positive pile count", soil.ErrInvalidInput)
	}
	rows = int(math.Ceil(math.Sqrt(float64(pileCount))))
	cols = int(math.Ceil(float64(pileCount) / float64(rows)))
	return rows, cols, nil
}

// GroupEfficiency penalizes closely spaced piles: rc / (1 + 0.1*s/d), capped
// at rc so a group never outperforms its piles acting independently.
func GroupEfficiency(rows, cols int, spacingM, diameterM float64) (float64, error) {
	if diameterM <= 0 {
		return 0, fmt.Errorf("%w: non-positive diameter", soil.ErrInvalidInput)
	}
	if rows <= 0 || cols <= 0 {
		return 0, fmt.Errorf("%w: non-positive grid dimensions", soil.ErrInvalidInput)
	}
	count := float64(rows * cols)
	ratio := spacingM / diameterM
	raw := count / (1 + 0.1*ratio)
	return soil.Round2(math.Min(raw, count)), nil
}

// Calculate combines layout suggestion and group efficiency. When the
// per-pile allowable capacity is supplied the total group capacity is
// reported too.
func Calculate(in Input) (Result, error) {
	rows, cols, err := SuggestLayout(in.PileCount)
	if err != nil {
		return Result{}, err
	}
	eff, err := GroupEfficiency(rows, cols, in.SpacingM, in.DiameterM)
	if err != nil {
		return Result{}, err
	}
	res := Result{Rows: rows, Cols: cols, GroupEfficiency: eff}
	if in.AllowableKN > 0 {
		res.GroupCapacityKN = soil.Round2(in.AllowableKN * eff)
	}
	return res, nil
}
