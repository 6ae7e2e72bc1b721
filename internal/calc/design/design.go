package design

import (
	capacity "Strata/internal/calc/capacity"
	quantity "Strata/internal/calc/quantity"
	soil "Strata/internal/calc/soil"
)

// Input carries everything the full design pipeline needs. ProjectName is
// only used by downstream consumers (reports, saved designs).
type Input struct {
	ProjectName  string      `json:"project_name"`
	DiameterM    float64     `json:"diameter_m"`
	SafetyFactor float64     `json:"safety_factor"`
	TotalLoadKN  float64     `json:"total_load_kn"`
	Layers       []soil.Spec `json:"layers"`
	ConcreteRate float64     `json:"concrete_rate"`
}

// Summary is the roll-up of one complete design run, the unit that gets
// reported, exported and saved.
type Summary struct {
	ProjectName     string       `json:"project_name"`
	DiameterM       float64      `json:"diameter_m"`
	SafetyFactor    float64      `json:"safety_factor"`
	TotalLoadKN     float64      `json:"total_load_kn"`
	Profile         soil.Profile `json:"soil_layers"`
	AllowableKN     float64      `json:"allowable_kn"`
	PileLengthM     float64      `json:"pile_length_m"`
	PileCount       int          `json:"pile_count"`
	VolumePerPileM3 float64      `json:"volume_per_pile_m3"`
	TotalVolumeM3   float64      `json:"total_volume_m3"`
	TotalCostUSD    float64      `json:"total_cost_usd"`
}

// Build runs capacity → pile count → concrete volume → cost in one pass.
func Build(in Input) (Summary, error) {
	profile, err := soil.NewProfile(soil.DefaultCatalogue(), in.Layers)
	if err != nil {
		return Summary{}, err
	}
	capRes, err := capacity.CalculateProfile(in.DiameterM, in.SafetyFactor, in.TotalLoadKN, profile)
	if err != nil {
		return Summary{}, err
	}
	count := capRes.PileCount
	if count == 0 {
		count, err = capacity.RequiredPileCount(in.TotalLoadKN, capRes.AllowableKN)
		if err != nil {
			return Summary{}, err
		}
	}
	volumePerPile, err := quantity.ConcreteVolume(in.DiameterM, capRes.TotalLengthM)
	if err != nil {
		return Summary{}, err
	}
	totalVolume := soil.Round2(volumePerPile * float64(count))
	totalCost, err := quantity.TotalCost(totalVolume, in.ConcreteRate)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		ProjectName:     in.ProjectName,
		DiameterM:       in.DiameterM,
		SafetyFactor:    in.SafetyFactor,
		TotalLoadKN:     in.TotalLoadKN,
		Profile:         profile,
		AllowableKN:     capRes.AllowableKN,
		PileLengthM:     capRes.TotalLengthM,
		PileCount:       count,
		VolumePerPileM3: volumePerPile,
		TotalVolumeM3:   totalVolume,
		TotalCostUSD:    totalCost,
	}, nil
}
