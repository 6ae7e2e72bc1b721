package soil

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is the single error kind returned by the calculators for
// any precondition violation. Handlers map it to HTTP 400.
var ErrInvalidInput = errors.New("invalid input")

// PiApprox is the fixed approximation of pi used in every geometric formula.
// Reports generated before this service existed were produced with 3.14, so
// the value is kept as-is for reproducible numbers.
const PiApprox = 3.14

// Round2 rounds to two decimal places. Every returned magnitude goes through
// it independently.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

type Type string

const (
	SoftClay   Type = "Soft Clay"
	MediumClay Type = "Medium Clay"
	StiffClay  Type = "Stiff Clay"
	LooseSand  Type = "Loose Sand"
	DenseSand  Type = "Dense Sand"
)

// Catalogue maps a soil type to its undrained cohesion in kPa.
type Catalogue map[Type]float64

// DefaultCatalogue returns the standard cohesion table. Sands carry zero
// cohesion: under this total-stress model they contribute neither skin
// friction nor end bearing. A fresh map is returned on every call so callers
// cannot mutate the defaults.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		SoftClay:   25,
		MediumClay: 50,
		StiffClay:  75,
		LooseSand:  0,
		DenseSand:  0,
	}
}

// Spec is the wire form of a layer: the cohesion is derived from the type.
type Spec struct {
	Type       Type    `json:"type"`
	ThicknessM float64 `json:"thickness_m"`
}

type Layer struct {
	Type        Type    `json:"type"`
	CohesionKPa float64 `json:"cohesion_kpa"`
	ThicknessM  float64 `json:"thickness_m"`
}

// Profile is an ordered stack of layers, top to bottom. The last layer
// governs end bearing.
type Profile []Layer

// NewProfile resolves layer specs against a catalogue. Unknown soil types and
// non-positive thicknesses are rejected; an empty spec list is rejected here
// rather than surfacing later as a stray index or division error.
func NewProfile(cat Catalogue, specs []Spec) (Profile, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: soil profile is empty", ErrInvalidInput)
	}
	profile := make(Profile, 0, len(specs))
	for i, s := range specs {
		cohesion, ok := cat[s.Type]
		if !ok {
			return nil, fmt.Errorf("%w: unknown soil type %q in layer %d", ErrInvalidInput, s.Type, i+1)
		}
		if s.ThicknessM <= 0 {
			return nil, fmt.Errorf("%w: non-positive thickness in layer %d", ErrInvalidInput, i+1)
		}
		profile = append(profile, Layer{Type: s.Type, CohesionKPa: cohesion, ThicknessM: s.ThicknessM})
	}
	return profile, nil
}

// TotalLengthM is the pile embedment length implied by the profile.
func (p Profile) TotalLengthM() float64 {
	total := 0.0
	for _, l := range p {
		total += l.ThicknessM
	}
	return total
}

// Last returns the deepest layer.
func (p Profile) Last() Layer {
	return p[len(p)-1]
}
