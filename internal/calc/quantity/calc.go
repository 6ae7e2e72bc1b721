package quantity

import (
	"fmt"

	soil "Strata/internal/calc/soil"
)

// Fixed parts of the bill of quantities schedule.
const (
	RebarFraction      = 0.05 // rebar mass estimated at 5% of concrete volume
	SteelDensityKgM3   = 7850.0
	ExcavationRate     = 25.0   // per m³
	MobilizationCharge = 1000.0 // one-off lump sum
)

// Rates are the user-configurable unit rates of the schedule.
type Rates struct {
	ConcreteRate float64 `json:"concrete_rate"`
	RebarRate    float64 `json:"rebar_rate"`
	LaborRate    float64 `json:"labor_rate"`
}

type Row struct {
	Item     string  `json:"item"`
	Unit     string  `json:"unit"`
	Qty      float64 `json:"qty"`
	UnitRate float64 `json:"unit_rate"`
	Total    float64 `json:"total"`
}

type Input struct {
	PileCount     int     `json:"pile_count"`
	TotalVolumeM3 float64 `json:"total_volume_m3"`
	Rates         Rates   `json:"rates"`
}

type Result struct {
	Rows      []Row   `json:"rows"`
	GrandTotal float64 `json:"grand_total"`
}

// ConcreteVolume is the volume of one pile shaft, rounded to two decimals.
func ConcreteVolume(diameterM, lengthM float64) (float64, error) {
	if diameterM <= 0 || lengthM <= 0 {
		return 0, fmt.Errorf("%w: non-positive diameter or length", soil.ErrInvalidInput)
	}
	return soil.Round2(soil.PiApprox * (diameterM / 2) * (diameterM / 2) * lengthM), nil
}

// TotalCost prices a volume at a unit rate, rounded to two decimals.
func TotalCost(volumeM3, ratePerM3 float64) (float64, error) {
	if ratePerM3 <= 0 {
		return 0, fmt.Errorf("%w: non-positive unit rate", soil.ErrInvalidInput)
	}
	if volumeM3 < 0 {
		return 0, fmt.Errorf("%w: negative volume", soil.ErrInvalidInput)
	}
	return soil.Round2(volumeM3 * ratePerM3), nil
}

// BillOfQuantities builds the fixed five-row schedule: concrete, rebar,
// excavation, installation, mobilization. Excavation and mobilization carry
// fixed rates; the remaining rates come from the caller.
func BillOfQuantities(in Input) (Result, error) {
	if in.PileCount <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive pile count", soil.ErrInvalidInput)
	}
	if in.TotalVolumeM3 <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive concrete volume", soil.ErrInvalidInput)
	}
	if in.Rates.ConcreteRate <= 0 || in.Rates.RebarRate <= 0 || in.Rates.LaborRate <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive unit rate", soil.ErrInvalidInput)
	}

	rebarKg := soil.Round2(in.TotalVolumeM3 * RebarFraction * SteelDensityKgM3)
	rows := []Row{
		{Item: "Concrete", Unit: "m³", Qty: in.TotalVolumeM3, UnitRate: in.Rates.ConcreteRate},
		{Item: "Rebar (5%)", Unit: "kg", Qty: rebarKg, UnitRate: in.Rates.RebarRate},
		{Item: "Pile Excavation", Unit: "m³", Qty: in.TotalVolumeM3, UnitRate: ExcavationRate},
		{Item: "Pile Installation", Unit: "each", Qty: float64(in.PileCount), UnitRate: in.Rates.LaborRate},
		{Item: "Mobilization & Setup", Unit: "lump sum", Qty: 1, UnitRate: MobilizationCharge},
	}
	grand := 0.0
	for i := range rows {
		rows[i].Total = soil.Round2(rows[i].Qty * rows[i].UnitRate)
		grand += rows[i].Total
	}
	return Result{Rows: rows, GrandTotal: soil.Round2(grand)}, nil
}
