package quantity

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

func TestConcreteVolume(t *testing.T) {
	// 3.14 * 0.3^2 * 10 = 2.826 -> 2.83
	vol, err := ConcreteVolume(0.6, 10)
	if err != nil {
		t.Fatalf("ConcreteVolume: %v", err)
	}
	nearlyEqual(t, "volume", vol, 2.83)
}

func TestConcreteVolume_Invalid(t *testing.T) {
	if _, err := ConcreteVolume(0, 10); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("zero diameter: err = %v, want ErrInvalidInput", err)
	}
	if _, err := ConcreteVolume(0.6, 0); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("zero length: err = %v, want ErrInvalidInput", err)
	}
}

func TestTotalCost_LinearRoundTrip(t *testing.T) {
	vol, err := ConcreteVolume(0.6, 10)
	if err != nil {
		t.Fatalf("ConcreteVolume: %v", err)
	}
	for _, n := range []int{1, 2, 3, 7, 12} {
		cost, err := TotalCost(vol*float64(n), 120)
		if err != nil {
			t.Fatalf("TotalCost(n=%d): %v", n, err)
		}
		nearlyEqual(t, "cost", cost, soil.Round2(vol*float64(n)*120))
	}
}

func TestTotalCost_Invalid(t *testing.T) {
	if _, err := TotalCost(10, 0); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("zero rate: err = %v, want ErrInvalidInput", err)
	}
	if _, err := TotalCost(-1, 120); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("negative volume: err = %v, want ErrInvalidInput", err)
	}
}

func TestBillOfQuantities_Schedule(t *testing.T) {
	res, err := BillOfQuantities(Input{
		PileCount:     4,
		TotalVolumeM3: 10,
		Rates:         Rates{ConcreteRate: 100, RebarRate: 2, LaborRate: 50},
	})
	if err != nil {
		t.Fatalf("BillOfQuantities: %v", err)
	}
	if len(res.Rows) != 5 {
		t.Fatalf("schedule has %d rows, want 5", len(res.Rows))
	}

	wantItems := []string{"Concrete", "Rebar (5%)", "Pile Excavation", "Pile Installation", "Mobilization & Setup"}
	wantUnits := []string{"m³", "kg", "m³", "each", "lump sum"}
	for i, row := range res.Rows {
		if row.Item != wantItems[i] {
			t.Fatalf("row %d item = %q, want %q", i, row.Item, wantItems[i])
		}
		if row.Unit != wantUnits[i] {
			t.Fatalf("row %d unit = %q, want %q", i, row.Unit, wantUnits[i])
		}
		nearlyEqual(t, "row total", row.Total, soil.Round2(row.Qty*row.UnitRate))
	}

	nearlyEqual(t, "concrete total", res.Rows[0].Total, 1000)
	nearlyEqual(t, "rebar qty", res.Rows[1].Qty, 3925) // 10 * 0.05 * 7850
	nearlyEqual(t, "rebar total", res.Rows[1].Total, 7850)
	nearlyEqual(t, "excavation rate", res.Rows[2].UnitRate, 25.0)
	nearlyEqual(t, "excavation total", res.Rows[2].Total, 250)
	nearlyEqual(t, "installation total", res.Rows[3].Total, 200)
	nearlyEqual(t, "mobilization qty", res.Rows[4].Qty, 1)
	nearlyEqual(t, "mobilization rate", res.Rows[4].UnitRate, 1000.0)
	nearlyEqual(t, "grand total", res.GrandTotal, 10300)
}

func TestBillOfQuantities_Invalid(t *testing.T) {
	valid := Input{PileCount: 4, TotalVolumeM3: 10, Rates: Rates{ConcreteRate: 100, RebarRate: 2, LaborRate: 50}}

	in := valid
	in.PileCount = 0
	if _, err := BillOfQuantities(in); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("zero pile count: err = %v, want ErrInvalidInput", err)
	}

	in = valid
	in.TotalVolumeM3 = 0
	if _, err := BillOfQuantities(in); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("zero volume: err = %v, want ErrInvalidInput", err)
	}

	in = valid
	in.Rates.RebarRate = 0
	if _, err := BillOfQuantities(in); !errors.Is(err, soil.ErrInvalidInput) {
		t.Fatalf("zero rebar rate: err = %v, want ErrInvalidInput", err)
	}
}
