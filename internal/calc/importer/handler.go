package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	capacity "Strata/internal/calc/capacity"
	soil "Strata/internal/calc/soil"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type CapacityImportResult struct {
	Count   int               `json:"count"`
	Results []capacity.Result `json:"results"`
}

// Capacity reads capacity inputs from an uploaded spreadsheet, one design per
// row, and runs them all. Rows that fail to parse or calculate are skipped.
func (h *Handler) Capacity(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []capacity.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseCapacityRow(rows[i])
		if err != nil {
			continue
		}
		res, err := capacity.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CapacityImportResult{Count: len(results), Results: results})
}

// expected: diameter_m, safety_factor, total_load_kn, then up to three
// soil_type/thickness_m pairs
func parseCapacityRow(row []string) (capacity.Input, error) {
	if len(row) < 5 {
		return capacity.Input{}, fmt.Errorf("bad row")
	}
	diameter, err := toFloat(row[0])
	if err != nil {
		return capacity.Input{}, err
	}
	sf, err := toFloat(row[1])
	if err != nil {
		return capacity.Input{}, err
	}
	load, err := toFloat(row[2])
	if err != nil {
		return capacity.Input{}, err
	}
	var layers []soil.Spec
	for c := 3; c+1 < len(row); c += 2 {
		if row[c] == "" || row[c+1] == "" {
			break
		}
		thickness, err := toFloat(row[c+1])
		if err != nil {
			return capacity.Input{}, err
		}
		layers = append(layers, soil.Spec{Type: soil.Type(row[c]), ThicknessM: thickness})
	}
	return capacity.Input{
		DiameterM:    diameter,
		SafetyFactor: sf,
		TotalLoadKN:  load,
		Layers:       layers,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
