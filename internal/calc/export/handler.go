package export

import (
	"encoding/json"
	"fmt"
	"net/http"

	design "Strata/internal/calc/design"
	quantity "Strata/internal/calc/quantity"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type Input struct {
	Design design.Input   `json:"design"`
	Rates  quantity.Rates `json:"rates"`
}

// Xlsx runs the full design pipeline and streams a workbook with a summary
// sheet and the bill of quantities.
func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	sum, err := design.Build(input.Design)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	boq, err := quantity.BillOfQuantities(quantity.Input{
		PileCount:     sum.PileCount,
		TotalVolumeM3: sum.TotalVolumeM3,
		Rates:         input.Rates,
	})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Pile Summary"
	f.SetSheetName("Sheet1", summarySheet)
	f.SetCellValue(summarySheet, "A1", "Item")
	f.SetCellValue(summarySheet, "B1", "Value")
	items := []struct {
		name  string
		value any
	}{
		{"Pile Diameter (m)", sum.DiameterM},
		{"Pile Length (m)", sum.PileLengthM},
		{"Allowable Load per Pile (kN)", sum.AllowableKN},
		{"Required Number of Piles", sum.PileCount},
		{"Concrete Volume per Pile (m³)", sum.VolumePerPileM3},
		{"Total Concrete Volume (m³)", sum.TotalVolumeM3},
		{"Estimated Total Cost (USD)", sum.TotalCostUSD},
	}
	for i, item := range items {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+2), item.name)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+2), item.value)
	}

	boqSheet := "BOQ"
	if _, err := f.NewSheet(boqSheet); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	headers := []string{"Item", "Unit", "Qty", "Unit Rate", "Total"}
	for i, hname := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(boqSheet, cell, hname)
	}
	for i, row := range boq.Rows {
		f.SetCellValue(boqSheet, fmt.Sprintf("A%d", i+2), row.Item)
		f.SetCellValue(boqSheet, fmt.Sprintf("B%d", i+2), row.Unit)
		f.SetCellValue(boqSheet, fmt.Sprintf("C%d", i+2), row.Qty)
		f.SetCellValue(boqSheet, fmt.Sprintf("D%d", i+2), row.UnitRate)
		f.SetCellValue(boqSheet, fmt.Sprintf("E%d", i+2), row.Total)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pile_summary.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
