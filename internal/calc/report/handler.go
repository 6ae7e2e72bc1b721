package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	design "Strata/internal/calc/design"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Author string       `json:"author"`
	Title  string       `json:"title"`
	Design design.Input `json:"design"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Pile Foundation Design Report"
	}
	sum, err := design.Build(input.Design)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	name := sum.ProjectName
	if name == "" {
		name = "Unnamed"
	}
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", name))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Soil Layers")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, layer := range sum.Profile {
		pdf.Cell(0, 6, fmt.Sprintf("Layer %d: %s, %.2f m, Cohesion: %.0f kPa",
			i+1, layer.Type, layer.ThicknessM, layer.CohesionKPa))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Allowable Load per Pile: %.2f kN", sum.AllowableKN),
		fmt.Sprintf("Total Pile Length: %.2f m", sum.PileLengthM),
		fmt.Sprintf("Required Number of Piles: %d", sum.PileCount),
		fmt.Sprintf("Concrete Volume per Pile: %.2f m³", sum.VolumePerPileM3),
		fmt.Sprintf("Total Concrete Volume: %.2f m³", sum.TotalVolumeM3),
		fmt.Sprintf("Estimated Total Cost: $%.2f", sum.TotalCostUSD),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"foundation_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
