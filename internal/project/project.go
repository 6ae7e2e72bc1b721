package project

import (
	auth "Strata/internal/auth"
	design "Strata/internal/calc/design"
	soil "Strata/internal/calc/soil"
	repo "Strata/internal/repo"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name   string       `json:"name"`
	Design design.Input `json:"design"`
}

type SaveResponse struct {
	ID      int            `json:"id"`
	Summary design.Summary `json:"summary"`
}

// Dashboard aggregates the user's saved designs the way the original
// dashboard tab did: last-save metrics plus roll-ups across everything saved.
type Dashboard struct {
	DesignCount     int     `json:"design_count"`
	TotalVolumeM3   float64 `json:"total_volume_m3"`
	TotalCostUSD    float64 `json:"total_cost_usd"`
	CheapestDesign  string  `json:"cheapest_design,omitempty"`
	CheapestCostUSD float64 `json:"cheapest_cost_usd,omitempty"`
}

// Save runs the design pipeline and persists the summary under a name.
func (h *ProjectHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		req.Name = "Unnamed Design"
	}

	sum, err := design.Build(req.Design)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.SaveDesign(r.Context(), userID, repo.Design{
		Name:          req.Name,
		DiameterM:     sum.DiameterM,
		SafetyFactor:  sum.SafetyFactor,
		TotalLoadKN:   sum.TotalLoadKN,
		AllowableKN:   sum.AllowableKN,
		PileCount:     sum.PileCount,
		TotalVolumeM3: sum.TotalVolumeM3,
		TotalCostUSD:  sum.TotalCostUSD,
	})
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id, Summary: sum})
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	designs, err := h.Repo.ListDesigns(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if designs == nil {
		designs = []repo.Design{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(designs)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	d, err := h.Repo.GetDesign(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

func (h *ProjectHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	designs, err := h.Repo.ListDesigns(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	dash := Dashboard{DesignCount: len(designs)}
	for i, d := range designs {
		dash.TotalVolumeM3 += d.TotalVolumeM3
		dash.TotalCostUSD += d.TotalCostUSD
		if i == 0 || d.TotalCostUSD < dash.CheapestCostUSD {
			dash.CheapestDesign = d.Name
			dash.CheapestCostUSD = d.TotalCostUSD
		}
	}
	dash.TotalVolumeM3 = soil.Round2(dash.TotalVolumeM3)
	dash.TotalCostUSD = soil.Round2(dash.TotalCostUSD)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dash)
}
