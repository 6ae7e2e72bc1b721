package capacity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerCalc_OK(t *testing.T) {
	body := `{
		"diameter_m": 0.6,
		"safety_factor": 2.5,
		"total_load_kn": 1000,
		"layers": [{"type": "Medium Clay", "thickness_m": 10}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/tools/capacity/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.AllowableKN != 427.67 {
		t.Fatalf("allowable = %v, want 427.67", res.AllowableKN)
	}
	if res.PileCount != 3 {
		t.Fatalf("pile count = %d, want 3", res.PileCount)
	}
}

func TestHandlerCalc_BadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/capacity/calc", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerCalc_InvalidInput(t *testing.T) {
	body := `{"diameter_m": 0.6, "safety_factor": 2.5, "layers": []}`
	req := httptest.NewRequest(http.MethodPost, "/tools/capacity/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
