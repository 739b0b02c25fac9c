package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"om_business_case/pkg/core/export"
	"om_business_case/pkg/core/model"
	coreReport "om_business_case/pkg/core/report"
	coreScenario "om_business_case/pkg/core/scenario"
	"om_business_case/pkg/core/validate"
)

type BriefRequest struct {
	Inputs model.FinancialInputs `json:"inputs"`
}

type BriefResponse struct {
	AnalysisID string `json:"analysis_id"`
	Markdown   string `json:"markdown"`
}

type CashflowCSVRequest struct {
	Inputs   model.FinancialInputs `json:"inputs"`
	Scenario model.ScenarioTag     `json:"scenario,omitempty"` // defaults to base
}

// HandleExecutiveBrief renders the markdown investment brief for the three
// scenarios of an input record.
func HandleExecutiveBrief(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r); done {
		return
	}

	var req BriefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Inputs(req.Inputs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	best, base, worst := coreScenario.CalculateAll(req.Inputs)
	brief, err := coreReport.ExecutiveBrief(req.Inputs, best, base, worst, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, BriefResponse{AnalysisID: uuid.New().String(), Markdown: brief})
}

// HandleCashflowCSV streams one scenario's year schedule as CSV.
func HandleCashflowCSV(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r); done {
		return
	}

	var req CashflowCSVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Scenario == "" {
		req.Scenario = model.ScenarioBase
	}
	switch req.Scenario {
	case model.ScenarioBest, model.ScenarioBase, model.ScenarioWorst:
	default:
		http.Error(w, fmt.Sprintf("unknown scenario %q", req.Scenario), http.StatusBadRequest)
		return
	}
	if err := validate.Inputs(req.Inputs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := coreScenario.Calculate(req.Inputs, req.Scenario)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_cash_flow.csv", req.Scenario))
	if err := export.WriteYearRecordsCSV(w, result.Years); err != nil {
		fmt.Printf("[API] Failed to stream cash flow CSV: %v\n", err)
	}
}

func applyCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("[API] Failed to encode response: %v\n", err)
	}
}
