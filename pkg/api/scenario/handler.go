package scenario

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"om_business_case/pkg/core/model"
	"om_business_case/pkg/core/report"
	coreScenario "om_business_case/pkg/core/scenario"
	"om_business_case/pkg/core/validate"
)

type ComputeRequest struct {
	Inputs   model.FinancialInputs `json:"inputs"`
	Scenario model.ScenarioTag     `json:"scenario"`
}

type ComputeResponse struct {
	AnalysisID string              `json:"analysis_id"`
	Result     coreScenario.Result `json:"result"`
}

type CompareRequest struct {
	Inputs model.FinancialInputs `json:"inputs"`
}

type CompareResponse struct {
	AnalysisID string              `json:"analysis_id"`
	Best       coreScenario.Result `json:"best"`
	Base       coreScenario.Result `json:"base"`
	Worst      coreScenario.Result `json:"worst"`
	Comparison report.Comparison   `json:"comparison"`
}

// HandleCompute runs one scenario for a validated input record.
func HandleCompute(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r); done {
		return
	}

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateTag(req.Scenario); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Inputs(req.Inputs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := ComputeResponse{
		AnalysisID: uuid.New().String(),
		Result:     coreScenario.Calculate(req.Inputs, req.Scenario),
	}
	writeJSON(w, resp)
}

// HandleCompare runs all three scenarios and the side-by-side summary. The
// scenarios are independent, so they run concurrently; each gets its own
// copy of the input record.
func HandleCompare(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r); done {
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Inputs(req.Inputs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var best, base, worst coreScenario.Result
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); best = coreScenario.Calculate(req.Inputs, model.ScenarioBest) }()
	go func() { defer wg.Done(); base = coreScenario.Calculate(req.Inputs, model.ScenarioBase) }()
	go func() { defer wg.Done(); worst = coreScenario.Calculate(req.Inputs, model.ScenarioWorst) }()
	wg.Wait()

	resp := CompareResponse{
		AnalysisID: uuid.New().String(),
		Best:       best,
		Base:       base,
		Worst:      worst,
		Comparison: report.Compare(best, base, worst),
	}
	writeJSON(w, resp)
}

// validateTag rejects unknown tags at the boundary so the core's fail-fast
// panic stays a programming error, never a request error.
func validateTag(tag model.ScenarioTag) error {
	switch tag {
	case model.ScenarioBest, model.ScenarioBase, model.ScenarioWorst:
		return nil
	}
	return fmt.Errorf("unknown scenario %q (expected best, base, or worst)", tag)
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
