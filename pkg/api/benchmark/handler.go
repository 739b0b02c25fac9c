package benchmark

import (
	"encoding/json"
	"fmt"
	"net/http"

	coreBenchmark "om_business_case/pkg/core/benchmark"
)

type ClassifyRequest struct {
	Metric coreBenchmark.MetricKey `json:"metric"`
	Value  float64                 `json:"value"`
}

type ClassifyResponse struct {
	Metric coreBenchmark.MetricKey `json:"metric"`
	Value  float64                 `json:"value"`
	Tier   coreBenchmark.Tier      `json:"tier"`
}

type PositionRequest struct {
	Metric  coreBenchmark.MetricKey `json:"metric"`
	Current float64                 `json:"current"`
	Target  float64                 `json:"target"`
}

// HandleClassify maps one metric value to its industry tier.
func HandleClassify(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r); done {
		return
	}

	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tier, err := coreBenchmark.Classify(req.Metric, req.Value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, ClassifyResponse{Metric: req.Metric, Value: req.Value, Tier: tier})
}

// HandlePosition classifies both ends of a current/target pair.
func HandlePosition(w http.ResponseWriter, r *http.Request) {
	if done := applyCORS(w, r); done {
		return
	}

	var req PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pos, err := coreBenchmark.Position(req.Metric, req.Current, req.Target)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, pos)
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
