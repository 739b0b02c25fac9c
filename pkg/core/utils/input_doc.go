package utils

import (
	"encoding/json"
	"fmt"

	hjson "github.com/hjson/hjson-go/v4"

	"om_business_case/pkg/core/model"
)

// ParseInputsDocument decodes a FinancialInputs record from a document that
// may be strict JSON or HJSON (analysts keep commented assumption files in
// HJSON). Documents pasted out of wikis or chats often arrive wrapped in a
// code fence, so that is stripped first. Strict JSON is tried next; on
// failure the HJSON reader takes over, which also tolerates trailing commas
// and unquoted keys.
func ParseInputsDocument(data []byte) (model.FinancialInputs, error) {
	var in model.FinancialInputs
	data = []byte(TrimCodeFence(string(data)))

	if err := json.Unmarshal(data, &in); err == nil {
		return in, nil
	}

	var loose map[string]interface{}
	if err := hjson.Unmarshal(data, &loose); err != nil {
		return in, fmt.Errorf("input document is neither valid JSON nor HJSON: %w", err)
	}

	// Round-trip through strict JSON so field names and numeric types land
	// on the struct the same way in both paths.
	normalized, err := json.Marshal(loose)
	if err != nil {
		return in, fmt.Errorf("normalizing HJSON document: %w", err)
	}
	if err := json.Unmarshal(normalized, &in); err != nil {
		return in, fmt.Errorf("input document does not match the expected schema: %w", err)
	}
	return in, nil
}
