package utils

import (
	"testing"
)

func TestTrimCodeFence(t *testing.T) {
	fenced := "```markdown\n## Brief\n\nBody text.\n```"
	got := TrimCodeFence(fenced)
	if got != "## Brief\n\nBody text." {
		t.Errorf("Unexpected trim result: %q", got)
	}

	plain := "## Brief\n\nBody text."
	if TrimCodeFence(plain) != plain {
		t.Error("Unfenced input should pass through unchanged")
	}
}

func TestIsValidMarkdown(t *testing.T) {
	if !IsValidMarkdown("## Heading\n\nSome paragraph.") {
		t.Error("Plain markdown should validate")
	}
	if IsValidMarkdown("") {
		t.Error("Empty document should not validate")
	}
}

func TestParseInputsDocumentJSON(t *testing.T) {
	doc := `{"annual_order_volume": 50000, "average_order_value": 2500, "wacc": 0.08, "time_horizon": 5}`

	in, err := ParseInputsDocument([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if in.AnnualOrderVolume != 50000 || in.AverageOrderValue != 2500 {
		t.Errorf("JSON fields not mapped: %+v", in)
	}
	if in.WACC != 0.08 || in.TimeHorizon != 5 {
		t.Errorf("JSON fields not mapped: %+v", in)
	}
}

func TestParseInputsDocumentHJSON(t *testing.T) {
	// HJSON: comments, unquoted keys, trailing commas
	doc := `{
		# planning assumptions for FY26
		annual_order_volume: 50000
		average_order_value: 2500
		current_dso: 45
		target_dso: 35
		wacc: 0.08
	}`

	in, err := ParseInputsDocument([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if in.AnnualOrderVolume != 50000 || in.CurrentDSO != 45 || in.TargetDSO != 35 {
		t.Errorf("HJSON fields not mapped: %+v", in)
	}
}

func TestParseInputsDocumentStripsCodeFence(t *testing.T) {
	// Assumption documents pasted out of a wiki page keep their fence
	doc := "```json\n{\"annual_order_volume\": 50000, \"current_dso\": 45}\n```"

	in, err := ParseInputsDocument([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if in.AnnualOrderVolume != 50000 || in.CurrentDSO != 45 {
		t.Errorf("Fenced document not mapped: %+v", in)
	}
}

func TestParseInputsDocumentRejectsGarbage(t *testing.T) {
	if _, err := ParseInputsDocument([]byte("<<not a document>>")); err == nil {
		t.Error("Expected an error for an unparseable document")
	}
}
