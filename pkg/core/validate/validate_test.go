package validate

import (
	"strings"
	"testing"

	"om_business_case/pkg/core/model"
)

func TestDefaultInputsAreValid(t *testing.T) {
	if err := Inputs(model.DefaultInputs()); err != nil {
		t.Errorf("Default inputs should validate, got: %v", err)
	}
}

func TestRejectsZeroCycleTime(t *testing.T) {
	in := model.DefaultInputs()
	in.CurrentCycleTime = 0

	err := Inputs(in)
	if err == nil {
		t.Fatal("Expected an error for zero current cycle time")
	}
	if !strings.Contains(err.Error(), "current_cycle_time") {
		t.Errorf("Error should name the field, got: %v", err)
	}
}

func TestRejectsOutOfRangeFractions(t *testing.T) {
	in := model.DefaultInputs()
	in.ProfitMargin = 1.5
	in.CurrentSTPRate = -0.1

	err := Inputs(in)
	if err == nil {
		t.Fatal("Expected an error for out-of-range fractions")
	}
	if !strings.Contains(err.Error(), "profit_margin") || !strings.Contains(err.Error(), "current_stp_rate") {
		t.Errorf("Error should list every violation, got: %v", err)
	}
}

func TestRejectsBadHorizon(t *testing.T) {
	in := model.DefaultInputs()
	in.TimeHorizon = 2
	if Inputs(in) == nil {
		t.Error("Horizon below 3 years should be rejected")
	}

	in.TimeHorizon = 11
	if Inputs(in) == nil {
		t.Error("Horizon above 10 years should be rejected")
	}

	in.TimeHorizon = 10
	if err := Inputs(in); err != nil {
		t.Errorf("Horizon of exactly 10 years should pass, got: %v", err)
	}
}

func TestRejectsNegativeVolume(t *testing.T) {
	in := model.DefaultInputs()
	in.AnnualOrderVolume = -5
	if Inputs(in) == nil {
		t.Error("Negative order volume should be rejected")
	}
}

func TestZeroInvestmentIsAllowed(t *testing.T) {
	// ROI is defined as 0 for zero investment; validation must not block it
	in := model.DefaultInputs()
	in.InitialInvestment = 0
	in.AnnualMaintenance = 0
	in.ChangeManagementCost = 0
	in.IntegrationCost = 0

	if err := Inputs(in); err != nil {
		t.Errorf("Zero investment should validate, got: %v", err)
	}
}
