// Package validate enforces the input invariants at the system boundary.
// The engine itself assumes validated inputs and never re-checks; callers
// (API handlers, CLI) reject bad records here before any calculation runs.
package validate

import (
	"fmt"
	"strings"

	"om_business_case/pkg/core/model"
)

// Horizon bounds in whole years. The ramp needs three build-out years; the
// steady-state growth assumption is not credible past a decade.
const (
	MinTimeHorizon = 3
	MaxTimeHorizon = 10
)

// Inputs checks every invariant on the record and reports all violations in
// a single error, so a caller fixing a form sees the full list at once.
// Returns nil when the record is valid.
func Inputs(in model.FinancialInputs) error {
	var problems []string

	checkPositive := func(name string, v float64) {
		if v <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be > 0 (got %g)", name, v))
		}
	}
	checkFraction := func(name string, v float64) {
		if v < 0 || v > 1 {
			problems = append(problems, fmt.Sprintf("%s must be within [0,1] (got %g)", name, v))
		}
	}
	checkNonNegative := func(name string, v float64) {
		if v < 0 {
			problems = append(problems, fmt.Sprintf("%s must be >= 0 (got %g)", name, v))
		}
	}

	if in.AnnualOrderVolume <= 0 {
		problems = append(problems, fmt.Sprintf("annual_order_volume must be > 0 (got %d)", in.AnnualOrderVolume))
	}
	checkPositive("average_order_value", in.AverageOrderValue)
	checkFraction("profit_margin", in.ProfitMargin)

	checkPositive("current_dso", in.CurrentDSO)
	checkPositive("target_dso", in.TargetDSO)
	checkFraction("current_perfect_order_rate", in.CurrentPerfectOrderRate)
	checkFraction("target_perfect_order_rate", in.TargetPerfectOrderRate)
	checkPositive("current_cycle_time", in.CurrentCycleTime)
	checkPositive("target_cycle_time", in.TargetCycleTime)
	checkFraction("current_revenue_leakage", in.CurrentRevenueLeakage)
	checkFraction("target_revenue_leakage", in.TargetRevenueLeakage)
	checkPositive("current_cost_per_order", in.CurrentCostPerOrder)
	checkPositive("target_cost_per_order", in.TargetCostPerOrder)
	checkFraction("current_stp_rate", in.CurrentSTPRate)
	checkFraction("target_stp_rate", in.TargetSTPRate)

	checkPositive("avg_rework_cost", in.AvgReworkCost)
	checkPositive("fully_loaded_hourly_rate", in.FullyLoadedHourlyRate)
	checkPositive("avg_manual_processing_time", in.AvgManualProcessingTime)

	// Investments may legitimately be zero (e.g. maintenance folded into a
	// subscription); ROI is defined as 0 when total investment is 0.
	checkNonNegative("initial_investment", in.InitialInvestment)
	checkNonNegative("annual_maintenance", in.AnnualMaintenance)
	checkNonNegative("change_management_cost", in.ChangeManagementCost)
	checkNonNegative("integration_cost", in.IntegrationCost)

	checkFraction("wacc", in.WACC)
	checkFraction("tax_rate", in.TaxRate)

	if in.TimeHorizon < MinTimeHorizon || in.TimeHorizon > MaxTimeHorizon {
		problems = append(problems, fmt.Sprintf("time_horizon must be within [%d,%d] years (got %d)", MinTimeHorizon, MaxTimeHorizon, in.TimeHorizon))
	}

	if in.PilotDurationMonths <= 0 {
		problems = append(problems, fmt.Sprintf("pilot_duration_months must be > 0 (got %d)", in.PilotDurationMonths))
	}
	if in.LimitedProductionMonths <= 0 {
		problems = append(problems, fmt.Sprintf("limited_production_months must be > 0 (got %d)", in.LimitedProductionMonths))
	}
	if in.FullProductionMonth <= 0 {
		problems = append(problems, fmt.Sprintf("full_production_month must be > 0 (got %d)", in.FullProductionMonth))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid financial inputs: %s", strings.Join(problems, "; "))
	}
	return nil
}
