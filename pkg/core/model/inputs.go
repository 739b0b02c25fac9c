// Package model defines the input record shared by the scenario engine,
// the benchmark classifier, and the reporting layer.
package model

// ScenarioTag identifies one of the three fixed scenarios.
type ScenarioTag string

const (
	ScenarioBest  ScenarioTag = "best"
	ScenarioBase  ScenarioTag = "base"
	ScenarioWorst ScenarioTag = "worst"
)

// FinancialInputs holds the operational and financial assumptions for one
// analysis run. It is created once by the caller and never mutated by the
// engine; scenario adjustment works on a copy.
type FinancialInputs struct {
	// Volume & Revenue
	AnnualOrderVolume int     `json:"annual_order_volume"`
	AverageOrderValue float64 `json:"average_order_value"`
	ProfitMargin      float64 `json:"profit_margin"`

	// Current State Performance
	CurrentDSO              float64 `json:"current_dso"`
	CurrentPerfectOrderRate float64 `json:"current_perfect_order_rate"`
	CurrentCycleTime        float64 `json:"current_cycle_time"`
	CurrentRevenueLeakage   float64 `json:"current_revenue_leakage"`
	CurrentCostPerOrder     float64 `json:"current_cost_per_order"`
	CurrentSTPRate          float64 `json:"current_stp_rate"`

	// Target State Performance
	TargetDSO              float64 `json:"target_dso"`
	TargetPerfectOrderRate float64 `json:"target_perfect_order_rate"`
	TargetCycleTime        float64 `json:"target_cycle_time"`
	TargetRevenueLeakage   float64 `json:"target_revenue_leakage"`
	TargetCostPerOrder     float64 `json:"target_cost_per_order"`
	TargetSTPRate          float64 `json:"target_stp_rate"`

	// Cost Structure
	AvgReworkCost           float64 `json:"avg_rework_cost"`
	FullyLoadedHourlyRate   float64 `json:"fully_loaded_hourly_rate"`
	AvgManualProcessingTime float64 `json:"avg_manual_processing_time"` // minutes per touch

	// Investment
	InitialInvestment    float64 `json:"initial_investment"`
	AnnualMaintenance    float64 `json:"annual_maintenance"`
	ChangeManagementCost float64 `json:"change_management_cost"`
	IntegrationCost      float64 `json:"integration_cost"`

	// Financial Assumptions
	WACC        float64 `json:"wacc"`
	TaxRate     float64 `json:"tax_rate"`
	TimeHorizon int     `json:"time_horizon"` // years

	// Implementation
	PilotDurationMonths     int `json:"pilot_duration_months"`
	LimitedProductionMonths int `json:"limited_production_months"`
	FullProductionMonth     int `json:"full_production_month"`
}

// AnnualRevenue returns total annual revenue from volume and order value.
func AnnualRevenue(volume int, avgValue float64) float64 {
	return float64(volume) * avgValue
}

// AnnualRevenue on the record itself, for callers that already hold one.
func (in FinancialInputs) AnnualRevenue() float64 {
	return AnnualRevenue(in.AnnualOrderVolume, in.AverageOrderValue)
}

// DefaultInputs returns the reference assumption set used for demos and the
// CLI when no input document is supplied: a mid-market operation with
// bottom-half operational metrics targeting top-quartile performance.
func DefaultInputs() FinancialInputs {
	return FinancialInputs{
		AnnualOrderVolume: 50000,
		AverageOrderValue: 2500.0,
		ProfitMargin:      0.15,

		CurrentDSO:              45.0,
		CurrentPerfectOrderRate: 0.75,
		CurrentCycleTime:        5.2,
		CurrentRevenueLeakage:   0.08,
		CurrentCostPerOrder:     85.0,
		CurrentSTPRate:          0.65,

		TargetDSO:              35.0,
		TargetPerfectOrderRate: 0.92,
		TargetCycleTime:        3.0,
		TargetRevenueLeakage:   0.03,
		TargetCostPerOrder:     52.0,
		TargetSTPRate:          0.88,

		AvgReworkCost:           85.0,
		FullyLoadedHourlyRate:   75.0,
		AvgManualProcessingTime: 28.0,

		InitialInvestment:    500000,
		AnnualMaintenance:    100000,
		ChangeManagementCost: 100000,
		IntegrationCost:      75000,

		WACC:        0.08,
		TaxRate:     0.25,
		TimeHorizon: 5,

		PilotDurationMonths:     3,
		LimitedProductionMonths: 6,
		FullProductionMonth:     10,
	}
}
