// Package scenario is the computation entry point: it derives the
// scenario-adjusted targets, runs the benefit calculators, and hands the
// summed annual benefit to the projection engine. Every call works on its
// own input copy and returns a fresh result; there is no shared state.
package scenario

import (
	"om_business_case/pkg/core/benefit"
	"om_business_case/pkg/core/model"
	"om_business_case/pkg/core/projection"
)

// Result is the complete financial model for one scenario.
type Result struct {
	ScenarioType          model.ScenarioTag `json:"scenario_type"`
	AdoptionRate          float64           `json:"adoption_rate"`
	PerformanceMultiplier float64           `json:"performance_multiplier"`
	AnnualRevenue         float64           `json:"annual_revenue"`

	WorkingCapital  benefit.WorkingCapitalResult  `json:"working_capital"`
	ErrorReduction  benefit.ErrorReductionResult  `json:"error_reduction"`
	RevenueLeakage  benefit.RevenueLeakageResult  `json:"revenue_leakage"`
	LaborAutomation benefit.LaborAutomationResult `json:"labor_automation"`
	CycleTime       benefit.CycleTimeResult       `json:"cycle_time"`
	CostReduction   benefit.CostPerOrderResult    `json:"cost_reduction"`

	// TotalAnnualBenefit is the adoption-adjusted steady-state benefit.
	// CostReduction is excluded from the sum (see benefit.CostPerOrderResult).
	TotalAnnualBenefit float64 `json:"total_annual_benefit"`

	Years           []projection.YearRecord `json:"years"`
	NPV             float64                 `json:"npv"`
	ROI             float64                 `json:"roi"`
	Payback         *float64                `json:"payback,omitempty"`
	TotalInvestment float64                 `json:"total_investment"`
	TotalBenefits   float64                 `json:"total_benefits"`
}

// Calculate computes the complete financial model for one scenario.
// Inputs must already satisfy the boundary invariants (validate.Inputs);
// the engine does not re-validate.
func Calculate(in model.FinancialInputs, tag model.ScenarioTag) Result {
	adj, mult := AdjustTargets(in, tag)
	annualRevenue := adj.AnnualRevenue()

	wc := benefit.CalculateWorkingCapital(adj.CurrentDSO, adj.TargetDSO, annualRevenue, adj.WACC)
	errs := benefit.CalculateErrorReduction(adj.CurrentPerfectOrderRate, adj.TargetPerfectOrderRate, adj.AnnualOrderVolume, adj.AvgReworkCost)
	leakage := benefit.CalculateRevenueLeakage(adj.CurrentRevenueLeakage, adj.TargetRevenueLeakage, annualRevenue, adj.ProfitMargin)
	labor := benefit.CalculateLaborAutomation(adj.CurrentSTPRate, adj.TargetSTPRate, adj.AnnualOrderVolume, adj.AvgManualProcessingTime, adj.FullyLoadedHourlyRate)
	cycle := benefit.CalculateCycleTime(adj.CurrentCycleTime, adj.TargetCycleTime, adj.AnnualOrderVolume, adj.AverageOrderValue, adj.ProfitMargin)
	cost := benefit.CalculateCostPerOrder(adj.CurrentCostPerOrder, adj.TargetCostPerOrder, adj.AnnualOrderVolume)

	totalAnnualBenefit := mult.Adoption * (wc.AnnualBenefit +
		errs.AnnualSavings +
		leakage.ProfitImpact +
		labor.AnnualSavings +
		cycle.ProfitImpact)

	proj := projection.BuildSchedule(adj, mult.Adoption, totalAnnualBenefit)

	return Result{
		ScenarioType:          tag,
		AdoptionRate:          mult.Adoption,
		PerformanceMultiplier: mult.Performance,
		AnnualRevenue:         annualRevenue,
		WorkingCapital:        wc,
		ErrorReduction:        errs,
		RevenueLeakage:        leakage,
		LaborAutomation:       labor,
		CycleTime:             cycle,
		CostReduction:         cost,
		TotalAnnualBenefit:    totalAnnualBenefit,
		Years:                 proj.Years,
		NPV:                   proj.NPV,
		ROI:                   proj.ROI,
		Payback:               proj.Payback,
		TotalInvestment:       proj.TotalInvestment,
		TotalBenefits:         proj.TotalBenefits,
	}
}

// CalculateAll runs the three fixed scenarios and returns them keyed best,
// base, worst. Scenarios are independent; callers wanting parallelism can
// invoke Calculate per goroutine instead.
func CalculateAll(in model.FinancialInputs) (best, base, worst Result) {
	best = Calculate(in, model.ScenarioBest)
	base = Calculate(in, model.ScenarioBase)
	worst = Calculate(in, model.ScenarioWorst)
	return best, base, worst
}
