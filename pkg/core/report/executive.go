package report

import (
	"fmt"
	"strings"
	"time"

	"om_business_case/pkg/core/benchmark"
	"om_business_case/pkg/core/model"
	"om_business_case/pkg/core/scenario"
	"om_business_case/pkg/core/utils"
)

// ExecutiveBrief renders the investment case as a markdown document built
// purely from the scenario results, the raw inputs, and the supplied
// as-of date, so the same arguments always produce the same brief. The
// output is validated with Goldmark before it is returned.
func ExecutiveBrief(in model.FinancialInputs, best, base, worst scenario.Result, asOf time.Time) (string, error) {
	cmp := Compare(best, base, worst)
	annualRevenue := in.AnnualRevenue()
	currentErrorRate := (1 - in.CurrentPerfectOrderRate) * 100
	targetErrorRate := (1 - in.TargetPerfectOrderRate) * 100

	dsoBench, _ := benchmark.ThresholdsFor(benchmark.MetricDSO)
	perfectBench, _ := benchmark.ThresholdsFor(benchmark.MetricPerfectOrderRate)
	stpBench, _ := benchmark.ThresholdsFor(benchmark.MetricSTPRate)

	var b strings.Builder

	b.WriteString("## ORDER MANAGEMENT AI INVESTMENT: EXECUTIVE BRIEF\n\n")
	fmt.Fprintf(&b, "**Prepared:** %s\n\n---\n\n", asOf.Format("January 2, 2006"))

	// The Problem
	b.WriteString("### THE PROBLEM\n\n")
	fmt.Fprintf(&b, "Manual order processing is costing **%s/year**, with a **%.0f%% error rate** causing revenue leakage of **%s** and customer dissatisfaction.\n\n",
		millions(in.CurrentCostPerOrder*float64(in.AnnualOrderVolume)),
		currentErrorRate,
		millions(annualRevenue*in.CurrentRevenueLeakage))
	b.WriteString("**Current Performance vs. Industry:**\n\n")
	fmt.Fprintf(&b, "- DSO: **%.0f days** (Industry avg: %.0f days)\n", in.CurrentDSO, dsoBench.Average)
	fmt.Fprintf(&b, "- Perfect Order Rate: **%.0f%%** (Industry avg: %.0f%%)\n", in.CurrentPerfectOrderRate*100, perfectBench.Average*100)
	fmt.Fprintf(&b, "- Straight-Through Processing: **%.0f%%** (Industry avg: %.0f%%)\n\n---\n\n", in.CurrentSTPRate*100, stpBench.Average*100)

	// The Solution
	b.WriteString("### THE SOLUTION\n\n")
	fmt.Fprintf(&b, "AI-powered order validation and exception handling, reducing manual touch by **%.0f percentage points** and errors by **%.0f percentage points**.\n\n",
		(in.TargetSTPRate-in.CurrentSTPRate)*100,
		currentErrorRate-targetErrorRate)
	b.WriteString("**Target State:**\n\n")
	fmt.Fprintf(&b, "- DSO: %.0f days\n", in.TargetDSO)
	fmt.Fprintf(&b, "- Perfect Order Rate: %.0f%%\n", in.TargetPerfectOrderRate*100)
	fmt.Fprintf(&b, "- STP Rate: %.0f%%\n\n---\n\n", in.TargetSTPRate*100)

	// The Financial Case
	b.WriteString("### THE FINANCIAL CASE\n\n")
	fmt.Fprintf(&b, "**Investment:** %s over 18 months\n\n",
		thousands(in.InitialInvestment+in.ChangeManagementCost+in.IntegrationCost))
	b.WriteString("**Base Case Returns:**\n\n")
	fmt.Fprintf(&b, "- Annual Benefit (Steady State): **%s/year**\n", millions(base.TotalAnnualBenefit))
	fmt.Fprintf(&b, "- NPV (%dyr, %.0f%% WACC): **%s**\n", in.TimeHorizon, in.WACC*100, millions(base.NPV))
	fmt.Fprintf(&b, "- ROI: **%.0f%%**\n", base.ROI)
	fmt.Fprintf(&b, "- Payback: **%s**\n\n", paybackText(base.Payback))
	fmt.Fprintf(&b, "**Probability-Weighted NPV:** %s\n\n---\n\n", millions(cmp.ProbabilityWeightedNPV))

	// Benefit Breakdown
	b.WriteString("### BENEFIT BREAKDOWN (Base Case)\n\n")
	fmt.Fprintf(&b, "1. **Working Capital Improvement:** %s/year — DSO %.0f → %.0f days, cash freed %s\n",
		thousands(base.WorkingCapital.AnnualBenefit), in.CurrentDSO, in.TargetDSO, millions(base.WorkingCapital.CashFreed))
	fmt.Fprintf(&b, "2. **Error Reduction:** %s/year — %.0f orders/year of rework eliminated\n",
		thousands(base.ErrorReduction.AnnualSavings), base.ErrorReduction.ErrorsEliminated)
	fmt.Fprintf(&b, "3. **Revenue Leakage Prevention:** %s/year — %s of revenue protected at %.0f%% margin\n",
		thousands(base.RevenueLeakage.ProfitImpact), millions(base.RevenueLeakage.RevenueProtected), in.ProfitMargin*100)
	fmt.Fprintf(&b, "4. **Labor Automation:** %s/year — %.1f FTE across %.0f manual touches\n",
		thousands(base.LaborAutomation.AnnualSavings), base.LaborAutomation.FTEReduction, base.LaborAutomation.TouchesEliminated)
	fmt.Fprintf(&b, "5. **Cycle Time / Capacity:** %s/year — cycle %.1f → %.1f days, %.0f additional orders\n",
		thousands(base.CycleTime.ProfitImpact), in.CurrentCycleTime, in.TargetCycleTime, base.CycleTime.AdditionalCapacityOrders)
	fmt.Fprintf(&b, "\nSupplementary: direct cost-per-order savings of %s/year are reported but excluded from the cash-flow total to avoid double counting with items 2 and 4.\n\n---\n\n",
		thousands(base.CostReduction.AnnualSavings))

	// Downside Protection
	b.WriteString("### DOWNSIDE PROTECTION\n\n")
	fmt.Fprintf(&b, "**Worst Case** (%.0f%% adoption, %.0f%% of target performance):\n\n",
		worst.AdoptionRate*100, worst.PerformanceMultiplier*100)
	fmt.Fprintf(&b, "- NPV: **%s**\n", millions(worst.NPV))
	fmt.Fprintf(&b, "- ROI: **%.0f%%**\n", worst.ROI)
	fmt.Fprintf(&b, "- Payback: **%s**\n\n", paybackText(worst.Payback))
	fmt.Fprintf(&b, "**Break-Even:** recovering the investment requires only **%.0f%%** of projected benefits.\n\n---\n\n",
		cmp.BreakEvenBenefitRatio*100)

	// Roadmap
	b.WriteString("### IMPLEMENTATION ROADMAP\n\n")
	fmt.Fprintf(&b, "- **Pilot (Months 1-%d):** %s investment, gate decision on accuracy and user satisfaction\n",
		in.PilotDurationMonths, thousands(in.InitialInvestment*0.30))
	fmt.Fprintf(&b, "- **Limited Production (Months %d-%d):** %s investment, benefits ramp to %s/year\n",
		in.PilotDurationMonths+1, in.PilotDurationMonths+in.LimitedProductionMonths,
		thousands(in.InitialInvestment*0.50+in.IntegrationCost), millions(base.TotalAnnualBenefit*0.45))
	fmt.Fprintf(&b, "- **Full Production (Month %d+):** %s investment, all %d orders, full benefits\n\n---\n\n",
		in.FullProductionMonth, thousands(in.InitialInvestment*0.20), in.AnnualOrderVolume)

	fmt.Fprintf(&b, "*Financial model built with industry-standard formulas; benchmarks sourced from APQC, Aberdeen Group, and Gartner research.*\n")

	brief := b.String()
	if !utils.IsValidMarkdown(brief) {
		return "", fmt.Errorf("report: generated brief failed markdown validation")
	}
	return brief, nil
}

// paybackText renders a payback period, or "beyond horizon" when the
// cumulative cash flow never turns positive.
func paybackText(payback *float64) string {
	if payback == nil {
		return "beyond horizon"
	}
	return fmt.Sprintf("%.1f years", *payback)
}

func millions(v float64) string {
	return fmt.Sprintf("$%.1fM", v/1e6)
}

func thousands(v float64) string {
	return fmt.Sprintf("$%.0fK", v/1e3)
}
