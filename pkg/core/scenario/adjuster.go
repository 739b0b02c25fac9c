package scenario

import (
	"fmt"

	"om_business_case/pkg/core/model"
)

// Multipliers pairs the adoption rate with the performance multiplier for
// one scenario.
type Multipliers struct {
	Adoption    float64 `json:"adoption"`
	Performance float64 `json:"performance"`
}

// Fixed scenario table: best overshoots targets at high adoption, worst
// falls short at low adoption.
var scenarioMultipliers = map[model.ScenarioTag]Multipliers{
	model.ScenarioBest:  {Adoption: 0.95, Performance: 1.10},
	model.ScenarioBase:  {Adoption: 0.75, Performance: 1.00},
	model.ScenarioWorst: {Adoption: 0.50, Performance: 0.80},
}

// MultipliersFor resolves the adoption/performance pair for a scenario tag.
// An unknown tag is a programming error and panics.
func MultipliersFor(tag model.ScenarioTag) Multipliers {
	mult, ok := scenarioMultipliers[tag]
	if !ok {
		panic(fmt.Sprintf("scenario: unknown scenario tag %q", tag))
	}
	return mult
}

// adjustedTarget scales the current-to-target gap by the performance
// multiplier. The direction flag is explicit rather than inferred: getting
// the sign wrong silently turns an improvement into a regression, so each
// metric declares which way is better at the call site. performance = 0
// always anchors at the current value; > 1 overshoots the original target.
func adjustedTarget(current, target, performance float64, higherIsBetter bool) float64 {
	if higherIsBetter {
		return current + (target-current)*performance
	}
	return current - (current-target)*performance
}

// AdjustTargets returns a full copy of the inputs with every target metric
// rescaled for the scenario, plus the resolved multiplier pair. All
// non-target fields pass through unchanged.
func AdjustTargets(in model.FinancialInputs, tag model.ScenarioTag) (model.FinancialInputs, Multipliers) {
	mult := MultipliersFor(tag)
	perf := mult.Performance

	adj := in
	adj.TargetDSO = adjustedTarget(in.CurrentDSO, in.TargetDSO, perf, false)
	adj.TargetPerfectOrderRate = adjustedTarget(in.CurrentPerfectOrderRate, in.TargetPerfectOrderRate, perf, true)
	adj.TargetCycleTime = adjustedTarget(in.CurrentCycleTime, in.TargetCycleTime, perf, false)
	adj.TargetRevenueLeakage = adjustedTarget(in.CurrentRevenueLeakage, in.TargetRevenueLeakage, perf, false)
	adj.TargetCostPerOrder = adjustedTarget(in.CurrentCostPerOrder, in.TargetCostPerOrder, perf, false)
	adj.TargetSTPRate = adjustedTarget(in.CurrentSTPRate, in.TargetSTPRate, perf, true)

	return adj, mult
}
