// Package report builds caller-facing summaries from scenario results. It
// only reads the result structs; no engine logic is reachable from here.
package report

import (
	"om_business_case/pkg/core/model"
	"om_business_case/pkg/core/scenario"
)

// Scenario probability weights for the expected-NPV figure. Base case is the
// planning assumption, best and worst bracket it.
const (
	WeightBest  = 0.20
	WeightBase  = 0.50
	WeightWorst = 0.30
)

// ScenarioLine is one row of the scenario comparison table.
type ScenarioLine struct {
	Scenario           model.ScenarioTag `json:"scenario"`
	AdoptionRate       float64           `json:"adoption_rate"`
	TotalAnnualBenefit float64           `json:"total_annual_benefit"`
	NPV                float64           `json:"npv"`
	ROI                float64           `json:"roi"`
	Payback            *float64          `json:"payback,omitempty"`
}

// Comparison summarizes the three scenarios side by side.
type Comparison struct {
	Lines                  []ScenarioLine `json:"lines"`
	ProbabilityWeightedNPV float64        `json:"probability_weighted_npv"`

	// BreakEvenBenefitRatio is the share of the base-case steady-state
	// annual benefit required just to recover the investment (total
	// investment divided by total annual benefit). Below 1.0 the case
	// survives benefit shortfalls.
	BreakEvenBenefitRatio float64 `json:"break_even_benefit_ratio"`
}

// Compare builds the side-by-side summary with the probability-weighted NPV
// (20% best, 50% base, 30% worst).
func Compare(best, base, worst scenario.Result) Comparison {
	line := func(r scenario.Result) ScenarioLine {
		return ScenarioLine{
			Scenario:           r.ScenarioType,
			AdoptionRate:       r.AdoptionRate,
			TotalAnnualBenefit: r.TotalAnnualBenefit,
			NPV:                r.NPV,
			ROI:                r.ROI,
			Payback:            r.Payback,
		}
	}

	breakEven := 0.0
	if base.TotalAnnualBenefit > 0 {
		breakEven = base.TotalInvestment / base.TotalAnnualBenefit
	}

	return Comparison{
		Lines:                  []ScenarioLine{line(best), line(base), line(worst)},
		ProbabilityWeightedNPV: WeightBest*best.NPV + WeightBase*base.NPV + WeightWorst*worst.NPV,
		BreakEvenBenefitRatio:  breakEven,
	}
}
