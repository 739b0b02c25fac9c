// Package benchmark classifies operating metrics against published industry
// quartile tables (APQC, Aberdeen Group, Gartner). Pure lookup, no adaptive
// behavior.
package benchmark

import "fmt"

// MetricKey names one of the five benchmarked metrics.
type MetricKey string

const (
	MetricDSO              MetricKey = "dso"
	MetricPerfectOrderRate MetricKey = "perfect_order_rate"
	MetricSTPRate          MetricKey = "stp_rate"
	MetricCostPerOrder     MetricKey = "cost_per_order"
	MetricRevenueLeakage   MetricKey = "revenue_leakage"
)

// Tier labels, best first.
type Tier string

const (
	TierBestInClass    Tier = "Best-in-Class"
	TierTopQuartile    Tier = "Top Quartile"
	TierAverage        Tier = "Average"
	TierBottomQuartile Tier = "Bottom Quartile"
)

// Thresholds holds the published quartile boundaries for one metric.
// LowerIsBetter is an explicit flag, never inferred from the values.
type Thresholds struct {
	BottomQuartile float64 `json:"bottom_quartile"`
	Average        float64 `json:"average"`
	TopQuartile    float64 `json:"top_quartile"`
	BestInClass    float64 `json:"best_in_class"`
	LowerIsBetter  bool    `json:"lower_is_better"`
}

var industryBenchmarks = map[MetricKey]Thresholds{
	MetricDSO:              {BottomQuartile: 52, Average: 38, TopQuartile: 31, BestInClass: 24, LowerIsBetter: true},
	MetricPerfectOrderRate: {BottomQuartile: 0.68, Average: 0.85, TopQuartile: 0.93, BestInClass: 0.97},
	MetricSTPRate:          {BottomQuartile: 0.58, Average: 0.78, TopQuartile: 0.89, BestInClass: 0.95},
	MetricCostPerOrder:     {BottomQuartile: 105, Average: 62, TopQuartile: 42, BestInClass: 28, LowerIsBetter: true},
	MetricRevenueLeakage:   {BottomQuartile: 0.12, Average: 0.06, TopQuartile: 0.03, BestInClass: 0.01, LowerIsBetter: true},
}

// ThresholdsFor exposes the table row for a metric, for display layers.
func ThresholdsFor(metric MetricKey) (Thresholds, error) {
	th, ok := industryBenchmarks[metric]
	if !ok {
		return Thresholds{}, fmt.Errorf("benchmark: unknown metric %q", metric)
	}
	return th, nil
}

// Classify maps a metric value to its industry tier. Comparisons run in
// descending stringency with inclusive boundaries: <= for lower-is-better
// metrics, >= for higher-is-better ones.
func Classify(metric MetricKey, value float64) (Tier, error) {
	th, ok := industryBenchmarks[metric]
	if !ok {
		return "", fmt.Errorf("benchmark: unknown metric %q", metric)
	}

	if th.LowerIsBetter {
		switch {
		case value <= th.BestInClass:
			return TierBestInClass, nil
		case value <= th.TopQuartile:
			return TierTopQuartile, nil
		case value <= th.Average:
			return TierAverage, nil
		}
		return TierBottomQuartile, nil
	}

	switch {
	case value >= th.BestInClass:
		return TierBestInClass, nil
	case value >= th.TopQuartile:
		return TierTopQuartile, nil
	case value >= th.Average:
		return TierAverage, nil
	}
	return TierBottomQuartile, nil
}

// PairPosition classifies the current and target ends of a metric pair for
// side-by-side display.
type PairPosition struct {
	CurrentTier Tier       `json:"current_tier"`
	TargetTier  Tier       `json:"target_tier"`
	Benchmarks  Thresholds `json:"benchmarks"`
}

// Position classifies both ends of a current/target pair.
func Position(metric MetricKey, current, target float64) (PairPosition, error) {
	currentTier, err := Classify(metric, current)
	if err != nil {
		return PairPosition{}, err
	}
	targetTier, _ := Classify(metric, target)
	th, _ := ThresholdsFor(metric)

	return PairPosition{
		CurrentTier: currentTier,
		TargetTier:  targetTier,
		Benchmarks:  th,
	}, nil
}
