package benchmark

import "testing"

func TestClassifyLowerIsBetter(t *testing.T) {
	cases := []struct {
		metric MetricKey
		value  float64
		want   Tier
	}{
		{MetricDSO, 24, TierBestInClass}, // boundary inclusive
		{MetricDSO, 30, TierTopQuartile},
		{MetricDSO, 38, TierAverage},
		{MetricDSO, 53, TierBottomQuartile},
		{MetricCostPerOrder, 28, TierBestInClass},
		{MetricCostPerOrder, 62, TierAverage},
		{MetricCostPerOrder, 110, TierBottomQuartile},
		{MetricRevenueLeakage, 0.01, TierBestInClass},
		{MetricRevenueLeakage, 0.08, TierBottomQuartile},
	}
	for _, c := range cases {
		got, err := Classify(c.metric, c.value)
		if err != nil {
			t.Fatalf("%s %.2f: %v", c.metric, c.value, err)
		}
		if got != c.want {
			t.Errorf("%s %.2f: expected %s, got %s", c.metric, c.value, c.want, got)
		}
	}
}

func TestClassifyHigherIsBetter(t *testing.T) {
	cases := []struct {
		metric MetricKey
		value  float64
		want   Tier
	}{
		{MetricPerfectOrderRate, 0.97, TierBestInClass},
		{MetricPerfectOrderRate, 0.93, TierTopQuartile}, // boundary inclusive, >= comparison
		{MetricPerfectOrderRate, 0.85, TierAverage},
		{MetricPerfectOrderRate, 0.60, TierBottomQuartile},
		{MetricSTPRate, 0.95, TierBestInClass},
		{MetricSTPRate, 0.78, TierAverage},
		{MetricSTPRate, 0.50, TierBottomQuartile},
	}
	for _, c := range cases {
		got, err := Classify(c.metric, c.value)
		if err != nil {
			t.Fatalf("%s %.2f: %v", c.metric, c.value, err)
		}
		if got != c.want {
			t.Errorf("%s %.2f: expected %s, got %s", c.metric, c.value, c.want, got)
		}
	}
}

func TestUnknownMetric(t *testing.T) {
	if _, err := Classify(MetricKey("inventory_turns"), 5); err == nil {
		t.Error("Expected an error for an unknown metric")
	}
	if _, err := ThresholdsFor(MetricKey("inventory_turns")); err == nil {
		t.Error("Expected an error for an unknown metric")
	}
}

func TestPosition(t *testing.T) {
	pos, err := Position(MetricDSO, 45, 30)
	if err != nil {
		t.Fatal(err)
	}
	if pos.CurrentTier != TierBottomQuartile {
		t.Errorf("DSO 45 should be Bottom Quartile, got %s", pos.CurrentTier)
	}
	if pos.TargetTier != TierTopQuartile {
		t.Errorf("DSO 30 should be Top Quartile, got %s", pos.TargetTier)
	}
	if !pos.Benchmarks.LowerIsBetter {
		t.Error("DSO thresholds must be flagged lower-is-better")
	}
}
