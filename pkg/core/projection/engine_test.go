package projection

import (
	"math"
	"testing"

	"om_business_case/pkg/core/model"
)

func rampInputs() model.FinancialInputs {
	return model.FinancialInputs{
		InitialInvestment:    100,
		AnnualMaintenance:    20,
		ChangeManagementCost: 10,
		IntegrationCost:      5,
		WACC:                 0,
		TimeHorizon:          3,
	}
}

func TestRampSchedule(t *testing.T) {
	// adoption 0.75, total annual benefit 1000 (adoption already applied)
	// Y0 Pilot:   benefit 150, invest 100*0.30 + 10*0.50 = 35,     maint 0,    net 115
	// Y1 Limited: benefit 450, invest 100*0.50 + 10*0.50 + 5 = 60, maint 10,   net 380
	// Y2 Full:    benefit 800, invest 100*0.20 = 20,               maint 20,   net 760
	// Y3 Steady:  benefit 1000*1.03 = 1030,                        maint 20.4, net 1009.6
	proj := BuildSchedule(rampInputs(), 0.75, 1000)

	if len(proj.Years) != 4 {
		t.Fatalf("Expected 4 year records, got %d", len(proj.Years))
	}

	wantPhases := []string{PhasePilot, PhaseLimitedProduction, PhaseFullProduction, PhaseSteadyState}
	wantBenefits := []float64{150, 450, 800, 1030}
	wantInvest := []float64{35, 60, 20, 0}
	wantMaint := []float64{0, 10, 20, 20.4}
	wantNet := []float64{115, 380, 760, 1009.6}
	wantCum := []float64{115, 495, 1255, 2264.6}

	for i, yr := range proj.Years {
		if yr.Year != i {
			t.Errorf("Year %d: index %d", i, yr.Year)
		}
		if yr.Phase != wantPhases[i] {
			t.Errorf("Year %d: expected phase %s, got %s", i, wantPhases[i], yr.Phase)
		}
		if math.Abs(yr.Benefits-wantBenefits[i]) > 1e-9 {
			t.Errorf("Year %d: expected benefits %f, got %f", i, wantBenefits[i], yr.Benefits)
		}
		if math.Abs(yr.Investment-wantInvest[i]) > 1e-9 {
			t.Errorf("Year %d: expected investment %f, got %f", i, wantInvest[i], yr.Investment)
		}
		if math.Abs(yr.Maintenance-wantMaint[i]) > 1e-9 {
			t.Errorf("Year %d: expected maintenance %f, got %f", i, wantMaint[i], yr.Maintenance)
		}
		if math.Abs(yr.NetCF-wantNet[i]) > 1e-9 {
			t.Errorf("Year %d: expected net CF %f, got %f", i, wantNet[i], yr.NetCF)
		}
		if math.Abs(yr.CumulativeCF-wantCum[i]) > 1e-9 {
			t.Errorf("Year %d: expected cumulative CF %f, got %f", i, wantCum[i], yr.CumulativeCF)
		}
	}

	// Totals: investment 35+60+20 + maintenance 0+10+20+20.4 = 165.4
	if math.Abs(proj.TotalInvestment-165.4) > 1e-9 {
		t.Errorf("Expected total investment 165.4, got %f", proj.TotalInvestment)
	}
	if math.Abs(proj.TotalBenefits-2430) > 1e-9 {
		t.Errorf("Expected total benefits 2430, got %f", proj.TotalBenefits)
	}
	// ROI = (2430 - 165.4) / 165.4 * 100
	wantROI := (2430 - 165.4) / 165.4 * 100
	if math.Abs(proj.ROI-wantROI) > 1e-9 {
		t.Errorf("Expected ROI %f, got %f", wantROI, proj.ROI)
	}
}

func TestNPVEqualsUndiscountedSumAtZeroWACC(t *testing.T) {
	proj := BuildSchedule(rampInputs(), 0.75, 1000)

	sum := 0.0
	for _, yr := range proj.Years {
		sum += yr.NetCF
	}
	if math.Abs(proj.NPV-sum) > 1e-9 {
		t.Errorf("NPV at WACC=0 should equal undiscounted sum %f, got %f", sum, proj.NPV)
	}
	// And equal the final cumulative figure
	if math.Abs(proj.NPV-proj.Years[len(proj.Years)-1].CumulativeCF) > 1e-9 {
		t.Errorf("NPV at WACC=0 should equal final cumulative CF")
	}
}

func TestDiscounting(t *testing.T) {
	in := rampInputs()
	in.WACC = 0.10
	proj := BuildSchedule(in, 0.75, 1000)

	for _, yr := range proj.Years {
		want := yr.NetCF / math.Pow(1.10, float64(yr.Year))
		if math.Abs(yr.DiscountedCF-want) > 1e-9 {
			t.Errorf("Year %d: expected discounted CF %f, got %f", yr.Year, want, yr.DiscountedCF)
		}
	}
}

func TestCumulativeConsistency(t *testing.T) {
	in := rampInputs()
	in.TimeHorizon = 10
	in.WACC = 0.08
	proj := BuildSchedule(in, 0.95, 12345.67)

	if len(proj.Years) != 11 {
		t.Fatalf("Expected 11 records for a 10 year horizon, got %d", len(proj.Years))
	}
	running := 0.0
	for i, yr := range proj.Years {
		if yr.Year != i {
			t.Errorf("Years must ascend strictly from 0; index %d holds year %d", i, yr.Year)
		}
		running += yr.NetCF
		if math.Abs(yr.CumulativeCF-running) > 1e-6 {
			t.Errorf("Year %d: cumulative CF %f != running sum %f", yr.Year, yr.CumulativeCF, running)
		}
	}
}

func TestPaybackImmediate(t *testing.T) {
	// Year 0 already positive (benefit 150 vs cost 35) => payback 0
	proj := BuildSchedule(rampInputs(), 0.75, 1000)

	if proj.Payback == nil {
		t.Fatal("Expected a payback value")
	}
	if *proj.Payback != 0 {
		t.Errorf("Expected payback 0, got %f", *proj.Payback)
	}
}

func TestPaybackInterpolation(t *testing.T) {
	// Heavy upfront investment pushes the crossing into year 2:
	// Y0: 150 - 300 = -150 (cum -150)
	// Y1: 450 - 500 = -50  (cum -200)
	// Y2: 800 - 200 = 600  (cum 400)
	// payback = 1 + |-200| / (400 - (-200)) = 1.3333
	in := model.FinancialInputs{InitialInvestment: 1000, WACC: 0, TimeHorizon: 3}
	proj := BuildSchedule(in, 0.75, 1000)

	if proj.Payback == nil {
		t.Fatal("Expected a payback value")
	}
	if math.Abs(*proj.Payback-(1+200.0/600.0)) > 1e-9 {
		t.Errorf("Expected payback 1.3333, got %f", *proj.Payback)
	}

	// Consistency with the schedule: cumulative CF <= 0 at floor(p), > 0 after
	p := *proj.Payback
	if proj.Years[int(p)].CumulativeCF > 0 {
		t.Errorf("Cumulative CF at floor(payback) should be <= 0")
	}
	if proj.Years[int(p)+1].CumulativeCF <= 0 {
		t.Errorf("Cumulative CF after the crossing year should be > 0")
	}
}

func TestNoPaybackWithinHorizon(t *testing.T) {
	// Zero benefit, ongoing costs: cumulative CF never turns positive
	proj := BuildSchedule(rampInputs(), 0.75, 0)

	if proj.Payback != nil {
		t.Errorf("Expected no payback, got %f", *proj.Payback)
	}
	if proj.NPV >= 0 {
		t.Errorf("NPV should be negative with zero benefits, got %f", proj.NPV)
	}
}

func TestROIZeroWhenNoInvestment(t *testing.T) {
	in := model.FinancialInputs{WACC: 0.08, TimeHorizon: 3}
	proj := BuildSchedule(in, 0.75, 1000)

	if proj.ROI != 0 {
		t.Errorf("ROI must be 0 when total investment is 0, got %f", proj.ROI)
	}
}
