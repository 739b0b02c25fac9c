// Package projection builds the year-by-year cash-flow schedule for an
// improvement investment and derives its summary metrics (NPV, ROI, payback).
// The build-out follows a fixed phase plan: pilot, limited production, full
// production, then steady state with modest growth.
package projection

import (
	"math"

	"om_business_case/pkg/core/model"
)

// Phase labels for each projection year.
const (
	PhasePilot             = "Pilot"
	PhaseLimitedProduction = "Limited Production"
	PhaseFullProduction    = "Full Production"
	PhaseSteadyState       = "Steady State"
)

// Ramp schedule constants. Benefit fractions apply to the adoption-adjusted
// total annual benefit; investment fractions apply to the initial investment.
const (
	pilotBenefitRamp   = 0.15
	limitedBenefitRamp = 0.45
	fullBenefitRamp    = 0.80

	pilotInvestShare   = 0.30
	limitedInvestShare = 0.50
	fullInvestShare    = 0.20

	changeMgmtShare = 0.50 // booked half in year 0, half in year 1

	steadyBenefitGrowth  = 1.03 // annual benefit growth in steady state
	maintenanceInflation = 1.02 // annual maintenance inflation from year 3
)

// YearRecord is one row of the cash-flow schedule. Records are immutable
// once appended; cumulative totals are computed forward during the build.
type YearRecord struct {
	Year         int     `json:"year"`
	Phase        string  `json:"phase"`
	AdoptionRate float64 `json:"adoption_rate"`
	Investment   float64 `json:"investment"`
	Maintenance  float64 `json:"maintenance"`
	Benefits     float64 `json:"benefits"`
	NetCF        float64 `json:"net_cf"`
	CumulativeCF float64 `json:"cumulative_cf"`
	DiscountedCF float64 `json:"discounted_cf"`
}

// Projection holds the full schedule plus the derived summary metrics.
// Payback is nil when cumulative cash flow never turns positive within
// the horizon.
type Projection struct {
	Years           []YearRecord `json:"years"`
	NPV             float64      `json:"npv"`
	ROI             float64      `json:"roi"`
	Payback         *float64     `json:"payback,omitempty"`
	TotalInvestment float64      `json:"total_investment"`
	TotalBenefits   float64      `json:"total_benefits"`
}

// BuildSchedule constructs the year 0..TimeHorizon cash-flow schedule and
// derives NPV, ROI, and payback. totalAnnualBenefit must already carry the
// scenario adoption rate; the ramp fractions apply to it directly. adoption
// feeds only the per-year adoption column.
func BuildSchedule(in model.FinancialInputs, adoption, totalAnnualBenefit float64) Projection {
	years := make([]YearRecord, 0, in.TimeHorizon+1)
	cumulative := 0.0

	appendYear := func(year int, phase string, adoptionRate, investment, maintenance, benefits float64) {
		net := benefits - investment - maintenance
		cumulative += net
		years = append(years, YearRecord{
			Year:         year,
			Phase:        phase,
			AdoptionRate: adoptionRate,
			Investment:   investment,
			Maintenance:  maintenance,
			Benefits:     benefits,
			NetCF:        net,
			CumulativeCF: cumulative,
			DiscountedCF: net / math.Pow(1+in.WACC, float64(year)),
		})
	}

	// Year 0 - Pilot
	appendYear(0, PhasePilot,
		pilotBenefitRamp*adoption,
		in.InitialInvestment*pilotInvestShare+in.ChangeManagementCost*changeMgmtShare,
		0,
		totalAnnualBenefit*pilotBenefitRamp)

	// Year 1 - Limited production: integration lands here, half maintenance
	appendYear(1, PhaseLimitedProduction,
		limitedBenefitRamp*adoption,
		in.InitialInvestment*limitedInvestShare+in.ChangeManagementCost*changeMgmtShare+in.IntegrationCost,
		in.AnnualMaintenance*0.5,
		totalAnnualBenefit*limitedBenefitRamp)

	// Year 2 - Scaling to full production
	appendYear(2, PhaseFullProduction,
		fullBenefitRamp*adoption,
		in.InitialInvestment*fullInvestShare,
		in.AnnualMaintenance,
		totalAnnualBenefit*fullBenefitRamp)

	// Years 3+ - Steady state: benefit grows, maintenance inflates, no
	// further investment.
	for year := 3; year <= in.TimeHorizon; year++ {
		growth := math.Pow(steadyBenefitGrowth, float64(year-2))
		maintenance := in.AnnualMaintenance * math.Pow(maintenanceInflation, float64(year-2))
		appendYear(year, PhaseSteadyState, adoption, 0, maintenance, totalAnnualBenefit*growth)
	}

	proj := Projection{Years: years}
	for _, yr := range years {
		proj.NPV += yr.DiscountedCF
		proj.TotalInvestment += yr.Investment + yr.Maintenance
		proj.TotalBenefits += yr.Benefits
	}
	if proj.TotalInvestment > 0 {
		proj.ROI = (proj.TotalBenefits - proj.TotalInvestment) / proj.TotalInvestment * 100
	}
	proj.Payback = paybackPeriod(years)

	return proj
}

// paybackPeriod finds the first year cumulative cash flow turns positive and
// linearly interpolates within the crossing year. A year-0 crossing is a
// zero payback. Returns nil when cumulative cash flow stays non-positive
// through the horizon.
func paybackPeriod(years []YearRecord) *float64 {
	for i, yr := range years {
		if yr.CumulativeCF <= 0 {
			continue
		}
		payback := 0.0
		if i > 0 {
			prev := years[i-1].CumulativeCF
			fraction := 0.0
			if delta := yr.CumulativeCF - prev; delta != 0 {
				fraction = math.Abs(prev) / delta
			}
			payback = float64(i-1) + fraction
		}
		return &payback
	}
	return nil
}
