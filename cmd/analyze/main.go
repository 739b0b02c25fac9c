package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"om_business_case/pkg/core/export"
	"om_business_case/pkg/core/model"
	"om_business_case/pkg/core/report"
	"om_business_case/pkg/core/scenario"
	"om_business_case/pkg/core/utils"
	"om_business_case/pkg/core/validate"
)

func main() {
	inputPath := flag.String("input", "", "Path to a JSON or HJSON inputs document (defaults omit it)")
	outDir := flag.String("out", "", "Directory for the CSV schedule and executive brief (skip writing when empty)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with process environment.")
	}

	inputs := model.DefaultInputs()
	if *inputPath != "" {
		data, err := os.ReadFile(*inputPath)
		if err != nil {
			fmt.Printf("Error reading inputs: %v\n", err)
			os.Exit(1)
		}
		inputs, err = utils.ParseInputsDocument(data)
		if err != nil {
			fmt.Printf("Error parsing inputs: %v\n", err)
			os.Exit(1)
		}
	}

	if err := validate.Inputs(inputs); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	best, base, worst := scenario.CalculateAll(inputs)
	cmp := report.Compare(best, base, worst)

	fmt.Println("Scenario Summary")
	fmt.Println("================")
	for _, line := range cmp.Lines {
		payback := "beyond horizon"
		if line.Payback != nil {
			payback = fmt.Sprintf("%.1f yrs", *line.Payback)
		}
		fmt.Printf("%-6s  adoption %3.0f%%  annual benefit $%12.0f  NPV $%12.0f  ROI %6.0f%%  payback %s\n",
			line.Scenario, line.AdoptionRate*100, line.TotalAnnualBenefit, line.NPV, line.ROI, payback)
	}
	fmt.Printf("\nProbability-weighted NPV: $%.0f (20%% best / 50%% base / 30%% worst)\n", cmp.ProbabilityWeightedNPV)
	fmt.Printf("Break-even benefit ratio: %.0f%%\n", cmp.BreakEvenBenefitRatio*100)

	if *outDir == "" {
		return
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	csvPath := filepath.Join(*outDir, "base_cash_flow.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		fmt.Printf("Error creating %s: %v\n", csvPath, err)
		os.Exit(1)
	}
	if err := export.WriteYearRecordsCSV(csvFile, base.Years); err != nil {
		csvFile.Close()
		fmt.Printf("Error writing cash flow CSV: %v\n", err)
		os.Exit(1)
	}
	csvFile.Close()
	fmt.Printf("[EXPORT] Wrote %s\n", csvPath)

	brief, err := report.ExecutiveBrief(inputs, best, base, worst, time.Now())
	if err != nil {
		fmt.Printf("Error building executive brief: %v\n", err)
		os.Exit(1)
	}
	briefPath := filepath.Join(*outDir, "executive_brief.md")
	if err := os.WriteFile(briefPath, []byte(brief), 0o644); err != nil {
		fmt.Printf("Error writing %s: %v\n", briefPath, err)
		os.Exit(1)
	}
	fmt.Printf("[EXPORT] Wrote %s\n", briefPath)
}
