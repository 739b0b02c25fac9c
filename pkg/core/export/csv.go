// Package export serializes the year-by-year schedule to flat tabular form
// for spreadsheets. One row per year, columns matching the YearRecord.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"om_business_case/pkg/core/projection"
)

var csvHeader = []string{
	"year", "phase", "adoption_rate", "investment", "maintenance",
	"benefits", "net_cf", "cumulative_cf", "discounted_cf",
}

// WriteYearRecordsCSV streams the schedule as CSV to w.
func WriteYearRecordsCSV(w io.Writer, years []projection.YearRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: writing csv header: %w", err)
	}
	for _, yr := range years {
		row := []string{
			strconv.Itoa(yr.Year),
			yr.Phase,
			formatFloat(yr.AdoptionRate),
			formatFloat(yr.Investment),
			formatFloat(yr.Maintenance),
			formatFloat(yr.Benefits),
			formatFloat(yr.NetCF),
			formatFloat(yr.CumulativeCF),
			formatFloat(yr.DiscountedCF),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: writing year %d: %w", yr.Year, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// YearRecordsCSV renders the schedule to a CSV string.
func YearRecordsCSV(years []projection.YearRecord) (string, error) {
	var sb strings.Builder
	if err := WriteYearRecordsCSV(&sb, years); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
