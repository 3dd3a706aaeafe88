package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/satishbabariya/countyq/internal/county"
	"github.com/satishbabariya/countyq/internal/ui"
)

// Style selects how "display" prints records.
type Style int

const (
	// StyleBlock prints one indented block per record.
	StyleBlock Style = iota
	// StyleTable prints every record as a row of one table.
	StyleTable
)

// ParseStyle maps a configuration value to a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "", "block":
		return StyleBlock, nil
	case "table":
		return StyleTable, nil
	default:
		return StyleBlock, fmt.Errorf("unknown display style %q (want block or table)", s)
	}
}

func (s Style) String() string {
	if s == StyleTable {
		return "table"
	}
	return "block"
}

func (in *Interpreter) display() error {
	if in.opts.Style == StyleTable {
		return in.displayTable()
	}
	for _, r := range in.table.Records() {
		writeBlock(in.out, &r)
	}
	return nil
}

func writeBlock(w io.Writer, r *county.Record) {
	fmt.Fprintf(w, "%s, %s\n", r.County, r.State)
	fmt.Fprintf(w, "\tPopulation: %d\n", r.Population2014)

	fmt.Fprintf(w, "\tEducation:\n")
	fmt.Fprintf(w, "\t\t>= High School: %.2f%%\n", r.HighSchoolOrHigher)
	fmt.Fprintf(w, "\t\t>= Bachelor's Degree or Higher: %.2f%%\n", r.BachelorsOrHigher)

	fmt.Fprintf(w, "\tEthnicity Percentages:\n")
	fmt.Fprintf(w, "\t\tWhite Alone: %.2f%%\n", r.WhiteAlone)
	fmt.Fprintf(w, "\t\tBlack Alone: %.2f%%\n", r.BlackAlone)
	fmt.Fprintf(w, "\t\tAsian Alone: %.2f%%\n", r.AsianAlone)
	fmt.Fprintf(w, "\t\tAmerican Indian or Alaska Native: %.2f%%\n", r.AmericanIndian)
	fmt.Fprintf(w, "\t\tNative Hawaiian and Other Pacific Islander: %.2f%%\n", r.NativeHawaiian)
	fmt.Fprintf(w, "\t\tHispanic or Latino: %.2f%%\n", r.HispanicOrLatino)
	fmt.Fprintf(w, "\t\tTwo or More Races: %.2f%%\n", r.TwoOrMoreRaces)
	fmt.Fprintf(w, "\t\tWhite Alone, not Hispanic or Latino: %.2f%%\n", r.WhiteAloneNotHispanic)

	fmt.Fprintf(w, "\tIncome:\n")
	fmt.Fprintf(w, "\t\tMedian Household Income: $%d\n", r.MedianHouseholdIncome)
	fmt.Fprintf(w, "\t\tPer Capita Income: $%d\n", r.PerCapitaIncome)
	fmt.Fprintf(w, "\t\tBelow Poverty Level: %.2f%%\n", r.BelowPovertyLevel)
}

func (in *Interpreter) displayTable() error {
	if in.table.Len() == 0 {
		return nil
	}

	headers := []string{"County", "State", "Population"}
	for _, f := range county.Fields() {
		if f != county.Population2014 {
			headers = append(headers, f.Name())
		}
	}

	rows := make([][]string, 0, in.table.Len())
	for _, r := range in.table.Records() {
		row := []string{r.County, r.State, strconv.Itoa(r.Population2014)}
		for _, f := range county.Fields() {
			if f == county.Population2014 {
				continue
			}
			if f.Unit() == county.Currency {
				row = append(row, "$"+strconv.FormatFloat(f.Get(&r), 'f', 0, 64))
			} else {
				row = append(row, strconv.FormatFloat(f.Get(&r), 'f', 2, 64))
			}
		}
		rows = append(rows, row)
	}

	out, err := ui.Table(headers, rows)
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err = fmt.Fprint(in.out, out)
	return err
}
