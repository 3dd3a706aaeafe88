// Package county holds the in-memory county statistics table and the
// filter and aggregate operations that run against it.
package county

// Record is one county's 2014 statistics.
type Record struct {
	County string
	State  string

	// Education
	BachelorsOrHigher  float64
	HighSchoolOrHigher float64

	// Ethnicities
	WhiteAlone            float64
	BlackAlone            float64
	AsianAlone            float64
	AmericanIndian        float64
	NativeHawaiian        float64
	HispanicOrLatino      float64
	TwoOrMoreRaces        float64
	WhiteAloneNotHispanic float64

	// Income
	MedianHouseholdIncome int
	PerCapitaIncome       int
	BelowPovertyLevel     float64

	// Population
	Population2014 int
}

// Valid reports whether the record carries both halves of its natural key.
func (r *Record) Valid() bool {
	return r.County != "" && r.State != ""
}
