package county

import "fmt"

// Field identifies one numeric attribute of a Record.
type Field int

const (
	BachelorsOrHigher Field = iota
	HighSchoolOrHigher
	AmericanIndian
	AsianAlone
	BlackAlone
	HispanicOrLatino
	NativeHawaiian
	TwoOrMoreRaces
	WhiteAlone
	WhiteAloneNotHispanic
	MedianHouseholdIncome
	PerCapitaIncome
	BelowPovertyLevel
	Population2014
)

// Unit describes what a field's number measures.
type Unit int

const (
	// Percent fields are shares of the county population, 0..100.
	Percent Unit = iota
	// Currency fields are dollar amounts.
	Currency
	// Count fields are head counts.
	Count
)

func (u Unit) String() string {
	switch u {
	case Percent:
		return "percent"
	case Currency:
		return "currency"
	case Count:
		return "count"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Column positions of the identity attributes in the input CSV.
const (
	CountyColumn = 0
	StateColumn  = 1
)

type fieldDef struct {
	name    string
	aliases []string
	unit    Unit
	column  int
	get     func(*Record) float64
	set     func(*Record, float64)
}

// catalog is the only place field names, columns and accessors are declared.
var catalog = [...]fieldDef{
	BachelorsOrHigher: {
		name:   "Education.Bachelor's Degree or Higher",
		unit:   Percent,
		column: 5,
		get:    func(r *Record) float64 { return r.BachelorsOrHigher },
		set:    func(r *Record, v float64) { r.BachelorsOrHigher = v },
	},
	HighSchoolOrHigher: {
		name:   "Education.High School or Higher",
		unit:   Percent,
		column: 6,
		get:    func(r *Record) float64 { return r.HighSchoolOrHigher },
		set:    func(r *Record, v float64) { r.HighSchoolOrHigher = v },
	},
	AmericanIndian: {
		name:    "Ethnicities.American Indian",
		aliases: []string{"Ethnicities.American Indian and Alaska Native Alone"},
		unit:    Percent,
		column:  11,
		get:     func(r *Record) float64 { return r.AmericanIndian },
		set:     func(r *Record, v float64) { r.AmericanIndian = v },
	},
	AsianAlone: {
		name:   "Ethnicities.Asian Alone",
		unit:   Percent,
		column: 12,
		get:    func(r *Record) float64 { return r.AsianAlone },
		set:    func(r *Record, v float64) { r.AsianAlone = v },
	},
	BlackAlone: {
		name:   "Ethnicities.Black Alone",
		unit:   Percent,
		column: 13,
		get:    func(r *Record) float64 { return r.BlackAlone },
		set:    func(r *Record, v float64) { r.BlackAlone = v },
	},
	HispanicOrLatino: {
		name:   "Ethnicities.Hispanic or Latino",
		unit:   Percent,
		column: 14,
		get:    func(r *Record) float64 { return r.HispanicOrLatino },
		set:    func(r *Record, v float64) { r.HispanicOrLatino = v },
	},
	NativeHawaiian: {
		name:    "Ethnicities.Native Hawaiian",
		aliases: []string{"Ethnicities.Native Hawaiian and Other Pacific Islander Alone"},
		unit:    Percent,
		column:  15,
		get:     func(r *Record) float64 { return r.NativeHawaiian },
		set:     func(r *Record, v float64) { r.NativeHawaiian = v },
	},
	TwoOrMoreRaces: {
		name:   "Ethnicities.Two or More Races",
		unit:   Percent,
		column: 16,
		get:    func(r *Record) float64 { return r.TwoOrMoreRaces },
		set:    func(r *Record, v float64) { r.TwoOrMoreRaces = v },
	},
	WhiteAlone: {
		name:   "Ethnicities.White Alone",
		unit:   Percent,
		column: 17,
		get:    func(r *Record) float64 { return r.WhiteAlone },
		set:    func(r *Record, v float64) { r.WhiteAlone = v },
	},
	WhiteAloneNotHispanic: {
		name:    "Ethnicities.White Alone Not Hispanic",
		aliases: []string{"Ethnicities.White Alone, not Hispanic or Latino"},
		unit:    Percent,
		column:  18,
		get:     func(r *Record) float64 { return r.WhiteAloneNotHispanic },
		set:     func(r *Record, v float64) { r.WhiteAloneNotHispanic = v },
	},
	MedianHouseholdIncome: {
		name:   "Income.Median Household Income",
		unit:   Currency,
		column: 25,
		get:    func(r *Record) float64 { return float64(r.MedianHouseholdIncome) },
		set:    func(r *Record, v float64) { r.MedianHouseholdIncome = int(v) },
	},
	PerCapitaIncome: {
		name:   "Income.Per Capita Income",
		unit:   Currency,
		column: 26,
		get:    func(r *Record) float64 { return float64(r.PerCapitaIncome) },
		set:    func(r *Record, v float64) { r.PerCapitaIncome = int(v) },
	},
	BelowPovertyLevel: {
		name:   "Income.Persons Below Poverty Level",
		unit:   Percent,
		column: 27,
		get:    func(r *Record) float64 { return r.BelowPovertyLevel },
		set:    func(r *Record, v float64) { r.BelowPovertyLevel = v },
	},
	Population2014: {
		name:   "Population.2014 Population",
		unit:   Count,
		column: 38,
		get:    func(r *Record) float64 { return float64(r.Population2014) },
		set:    func(r *Record, v float64) { r.Population2014 = int(v) },
	},
}

var byName = func() map[string]Field {
	m := make(map[string]Field, len(catalog)*2)
	for i, def := range catalog {
		m[def.name] = Field(i)
		for _, alias := range def.aliases {
			m[alias] = Field(i)
		}
	}
	return m
}()

// Fields returns every catalog field in declaration order.
func Fields() []Field {
	fields := make([]Field, len(catalog))
	for i := range catalog {
		fields[i] = Field(i)
	}
	return fields
}

// Lookup resolves a field name or one of its aliases.
func Lookup(name string) (Field, error) {
	f, ok := byName[name]
	if !ok {
		return 0, &FieldError{Name: name, Cause: ErrUnknownField}
	}
	return f, nil
}

// Value returns the named field of r. Integer fields are widened to float64.
func Value(r *Record, name string) (float64, error) {
	f, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return f.Get(r), nil
}

// Name returns the canonical field name.
func (f Field) Name() string { return catalog[f].name }

// Aliases returns the alternative names accepted for f.
func (f Field) Aliases() []string { return catalog[f].aliases }

// Unit returns what the field measures.
func (f Field) Unit() Unit { return catalog[f].unit }

// Column returns the zero-based CSV column the field is read from.
func (f Field) Column() int { return catalog[f].column }

// Get reads the field from r.
func (f Field) Get(r *Record) float64 { return catalog[f].get(r) }

// Set stores v into the field of r, truncating for integer fields.
func (f Field) Set(r *Record, v float64) { catalog[f].set(r, v) }

func (f Field) String() string {
	if f < 0 || int(f) >= len(catalog) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return catalog[f].name
}

// MinColumns is the number of columns a row needs to reach every field.
func MinColumns() int {
	n := StateColumn + 1
	for _, def := range catalog {
		if def.column+1 > n {
			n = def.column + 1
		}
	}
	return n
}
