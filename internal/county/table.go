package county

import "fmt"

// DefaultCapacity is the number of records a Table holds unless configured otherwise.
const DefaultCapacity = 10000

// Table is the ordered working set of records. Filters shrink it in place
// and keep the relative order of what they retain.
type Table struct {
	records  []Record
	capacity int
}

// NewTable creates an empty table that holds at most capacity records.
// A non-positive capacity selects DefaultCapacity.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{capacity: capacity}
}

// Add appends r. It fails with ErrCapacityExceeded once the table is full.
func (t *Table) Add(r Record) error {
	if len(t.records) >= t.capacity {
		return fmt.Errorf("%w (max %d reached)", ErrCapacityExceeded, t.capacity)
	}
	t.records = append(t.records, r)
	return nil
}

// Len returns the number of records in the table.
func (t *Table) Len() int { return len(t.records) }

// Cap returns the maximum number of records the table accepts.
func (t *Table) Cap() int { return t.capacity }

// Records returns the current records. The slice is only valid until the
// next filter and must not be modified.
func (t *Table) Records() []Record { return t.records }

// Retain keeps the records for which keep returns true and returns the new size.
func (t *Table) Retain(keep func(*Record) bool) int {
	n := 0
	for i := range t.records {
		if keep(&t.records[i]) {
			t.records[n] = t.records[i]
			n++
		}
	}
	clear(t.records[n:])
	t.records = t.records[:n]
	return n
}

// FilterState keeps only records whose state code equals state exactly.
func (t *Table) FilterState(state string) int {
	return t.Retain(func(r *Record) bool { return r.State == state })
}

// FilterField keeps the records whose field f satisfies cmp against threshold.
func (t *Table) FilterField(f Field, cmp Comparison, threshold float64) int {
	return t.Retain(func(r *Record) bool { return cmp.Holds(f.Get(r), threshold) })
}

// FilterByName resolves name and op and applies FilterField. An unknown
// field or operator matches no record: the table is emptied and the
// lookup error is returned alongside the new size.
func (t *Table) FilterByName(name, op string, threshold float64) (int, error) {
	f, err := Lookup(name)
	if err != nil {
		return t.Retain(func(*Record) bool { return false }), err
	}
	cmp, err := ParseComparison(op)
	if err != nil {
		return t.Retain(func(*Record) bool { return false }), err
	}
	return t.FilterField(f, cmp, threshold), nil
}

// TotalPopulation sums the 2014 population of every record.
func (t *Table) TotalPopulation() int64 {
	var total int64
	for i := range t.records {
		total += int64(t.records[i].Population2014)
	}
	return total
}

// SubPopulation estimates the number of people counted by the percentage
// field name across the table.
func (t *Table) SubPopulation(name string) (float64, error) {
	f, err := percentField(name)
	if err != nil {
		return 0, err
	}
	var total float64
	for i := range t.records {
		r := &t.records[i]
		total += float64(r.Population2014) * f.Get(r) / 100
	}
	return total, nil
}

// Percent returns SubPopulation(name) as a percentage of TotalPopulation.
func (t *Table) Percent(name string) (float64, error) {
	sub, err := t.SubPopulation(name)
	if err != nil {
		return 0, err
	}
	total := t.TotalPopulation()
	if total == 0 {
		return 0, ErrZeroPopulation
	}
	return sub / float64(total) * 100, nil
}

func percentField(name string) (Field, error) {
	f, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	if f.Unit() != Percent {
		return 0, &FieldError{Name: name, Cause: ErrNotPercentage}
	}
	return f, nil
}
