package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// naToken is the literal the source CSVs use for missing values.
const naToken = "NA"

const gameDateLayout = "01/02/2006"

func isNA(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || trimmed == naToken
}

// Category is a string column declared categorical for its dataset. The
// loader interns category values and reports the level set per column.
type Category string

func (c Category) String() string { return string(c) }

// UnmarshalCSV maps NA to the empty category.
func (c *Category) UnmarshalCSV(raw string) error {
	if isNA(raw) {
		*c = ""
		return nil
	}
	*c = Category(strings.TrimSpace(raw))
	return nil
}

// MarshalCSV renders the empty category as NA.
func (c Category) MarshalCSV() (string, error) {
	if c == "" {
		return naToken, nil
	}
	return string(c), nil
}

// NullInt64 is an integer column that may hold NA.
type NullInt64 struct {
	Int64 int64
	Valid bool
}

// Int returns a valid NullInt64.
func Int(v int64) NullInt64 { return NullInt64{Int64: v, Valid: true} }

func (n *NullInt64) UnmarshalCSV(raw string) error {
	if isNA(raw) {
		*n = NullInt64{}
		return nil
	}
	trimmed := strings.TrimSpace(raw)
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		// Some exports write integral columns as floats ("52.0").
		f, ferr := strconv.ParseFloat(trimmed, 64)
		if ferr != nil || f != float64(int64(f)) {
			return fmt.Errorf("parse integer %q: %w", raw, err)
		}
		v = int64(f)
	}
	*n = NullInt64{Int64: v, Valid: true}
	return nil
}

func (n NullInt64) MarshalCSV() (string, error) {
	if !n.Valid {
		return naToken, nil
	}
	return strconv.FormatInt(n.Int64, 10), nil
}

// NullFloat64 is a float column that may hold NA.
type NullFloat64 struct {
	Float64 float64
	Valid   bool
}

// Float returns a valid NullFloat64.
func Float(v float64) NullFloat64 { return NullFloat64{Float64: v, Valid: true} }

func (n *NullFloat64) UnmarshalCSV(raw string) error {
	if isNA(raw) {
		*n = NullFloat64{}
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("parse float %q: %w", raw, err)
	}
	*n = NullFloat64{Float64: v, Valid: true}
	return nil
}

func (n NullFloat64) MarshalCSV() (string, error) {
	if !n.Valid {
		return naToken, nil
	}
	return strconv.FormatFloat(n.Float64, 'f', -1, 64), nil
}

// Date is a calendar date parsed from the MM/DD/YYYY game date column.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalCSV(raw string) error {
	if isNA(raw) {
		d.Time = time.Time{}
		return nil
	}
	trimmed := strings.TrimSpace(raw)
	parsed, err := time.Parse(gameDateLayout, trimmed)
	if err != nil {
		// Fall back to ISO dates, which some seasons use.
		iso, isoErr := time.Parse(time.DateOnly, trimmed)
		if isoErr != nil {
			return fmt.Errorf("parse date %q: %w", raw, err)
		}
		parsed = iso
	}
	d.Time = parsed
	return nil
}

func (d Date) MarshalCSV() (string, error) {
	if d.IsZero() {
		return naToken, nil
	}
	return d.Format(gameDateLayout), nil
}
