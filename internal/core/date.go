package core

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time or zone component. The zero value is
// an invalid, unset date.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate builds a Date, normalizing out-of-range components the way
// time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{y: t.Year(), m: t.Month(), d: t.Day()}
}

// Today returns the current date in local time.
func Today() Date {
	now := time.Now()
	return Date{y: now.Year(), m: now.Month(), d: now.Day()}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{y: t.Year(), m: t.Month(), d: t.Day()}, nil
}

// MustParseDate is like ParseDate but panics on error. Test helper.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero reports whether d is the unset zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.y != o.y {
		return d.y < o.y
	}
	if d.m != o.m {
		return d.m < o.m
	}
	return d.d < o.d
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool { return o.Before(d) }

// Equal reports whether d and o are the same calendar day.
func (d Date) Equal(o Date) bool { return d == o }

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return NewDate(d.y, d.m, d.d+n)
}

// AddMonths advances by whole months, clamping the day when the target month
// is shorter: January 31 plus one month is the last day of February.
func (d Date) AddMonths(n int) Date {
	first := NewDate(d.y, d.m+time.Month(n), 1)
	day := d.d
	if max := daysIn(first.y, first.m); day > max {
		day = max
	}
	return Date{y: first.y, m: first.m, d: day}
}

// AddYears advances by whole years, clamping February 29 to February 28 in
// non-leap years.
func (d Date) AddYears(n int) Date {
	day := d.d
	if max := daysIn(d.y+n, d.m); day > max {
		day = max
	}
	return Date{y: d.y + n, m: d.m, d: day}
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date { return Date{y: d.y, m: d.m, d: 1} }

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date { return Date{y: d.y, m: d.m, d: daysIn(d.y, d.m)} }

// daysIn counts the days in a month via day zero of the following month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.y, int(d.m), d.d)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
