// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"gonih.org/calendar/core"
)

// A Date is a day of a Calendar.
//
// The zero value of Date is January 1st, 1 of the Gregorian calendar, which is
// the same day as the zero value of time.Time. Dates of the same calendar can
// be compared using ==, dates of different calendars using Compare.
type Date struct {
	cal  *Calendar
	days int32
}

// Calendar returns the calendar of d.
func (d Date) Calendar() *Calendar {
	if d.cal == nil {
		return gregorian
	}
	return d.cal
}

// DaysSinceEpoch returns the number of days between the epoch of the calendar
// of d and d.
func (d Date) DaysSinceEpoch() int32 { return d.days }

// DayNumber returns the day number of d, which identifies it independently of
// its calendar.
func (d Date) DayNumber() core.DayNumber {
	return d.Calendar().Epoch() + core.DayNumber(d.days)
}

// Date returns the year, month and day of d.
func (d Date) Date() (year, month, day int32) {
	p := d.Parts()
	return p.Year, p.Month, p.Day
}

// Parts returns the date parts of d.
func (d Date) Parts() core.DateParts {
	return d.Calendar().schema.GetDateParts(d.days)
}

// Ordinal returns the year and day of the year of d.
func (d Date) Ordinal() (year, dayOfYear int32) {
	return d.Calendar().schema.GetYear(d.days)
}

// OrdinalParts returns the ordinal parts of d.
func (d Date) OrdinalParts() core.OrdinalParts {
	return d.Calendar().schema.GetOrdinalParts(d.days)
}

// Year returns the year in which d occurs.
func (d Date) Year() int32 {
	y, _ := d.Ordinal()
	return y
}

// Month returns the month of the year specified by d.
func (d Date) Month() int32 {
	_, m, _ := d.Date()
	return m
}

// Day returns the day of the month specified by d.
func (d Date) Day() int32 {
	_, _, day := d.Date()
	return day
}

// DayOfYear returns the day of the year specified by d, counted from one.
func (d Date) DayOfYear() int32 {
	_, doy := d.Ordinal()
	return doy
}

// Weekday returns the day of the week specified by d.
func (d Date) Weekday() time.Weekday {
	return d.DayNumber().Weekday()
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs, in the
// Gregorian calendar. Week ranges from 1 to 53.
func (d Date) ISOWeek() (year, week int32) {
	// See this comment for an explanation:
	// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=544
	offset := time.Thursday - d.Weekday()
	if offset == 4 {
		offset = -3
	}
	n := int32(d.DayNumber()) + int32(offset)
	year, yday := gregorian.schema.GetYear(n)
	return year, (yday-1)/7 + 1
}

// IsIntercalary reports whether d was inserted into its year to keep the
// calendar aligned, like February 29th in the Gregorian calendar.
func (d Date) IsIntercalary() bool {
	y, m, day := d.Date()
	return d.Calendar().schema.IsIntercalaryDay(y, m, day)
}

// IsSupplementary reports whether d lies outside of the regular months of its
// year, like the epagomenal days of the Coptic calendar.
func (d Date) IsSupplementary() bool {
	y, m, day := d.Date()
	return d.Calendar().schema.IsSupplementaryDay(y, m, day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, on the same
// day as or after e. d and e may belong to different calendars.
func (d Date) Compare(e Date) int {
	switch dn, en := d.DayNumber(), e.DayNumber(); {
	case dn < en:
		return -1
	case dn > en:
		return 1
	}
	return 0
}

// Sub returns the number of days from e to d. d and e may belong to different
// calendars.
func (d Date) Sub(e Date) int64 {
	return int64(d.DayNumber()) - int64(e.DayNumber())
}

// with returns the date of the calendar of d with the given days since the
// epoch, failing with core.ErrOverflow if it is not supported.
func (d Date) with(days int64) (Date, error) {
	c := d.Calendar()
	if err := c.v.Days().CheckOverflow(days); err != nil {
		return Date{}, err
	}
	return c.date(int32(days)), nil
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int32) (Date, error) {
	return d.with(int64(d.days) + int64(n))
}

// AddMonths returns the date n months after d. If the day of the month of d
// does not exist in the resulting month, the result is truncated to the last
// day of that month. For example, adding a month to January 31st yields the
// last day of February.
func (d Date) AddMonths(n int32) (Date, error) {
	c := d.Calendar()
	y, m, day := d.Date()
	months := int64(c.schema.CountMonthsSinceEpoch(y, m)) + int64(n)
	if _, err := core.Narrow(months); err != nil {
		return Date{}, err
	}
	y, m = c.schema.GetMonthParts(int32(months))
	if err := c.v.Years().CheckOverflow(int64(y)); err != nil {
		return Date{}, err
	}
	day = min(day, c.schema.CountDaysInMonth(y, m))
	return d.with(int64(c.schema.CountDaysSinceEpoch(y, m, day)))
}

// AddYears returns the date n years after d. The month and the day are
// truncated like for AddMonths, if they do not exist in the resulting year.
func (d Date) AddYears(n int32) (Date, error) {
	c := d.Calendar()
	y, m, day := d.Date()
	ny := int64(y) + int64(n)
	if err := c.v.Years().CheckOverflow(ny); err != nil {
		return Date{}, err
	}
	y = int32(ny)
	m = min(m, c.schema.CountMonthsInYear(y))
	day = min(day, c.schema.CountDaysInMonth(y, m))
	return d.with(int64(c.schema.CountDaysSinceEpoch(y, m, day)))
}

// StartOfYear returns the first day of the year of d. It fails if that day is
// before the first date of the calendar.
func (d Date) StartOfYear() (Date, error) {
	return d.with(int64(d.Calendar().schema.GetStartOfYear(d.Year())))
}

// EndOfYear returns the last day of the year of d.
func (d Date) EndOfYear() (Date, error) {
	return d.with(int64(d.Calendar().schema.GetEndOfYear(d.Year())))
}

// StartOfMonth returns the first day of the month of d. It fails if that day
// is before the first date of the calendar.
func (d Date) StartOfMonth() (Date, error) {
	y, m, _ := d.Date()
	return d.with(int64(d.Calendar().schema.GetStartOfMonth(y, m)))
}

// EndOfMonth returns the last day of the month of d.
func (d Date) EndOfMonth() (Date, error) {
	y, m, _ := d.Date()
	return d.with(int64(d.Calendar().schema.GetEndOfMonth(y, m)))
}

// Next returns the first day strictly after d falling on wd.
func (d Date) Next(wd time.Weekday) (Date, error) {
	n, err := d.DayNumber().Next(wd)
	if err != nil {
		return Date{}, err
	}
	return d.Calendar().FromDayNumber(n)
}

// Previous returns the last day strictly before d falling on wd.
func (d Date) Previous(wd time.Weekday) (Date, error) {
	n, err := d.DayNumber().Previous(wd)
	if err != nil {
		return Date{}, err
	}
	return d.Calendar().FromDayNumber(n)
}

// In returns the date of c falling on the same day as d.
func (d Date) In(c *Calendar) (Date, error) {
	return c.FromDayNumber(d.DayNumber())
}

// Time returns the given moment in time in the given location on the day of
// d.
func (d Date) Time(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(1, 1, 1+int(d.DayNumber()), hour, min, sec, nsec, loc)
}

// String returns the date formatted as YYYY-MM-DD.
//
// The returned string is meant for debugging; for a stable serialized
// representation, use d.MarshalText or d.MarshalBinary.
func (d Date) String() string {
	return d.Format(RFC3339)
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source
// code.
func (d Date) GoString() string {
	y, m, day := d.Date()
	return fmt.Sprintf("calendar.MustLookup(%q).MustDate(%d, %d, %d)", d.Calendar().key, y, m, day)
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted as the key of its calendar, followed by a colon and the date in
// RFC3339 layout, for example "coptic:1712-06-17".
func (d Date) MarshalText() ([]byte, error) {
	return d.AppendFormat([]byte(d.Calendar().key+":"), RFC3339), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// the format produced by MarshalText. The calendar is looked up in the
// catalog. Without a key, the date is parsed as a Gregorian date.
func (d *Date) UnmarshalText(b []byte) error {
	c := gregorian
	s := string(b)
	if key, rest, ok := strings.Cut(s, ":"); ok {
		var err error
		if c, err = Lookup(key); err != nil {
			return err
		}
		s = rest
	}
	v, err := c.Parse(RFC3339, s)
	if err == nil {
		*d = v
	}
	return err
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date is
// represented as the length of the key of its calendar as a
// [binary.Uvarint], the key and the number of days since the epoch as a
// [binary.Varint].
func (d Date) MarshalBinary() ([]byte, error) {
	key := d.Calendar().key
	b := make([]byte, 0, 2*binary.MaxVarintLen32+len(key))
	b = binary.AppendUvarint(b, uint64(len(key)))
	b = append(b, key...)
	return binary.AppendVarint(b, int64(d.days)), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// calendar is looked up in the catalog.
func (d *Date) UnmarshalBinary(b []byte) error {
	n, i := binary.Uvarint(b)
	switch {
	case i == 0:
		return errors.New("encoded date truncated")
	case i < 0 || n > uint64(len(b)-i):
		return errors.New("encoded calendar key overflows input")
	}
	b = b[i:]
	key := string(b[:n])
	b = b[n:]
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded date truncated")
	case i < 0:
		return fmt.Errorf("encoded date overflows 64 bits: %w", core.ErrOverflow)
	case i != len(b):
		return errors.New("extra data after date")
	}
	days, err := core.Narrow(v)
	if err != nil {
		return err
	}
	c, err := Lookup(key)
	if err != nil {
		return err
	}
	nd, err := c.FromDaysSinceEpoch(days)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
