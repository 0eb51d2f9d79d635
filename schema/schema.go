// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"

	"gonih.org/calendar/core"
)

// Algorithm describes how a schema computes its dates.
type Algorithm int

const (
	// Arithmetic schemas use closed formulae.
	Arithmetic Algorithm = iota
	// Tabular schemas look their month and year lengths up in a table.
	Tabular
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Arithmetic:
		return "arithmetic"
	case Tabular:
		return "tabular"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Family describes which astronomical cycles a schema follows.
type Family int

const (
	Other Family = iota
	Solar
	Lunar
	Lunisolar
)

// String implements fmt.Stringer.
func (f Family) String() string {
	switch f {
	case Other:
		return "other"
	case Solar:
		return "solar"
	case Lunar:
		return "lunar"
	case Lunisolar:
		return "lunisolar"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Adjustments describes the periodic adjustments a schema makes to keep in
// sync with its cycles.
type Adjustments int

const (
	// NoAdjustment means that all years have the same structure.
	NoAdjustment Adjustments = 0
	// DayAdjustment means that some years have an intercalary day.
	DayAdjustment Adjustments = 1
	// MonthAdjustment means that some years have an intercalary month.
	MonthAdjustment Adjustments = 2
)

// String implements fmt.Stringer.
func (a Adjustments) String() string {
	switch a {
	case NoAdjustment:
		return "none"
	case DayAdjustment:
		return "days"
	case MonthAdjustment:
		return "months"
	case DayAdjustment | MonthAdjustment:
		return "days and months"
	}
	return fmt.Sprintf("Adjustments(%d)", int(a))
}

// DefaultSupportedYears is the year range of all schemas in this package.
// Within it, no computation of a schema overflows an int32.
var DefaultSupportedYears = core.Range[int32]{Min: -999_998, Max: 999_999}

// Info describes the metadata of a schema.
type Info struct {
	// Name identifies the schema in error messages and listings.
	Name        string
	Algorithm   Algorithm
	Family      Family
	Adjustments Adjustments
	// MinDaysInYear and MinDaysInMonth are lower bounds for
	// CountDaysInYear and CountDaysInMonth. They must be positive.
	MinDaysInYear  int32
	MinDaysInMonth int32
	// SupportedYears is the range of years for which the kernel is
	// guaranteed not to overflow.
	SupportedYears core.Range[int32]
}

// A Schema binds a Kernel to its metadata. A Schema is immutable and safe for
// concurrent use.
//
// The embedded Kernel's methods are promoted, so they can be called directly
// on the Schema. Like the kernel, they do not validate their arguments.
type Schema struct {
	Kernel
	info Info
	pre  PreValidator
}

// New returns a Schema for k. It fails with core.ErrConfiguration if info is
// inconsistent.
func New(k Kernel, info Info) (*Schema, error) {
	if k == nil {
		return nil, fmt.Errorf("schema %q: %w: nil kernel", info.Name, core.ErrConfiguration)
	}
	if info.MinDaysInYear <= 0 || info.MinDaysInMonth <= 0 {
		return nil, fmt.Errorf("schema %q: %w: minimum lengths must be positive", info.Name, core.ErrConfiguration)
	}
	if info.MinDaysInMonth > info.MinDaysInYear {
		return nil, fmt.Errorf("schema %q: %w: months can not be longer than years", info.Name, core.ErrConfiguration)
	}
	if y := info.SupportedYears; y.Min > y.Max {
		return nil, fmt.Errorf("schema %q: %w: empty year range %v", info.Name, core.ErrConfiguration, y)
	}
	s := &Schema{Kernel: k, info: info}
	s.pre = PreValidator{s: s}
	return s, nil
}

func mustNew(k Kernel, info Info) *Schema {
	s, err := New(k, info)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the name of s.
func (s *Schema) Name() string { return s.info.Name }

// Algorithm returns the algorithm used by s.
func (s *Schema) Algorithm() Algorithm { return s.info.Algorithm }

// Family returns the family of s.
func (s *Schema) Family() Family { return s.info.Family }

// Adjustments returns the periodic adjustments of s.
func (s *Schema) Adjustments() Adjustments { return s.info.Adjustments }

// MinDaysInYear returns the minimum number of days in a year.
func (s *Schema) MinDaysInYear() int32 { return s.info.MinDaysInYear }

// MinDaysInMonth returns the minimum number of days in a month.
func (s *Schema) MinDaysInMonth() int32 { return s.info.MinDaysInMonth }

// SupportedYears returns the range of years s can compute with.
func (s *Schema) SupportedYears() core.Range[int32] { return s.info.SupportedYears }

// PreValidator returns the validator checking dates against the intrinsic
// limits of s.
func (s *Schema) PreValidator() PreValidator { return s.pre }

// String implements fmt.Stringer.
func (s *Schema) String() string { return s.info.Name }

// CountDaysSinceEpoch returns the number of days from the epoch to the given
// date.
func (s *Schema) CountDaysSinceEpoch(y, m, d int32) int32 {
	return s.CountDaysBeforeYear(y) + s.CountDaysInYearBeforeMonth(y, m) + d - 1
}

// CountDaysSinceEpochOrdinal returns the number of days from the epoch to the
// given ordinal date.
func (s *Schema) CountDaysSinceEpochOrdinal(y, doy int32) int32 {
	return s.CountDaysBeforeYear(y) + doy - 1
}

// GetDateParts returns the date of the given day.
func (s *Schema) GetDateParts(daysSinceEpoch int32) core.DateParts {
	y, doy := s.GetYear(daysSinceEpoch)
	m, d := s.GetMonth(y, doy)
	return core.DateParts{Year: y, Month: m, Day: d}
}

// GetOrdinalParts returns the ordinal date of the given day.
func (s *Schema) GetOrdinalParts(daysSinceEpoch int32) core.OrdinalParts {
	y, doy := s.GetYear(daysSinceEpoch)
	return core.OrdinalParts{Year: y, DayOfYear: doy}
}

// GetDayOfYear returns the day of the year of the given date.
func (s *Schema) GetDayOfYear(y, m, d int32) int32 {
	return s.CountDaysInYearBeforeMonth(y, m) + d
}

// GetStartOfYear returns the first day of y.
func (s *Schema) GetStartOfYear(y int32) int32 {
	return s.CountDaysBeforeYear(y)
}

// GetEndOfYear returns the last day of y.
func (s *Schema) GetEndOfYear(y int32) int32 {
	return s.CountDaysBeforeYear(y) + s.CountDaysInYear(y) - 1
}

// GetStartOfMonth returns the first day of month m of y.
func (s *Schema) GetStartOfMonth(y, m int32) int32 {
	return s.CountDaysSinceEpoch(y, m, 1)
}

// GetEndOfMonth returns the last day of month m of y.
func (s *Schema) GetEndOfMonth(y, m int32) int32 {
	return s.CountDaysSinceEpoch(y, m, s.CountDaysInMonth(y, m))
}

// GetEndOfYearParts returns the date of the last day of y.
func (s *Schema) GetEndOfYearParts(y int32) core.DateParts {
	m := s.CountMonthsInYear(y)
	return core.DateParts{Year: y, Month: m, Day: s.CountDaysInMonth(y, m)}
}

// CountDaysInYearAfter returns the number of days in y after the given date.
func (s *Schema) CountDaysInYearAfter(y, m, d int32) int32 {
	return s.CountDaysInYear(y) - s.GetDayOfYear(y, m, d)
}

// CountDaysInMonthAfter returns the number of days in the month after the
// given date.
func (s *Schema) CountDaysInMonthAfter(y, m, d int32) int32 {
	return s.CountDaysInMonth(y, m) - d
}
