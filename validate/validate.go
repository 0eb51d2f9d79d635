// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate composes scopes into the validators used by calendars.
//
// A [Validator] checks year/month/day triples and ordinal dates. The
// validators in this package do not add any rules of their own: [Parts]
// builds date values after checking them with a Validator, [Days],
// [Years] and [DayNumbers] check flat ranges and [Calendar] bundles all of
// them for a [scope.Scope].
package validate

import (
	"gonih.org/calendar/core"
	"gonih.org/calendar/scope"
)

// A Validator checks dates field by field, in the order year, month, day (or
// day of the year), and reports the first violation as a *core.FieldError. A
// non-empty name overrides the field name of the error.
//
// *scope.Scope implements Validator.
type Validator interface {
	ValidateYearMonth(y, m int32, name string) error
	ValidateYearMonthDay(y, m, d int32, name string) error
	ValidateOrdinal(y, doy int32, name string) error
}

var _ Validator = (*scope.Scope)(nil)

// Parts constructs date parts which are valid under a Validator.
type Parts struct {
	v Validator
}

// NewParts returns a Parts for v.
func NewParts(v Validator) Parts {
	return Parts{v: v}
}

// DateParts returns the date parts (y, m, d), if they are valid.
func (p Parts) DateParts(y, m, d int32) (core.DateParts, error) {
	if err := p.v.ValidateYearMonthDay(y, m, d, ""); err != nil {
		return core.DateParts{}, err
	}
	return core.DateParts{Year: y, Month: m, Day: d}, nil
}

// OrdinalParts returns the ordinal parts (y, doy), if they are valid.
func (p Parts) OrdinalParts(y, doy int32) (core.OrdinalParts, error) {
	if err := p.v.ValidateOrdinal(y, doy, ""); err != nil {
		return core.OrdinalParts{}, err
	}
	return core.OrdinalParts{Year: y, DayOfYear: doy}, nil
}

// MonthParts returns the month parts (y, m), if they are valid.
func (p Parts) MonthParts(y, m int32) (core.MonthParts, error) {
	if err := p.v.ValidateYearMonth(y, m, ""); err != nil {
		return core.MonthParts{}, err
	}
	return core.MonthParts{Year: y, Month: m}, nil
}

// Calendar is the validator of a calendar. It checks dates through its scope
// and day counts against the segment of the scope.
type Calendar struct {
	*scope.Scope
	parts      Parts
	days       Days
	years      Years
	dayNumbers DayNumbers
}

// New returns the validator of sc.
func New(sc *scope.Scope) *Calendar {
	seg := sc.Segment()
	return &Calendar{
		Scope:      sc,
		parts:      NewParts(sc),
		days:       Days{r: seg.SupportedDays()},
		years:      Years{r: seg.SupportedYears()},
		dayNumbers: DayNumbers{r: sc.Domain()},
	}
}

// Parts returns the parts factory of c.
func (c *Calendar) Parts() Parts { return c.parts }

// Days returns the validator of days since the epoch of c.
func (c *Calendar) Days() Days { return c.days }

// Years returns the validator of the years of c.
func (c *Calendar) Years() Years { return c.years }

// DayNumbers returns the validator of the domain of c.
func (c *Calendar) DayNumbers() DayNumbers { return c.dayNumbers }
