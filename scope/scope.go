// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scope binds a segment of a schema to the universal timeline and
// validates dates against it.
//
// A [Scope] enforces the range a calendar supports, as opposed to the
// intrinsic limits of its schema, which are checked by a
// [schema.PreValidator]. Every validation method checks its fields in a fixed
// order, year first, then month, then day or day of the year, and reports the
// first violation as a *core.FieldError.
package scope

import (
	"fmt"

	"gonih.org/calendar/core"
	"gonih.org/calendar/schema"
	"gonih.org/calendar/segment"
)

// Policy selects how a Scope treats its lower bound.
type Policy int

const (
	// MinMaxYear scopes support whole years.
	MinMaxYear Policy = iota
	// BoundedBelow scopes start on an arbitrary day of their first year and
	// end on the last day of their last year.
	BoundedBelow
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case MinMaxYear:
		return "min-max-year"
	case BoundedBelow:
		return "bounded-below"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Year ranges of the most common scopes.
var (
	// StandardYears are the years from 1 to 9999.
	StandardYears = core.Range[int32]{Min: 1, Max: 9999}
	// ProlepticYears are the years from -9998 to 9999.
	ProlepticYears = core.Range[int32]{Min: -9998, Max: 9999}
)

// A Scope is an immutable segment of a schema with an epoch and a validation
// policy.
type Scope struct {
	schema  *schema.Schema
	pre     schema.PreValidator
	segment *segment.Segment
	epoch   core.DayNumber
	domain  core.Range[core.DayNumber]
	policy  Policy

	minYear, maxYear int32

	// Lower bound of a BoundedBelow scope.
	minMonth   core.MonthParts
	minDate    core.DateParts
	minOrdinal core.OrdinalParts
}

// New returns the scope of seg with the given epoch. The policy is derived
// from seg: if it starts at a year boundary, the scope is a MinMaxYear scope,
// otherwise it is a BoundedBelow scope. seg must end at a year boundary.
func New(epoch core.DayNumber, seg *segment.Segment) (*Scope, error) {
	if !seg.MaxIsEndOfYear() {
		return nil, fmt.Errorf("scope: segment %v does not end at the end of a year: %w", seg, core.ErrConfiguration)
	}
	days := seg.SupportedDays()
	lo, err := epoch.Add(days.Min)
	if err != nil {
		return nil, fmt.Errorf("scope: epoch %d: %w", epoch, err)
	}
	hi, err := epoch.Add(days.Max)
	if err != nil {
		return nil, fmt.Errorf("scope: epoch %d: %w", epoch, err)
	}

	years := seg.SupportedYears()
	sc := &Scope{
		schema:  seg.Schema(),
		pre:     seg.Schema().PreValidator(),
		segment: seg,
		epoch:   epoch,
		domain:  core.Range[core.DayNumber]{Min: lo, Max: hi},
		policy:  MinMaxYear,
		minYear: years.Min,
		maxYear: years.Max,
	}
	if !seg.MinIsStartOfYear() {
		sc.policy = BoundedBelow
		sc.minDate = seg.MinMaxDateParts().Lower
		sc.minMonth = sc.minDate.MonthParts()
		sc.minOrdinal = seg.MinMaxOrdinalParts().Lower
	}
	return sc, nil
}

// NewMinMaxYear returns a MinMaxYear scope of s supporting the given years.
func NewMinMaxYear(s *schema.Schema, epoch core.DayNumber, years core.Range[int32]) (*Scope, error) {
	seg, err := segment.FromYears(s, years)
	if err != nil {
		return nil, err
	}
	return New(epoch, seg)
}

// NewBoundedBelow returns a BoundedBelow scope of s starting at min and ending
// with maxYear.
func NewBoundedBelow(s *schema.Schema, epoch core.DayNumber, min core.DateParts, maxYear int32) (*Scope, error) {
	seg, err := segment.BoundedBelow(s, min, maxYear)
	if err != nil {
		return nil, err
	}
	return New(epoch, seg)
}

// NewStandard returns the scope of s supporting StandardYears.
func NewStandard(s *schema.Schema, epoch core.DayNumber) (*Scope, error) {
	return NewMinMaxYear(s, epoch, StandardYears)
}

// NewProleptic returns the scope of s supporting ProlepticYears.
func NewProleptic(s *schema.Schema, epoch core.DayNumber) (*Scope, error) {
	return NewMinMaxYear(s, epoch, ProlepticYears)
}

// Schema returns the schema of sc.
func (sc *Scope) Schema() *schema.Schema { return sc.schema }

// Segment returns the segment of sc.
func (sc *Scope) Segment() *segment.Segment { return sc.segment }

// Epoch returns the day number day zero of the schema corresponds to.
func (sc *Scope) Epoch() core.DayNumber { return sc.epoch }

// Domain returns the range of days supported by sc.
func (sc *Scope) Domain() core.Range[core.DayNumber] { return sc.domain }

// Policy returns the validation policy of sc.
func (sc *Scope) Policy() Policy { return sc.policy }

// MinYear returns the first year supported by sc, which may be partial.
func (sc *Scope) MinYear() int32 { return sc.minYear }

// MaxYear returns the last year supported by sc.
func (sc *Scope) MaxYear() int32 { return sc.maxYear }

// String implements fmt.Stringer.
func (sc *Scope) String() string {
	return fmt.Sprintf("%s scope %v", sc.policy, sc.segment)
}

// ValidateYear fails with core.YearOutOfRange unless y lies in
// [MinYear, MaxYear]. name overrides the field name of the error if it is not
// empty.
func (sc *Scope) ValidateYear(y int32, name string) error {
	if y < sc.minYear || y > sc.maxYear {
		return core.YearError(y, name)
	}
	return nil
}

// ValidateYearMonth validates the year, then the month. For BoundedBelow
// scopes, a month of the first year before the first supported month fails
// with core.MonthOutOfRange.
func (sc *Scope) ValidateYearMonth(y, m int32, name string) error {
	if err := sc.ValidateYear(y, name); err != nil {
		return err
	}
	if err := sc.pre.ValidateMonth(y, m, name); err != nil {
		return err
	}
	switch sc.policy {
	case BoundedBelow:
		if y == sc.minYear && (core.MonthParts{Year: y, Month: m}).Compare(sc.minMonth) < 0 {
			return core.MonthError(m, name)
		}
	}
	return nil
}

// ValidateYearMonthDay validates the year, then the month, then the day. For
// BoundedBelow scopes, a date of the first year before the first supported
// day fails with core.MonthOutOfRange if its month lies before the first
// supported month, and with core.DayOutOfRange otherwise.
func (sc *Scope) ValidateYearMonthDay(y, m, d int32, name string) error {
	if err := sc.ValidateYear(y, name); err != nil {
		return err
	}
	if err := sc.pre.ValidateMonthDay(y, m, d, name); err != nil {
		return err
	}
	switch sc.policy {
	case BoundedBelow:
		if y != sc.minYear {
			break
		}
		// Months first, so that a date in an unsupported month is
		// blamed on its month rather than on its day.
		if (core.MonthParts{Year: y, Month: m}).Compare(sc.minMonth) < 0 {
			return core.MonthError(m, name)
		}
		if (core.DateParts{Year: y, Month: m, Day: d}).Compare(sc.minDate) < 0 {
			return core.DayError(d, name)
		}
	}
	return nil
}

// ValidateOrdinal validates the year, then the day of the year. For
// BoundedBelow scopes, a day of the first year before the first supported day
// fails with core.DayOfYearOutOfRange.
func (sc *Scope) ValidateOrdinal(y, doy int32, name string) error {
	if err := sc.ValidateYear(y, name); err != nil {
		return err
	}
	if err := sc.pre.ValidateDayOfYear(y, doy, name); err != nil {
		return err
	}
	switch sc.policy {
	case BoundedBelow:
		if y == sc.minYear && (core.OrdinalParts{Year: y, DayOfYear: doy}).Compare(sc.minOrdinal) < 0 {
			return core.DayOfYearError(doy, name)
		}
	}
	return nil
}
