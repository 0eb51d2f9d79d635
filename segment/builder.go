// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"errors"
	"fmt"

	"gonih.org/calendar/core"
	"gonih.org/calendar/schema"
)

var (
	// ErrMinNotSet is returned by Build if no lower bound was set.
	ErrMinNotSet = fmt.Errorf("segment: lower bound not set: %w", core.ErrConfiguration)
	// ErrMaxNotSet is returned by Build if no upper bound was set.
	ErrMaxNotSet = fmt.Errorf("segment: upper bound not set: %w", core.ErrConfiguration)
	// ErrEmpty is returned by Build if the lower bound lies after the upper
	// bound.
	ErrEmpty = fmt.Errorf("segment: lower bound after upper bound: %w", core.ErrConfiguration)
)

// endpoint is one bound of a segment, in all representations.
type endpoint struct {
	days     int32
	parts    core.DateParts
	ordinal  core.OrdinalParts
	boundary bool
}

// A Builder builds a Segment from a lower and an upper bound. Each bound can be
// given in any representation; the last call for a bound wins.
//
// Every setter validates its argument against the schema immediately and
// leaves the builder unchanged on failure. A request outside the supported
// years of the schema is never clamped; it fails with an error matching
// core.ErrConfiguration.
type Builder struct {
	s        *schema.Schema
	min, max *endpoint
}

// NewBuilder returns a Builder for segments of s.
func NewBuilder(s *schema.Schema) *Builder {
	return &Builder{s: s}
}

// SetMinToStartOfYear sets the lower bound to the first day of y.
func (b *Builder) SetMinToStartOfYear(y int32) error {
	if err := b.checkYear(y); err != nil {
		return err
	}
	b.min = b.fromDateParts(core.DateParts{Year: y, Month: 1, Day: 1})
	b.min.boundary = true
	return nil
}

// SetMaxToEndOfYear sets the upper bound to the last day of y.
func (b *Builder) SetMaxToEndOfYear(y int32) error {
	if err := b.checkYear(y); err != nil {
		return err
	}
	b.max = b.fromDateParts(b.s.GetEndOfYearParts(y))
	b.max.boundary = true
	return nil
}

// SetSupportedYears sets the bounds to the first day of years.Min and the last
// day of years.Max.
func (b *Builder) SetSupportedYears(years core.Range[int32]) error {
	if years.Min > years.Max {
		return fmt.Errorf("segment: years %v: %w", years, ErrEmpty)
	}
	if !years.IsSubsetOf(b.s.SupportedYears()) {
		return fmt.Errorf("segment: years %v outside %v supported by %s: %w", years, b.s.SupportedYears(), b.s, core.ErrConfiguration)
	}
	if err := b.SetMinToStartOfYear(years.Min); err != nil {
		return err
	}
	return b.SetMaxToEndOfYear(years.Max)
}

// SetMinDateParts sets the lower bound to p.
func (b *Builder) SetMinDateParts(p core.DateParts) error {
	if err := b.checkDateParts(p); err != nil {
		return err
	}
	b.min = b.fromDateParts(p)
	return nil
}

// SetMaxDateParts sets the upper bound to p.
func (b *Builder) SetMaxDateParts(p core.DateParts) error {
	if err := b.checkDateParts(p); err != nil {
		return err
	}
	b.max = b.fromDateParts(p)
	return nil
}

// SetMinOrdinalParts sets the lower bound to p.
func (b *Builder) SetMinOrdinalParts(p core.OrdinalParts) error {
	if err := b.checkOrdinalParts(p); err != nil {
		return err
	}
	b.min = b.fromDays(b.s.CountDaysSinceEpochOrdinal(p.Year, p.DayOfYear))
	return nil
}

// SetMaxOrdinalParts sets the upper bound to p.
func (b *Builder) SetMaxOrdinalParts(p core.OrdinalParts) error {
	if err := b.checkOrdinalParts(p); err != nil {
		return err
	}
	b.max = b.fromDays(b.s.CountDaysSinceEpochOrdinal(p.Year, p.DayOfYear))
	return nil
}

// SetMinDaysSinceEpoch sets the lower bound to the given day.
func (b *Builder) SetMinDaysSinceEpoch(days int32) error {
	if err := b.checkDays(days); err != nil {
		return err
	}
	b.min = b.fromDays(days)
	return nil
}

// SetMaxDaysSinceEpoch sets the upper bound to the given day.
func (b *Builder) SetMaxDaysSinceEpoch(days int32) error {
	if err := b.checkDays(days); err != nil {
		return err
	}
	b.max = b.fromDays(days)
	return nil
}

// Build returns the segment between the two bounds.
func (b *Builder) Build() (*Segment, error) {
	switch {
	case b.min == nil:
		return nil, ErrMinNotSet
	case b.max == nil:
		return nil, ErrMaxNotSet
	case b.min.days > b.max.days:
		return nil, fmt.Errorf("segment: %v > %v: %w", b.min.parts, b.max.parts, ErrEmpty)
	}
	lo, hi := b.min, b.max
	return &Segment{
		schema: b.s,
		years:  core.Range[int32]{Min: lo.parts.Year, Max: hi.parts.Year},
		days:   core.Range[int32]{Min: lo.days, Max: hi.days},
		months: core.Range[int32]{
			Min: b.s.CountMonthsSinceEpoch(lo.parts.Year, lo.parts.Month),
			Max: b.s.CountMonthsSinceEpoch(hi.parts.Year, hi.parts.Month),
		},
		parts:            core.OrderedPair[core.DateParts]{Lower: lo.parts, Upper: hi.parts},
		ordinals:         core.OrderedPair[core.OrdinalParts]{Lower: lo.ordinal, Upper: hi.ordinal},
		minIsStartOfYear: lo.boundary,
		maxIsEndOfYear:   hi.boundary,
	}, nil
}

func (b *Builder) fromDateParts(p core.DateParts) *endpoint {
	return &endpoint{
		days:    b.s.CountDaysSinceEpoch(p.Year, p.Month, p.Day),
		parts:   p,
		ordinal: core.OrdinalParts{Year: p.Year, DayOfYear: b.s.GetDayOfYear(p.Year, p.Month, p.Day)},
	}
}

func (b *Builder) fromDays(days int32) *endpoint {
	return &endpoint{
		days:    days,
		parts:   b.s.GetDateParts(days),
		ordinal: b.s.GetOrdinalParts(days),
	}
}

func (b *Builder) checkYear(y int32) error {
	if err := b.s.PreValidator().ValidateYear(y, ""); err != nil {
		return b.configError(err)
	}
	return nil
}

func (b *Builder) checkDateParts(p core.DateParts) error {
	if err := b.s.PreValidator().ValidateDateParts(p, ""); err != nil {
		return b.configError(err)
	}
	return nil
}

func (b *Builder) checkOrdinalParts(p core.OrdinalParts) error {
	if err := b.s.PreValidator().ValidateOrdinalParts(p, ""); err != nil {
		return b.configError(err)
	}
	return nil
}

func (b *Builder) checkDays(days int32) error {
	years := b.s.SupportedYears()
	lo, hi := b.s.GetStartOfYear(years.Min), b.s.GetEndOfYear(years.Max)
	if days < lo || days > hi {
		return fmt.Errorf("segment: day %d outside [%d, %d] supported by %s: %w", days, lo, hi, b.s, core.ErrConfiguration)
	}
	return nil
}

// configError marks a validation failure of a requested bound as a
// configuration error, while keeping the field error accessible.
func (b *Builder) configError(err error) error {
	var fe *core.FieldError
	if !errors.As(err, &fe) {
		return err
	}
	return fmt.Errorf("segment: bound not supported by %s: %w: %w", b.s, core.ErrConfiguration, err)
}
