// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package segment computes the range of days a calendar supports.
//
// A [Segment] is a contiguous interval of days of a schema, described in every
// representation the schema knows about: days and months since the epoch,
// date parts and ordinal parts. Segments are built with a [Builder], which
// derives all representations from the requested bounds through the schema
// itself, so that they always agree.
package segment

import (
	"fmt"

	"gonih.org/calendar/core"
	"gonih.org/calendar/schema"
)

// A Segment is an immutable interval of days of a schema.
type Segment struct {
	schema *schema.Schema

	years    core.Range[int32]
	days     core.Range[int32]
	months   core.Range[int32]
	parts    core.OrderedPair[core.DateParts]
	ordinals core.OrderedPair[core.OrdinalParts]

	minIsStartOfYear bool
	maxIsEndOfYear   bool
}

// Schema returns the schema s is a segment of.
func (s *Segment) Schema() *schema.Schema { return s.schema }

// SupportedYears returns the range of years overlapping s. The first and last
// year may be only partially supported, see IsComplete.
func (s *Segment) SupportedYears() core.Range[int32] { return s.years }

// SupportedDays returns the range of days since the epoch in s.
func (s *Segment) SupportedDays() core.Range[int32] { return s.days }

// SupportedMonths returns the range of months since the epoch overlapping s.
func (s *Segment) SupportedMonths() core.Range[int32] { return s.months }

// MinMaxDateParts returns the first and last day of s as date parts.
func (s *Segment) MinMaxDateParts() core.OrderedPair[core.DateParts] { return s.parts }

// MinMaxOrdinalParts returns the first and last day of s as ordinal parts.
func (s *Segment) MinMaxOrdinalParts() core.OrderedPair[core.OrdinalParts] { return s.ordinals }

// MinIsStartOfYear reports whether s was explicitly requested to start on the
// first day of a year.
func (s *Segment) MinIsStartOfYear() bool { return s.minIsStartOfYear }

// MaxIsEndOfYear reports whether s was explicitly requested to end on the last
// day of a year.
func (s *Segment) MaxIsEndOfYear() bool { return s.maxIsEndOfYear }

// IsComplete reports whether s consists of whole years. It is only true if
// both bounds were requested as year boundaries; a minimum given as a date
// that happens to be the first day of its year does not count.
func (s *Segment) IsComplete() bool { return s.minIsStartOfYear && s.maxIsEndOfYear }

// String implements fmt.Stringer.
func (s *Segment) String() string {
	return fmt.Sprintf("%s%v", s.schema, s.parts)
}

// FromYears returns the segment of all days in the given years.
func FromYears(sch *schema.Schema, years core.Range[int32]) (*Segment, error) {
	b := NewBuilder(sch)
	if err := b.SetSupportedYears(years); err != nil {
		return nil, err
	}
	return b.Build()
}

// BoundedBelow returns the segment of all days from min up to the end of
// maxYear.
func BoundedBelow(sch *schema.Schema, min core.DateParts, maxYear int32) (*Segment, error) {
	b := NewBuilder(sch)
	if err := b.SetMinDateParts(min); err != nil {
		return nil, err
	}
	if err := b.SetMaxToEndOfYear(maxYear); err != nil {
		return nil, err
	}
	return b.Build()
}
