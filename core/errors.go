// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	_ Kind = iota
	// YearOutOfRange reports a year outside the range enforced by the
	// validator that raised it.
	YearOutOfRange
	// MonthOutOfRange reports a month outside [1, CountMonthsInYear(year)],
	// or before the first supported month of a scope.
	MonthOutOfRange
	// DayOutOfRange reports a day outside [1, CountDaysInMonth(year, month)],
	// or before the first supported day of a scope.
	DayOutOfRange
	// DayOfYearOutOfRange reports a day of the year outside
	// [1, CountDaysInYear(year)], or before the first supported day of a
	// scope.
	DayOfYearOutOfRange
	// Overflow reports an arithmetic result that can not be represented, or
	// that lies outside the domain of a calendar.
	Overflow
	// Configuration reports an inconsistent range or schema description.
	Configuration
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case YearOutOfRange:
		return "year out of range"
	case MonthOutOfRange:
		return "month out of range"
	case DayOutOfRange:
		return "day out of range"
	case DayOfYearOutOfRange:
		return "day-of-year out of range"
	case Overflow:
		return "arithmetic overflow"
	case Configuration:
		return "invalid configuration"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors, one per Kind. A *FieldError matches the sentinel of its
// Kind under errors.Is.
var (
	ErrYearOutOfRange      = errors.New("calendar: " + YearOutOfRange.String())
	ErrMonthOutOfRange     = errors.New("calendar: " + MonthOutOfRange.String())
	ErrDayOutOfRange       = errors.New("calendar: " + DayOutOfRange.String())
	ErrDayOfYearOutOfRange = errors.New("calendar: " + DayOfYearOutOfRange.String())
	ErrOverflow            = errors.New("calendar: " + Overflow.String())
	ErrConfiguration       = errors.New("calendar: " + Configuration.String())
)

// Default field names used when a validator is not given an explicit name.
const (
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldDay       = "day"
	FieldDayOfYear = "dayOfYear"
)

// FieldError is returned by validators. It names the offending field and
// carries its value.
type FieldError struct {
	Kind  Kind
	Field string
	Value int32
}

// Error implements error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("calendar: %s: %s = %d", e.Kind, e.Field, e.Value)
}

// Is reports whether target is the sentinel error for e.Kind.
func (e *FieldError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case YearOutOfRange:
		return ErrYearOutOfRange
	case MonthOutOfRange:
		return ErrMonthOutOfRange
	case DayOutOfRange:
		return ErrDayOutOfRange
	case DayOfYearOutOfRange:
		return ErrDayOfYearOutOfRange
	case Overflow:
		return ErrOverflow
	case Configuration:
		return ErrConfiguration
	}
	return nil
}

// KindOf returns the Kind of err, or zero if err does not match any of the
// sentinel errors of this package.
func KindOf(err error) Kind {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	for k := YearOutOfRange; k <= Configuration; k++ {
		if errors.Is(err, k.sentinel()) {
			return k
		}
	}
	return 0
}

func fieldError(k Kind, name, def string, v int32) error {
	if name == "" {
		name = def
	}
	return &FieldError{Kind: k, Field: name, Value: v}
}

// YearError returns a YearOutOfRange error for v. name overrides the field
// name if it is not empty.
func YearError(v int32, name string) error {
	return fieldError(YearOutOfRange, name, FieldYear, v)
}

// MonthError returns a MonthOutOfRange error for v. name overrides the field
// name if it is not empty.
func MonthError(v int32, name string) error {
	return fieldError(MonthOutOfRange, name, FieldMonth, v)
}

// DayError returns a DayOutOfRange error for v. name overrides the field name
// if it is not empty.
func DayError(v int32, name string) error {
	return fieldError(DayOutOfRange, name, FieldDay, v)
}

// DayOfYearError returns a DayOfYearOutOfRange error for v. name overrides
// the field name if it is not empty.
func DayOfYearError(v int32, name string) error {
	return fieldError(DayOfYearOutOfRange, name, FieldDayOfYear, v)
}
