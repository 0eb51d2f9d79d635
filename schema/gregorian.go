// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

// Computations on years are adapted from the standard library. See this
// comment for explanations:
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=353

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400, and years before it will not compute correctly, but
	// otherwise can be changed at will. It lies well below
	// DefaultSupportedYears.Min.
	absoluteZeroYear = -1_199_999

	// The year of day zero.
	internalYear = 1

	// Offsets to convert between internal or absolute days.
	absoluteToInternal = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsolute = -absoluteToInternal

	// Days in a given period of years.
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// GregorianKernel is the kernel of the proleptic Gregorian calendar. It is
// exported so that user-defined kernels can embed its year arithmetic.
type GregorianKernel struct{}

var gregorian = mustNew(GregorianKernel{}, Info{
	Name:           "gregorian",
	Algorithm:      Arithmetic,
	Family:         Solar,
	Adjustments:    DayAdjustment,
	MinDaysInYear:  365,
	MinDaysInMonth: 28,
	SupportedYears: DefaultSupportedYears,
})

// Gregorian returns the schema of the proleptic Gregorian calendar.
func Gregorian() *Schema { return gregorian }

// IsGregorianLeapYear reports whether y is a leap year under the Gregorian
// rule.
func IsGregorianLeapYear(y int32) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func (GregorianKernel) IsLeapYear(y int32) bool { return IsGregorianLeapYear(y) }

func (GregorianKernel) IsIntercalaryMonth(y, m int32) bool { return false }

func (GregorianKernel) IsIntercalaryDay(y, m, d int32) bool { return m == 2 && d == 29 }

func (GregorianKernel) IsSupplementaryDay(y, m, d int32) bool { return false }

func (GregorianKernel) CountMonthsInYear(y int32) int32 { return 12 }

func (GregorianKernel) CountDaysInYear(y int32) int32 {
	if IsGregorianLeapYear(y) {
		return 366
	}
	return 365
}

func (GregorianKernel) CountDaysInMonth(y, m int32) int32 {
	return daysIn(IsGregorianLeapYear(y), m)
}

func (GregorianKernel) CountDaysInYearBeforeMonth(y, m int32) int32 {
	return daysBeforeMonth(IsGregorianLeapYear(y), m)
}

// CountDaysBeforeYear is basically (y - 1) * 365, but accounting for leap
// days.
func (GregorianKernel) CountDaysBeforeYear(y int32) int32 {
	return int32(absDaysBeforeYear(int64(y)) - internalToAbsolute)
}

// absDaysBeforeYear returns the number of days from the absolute zero year to
// the start of year.
func absDaysBeforeYear(year int64) int64 {
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	n = y
	d += 365 * n

	return d
}

func (GregorianKernel) GetYear(daysSinceEpoch int32) (y, doy int32) {
	d := uint64(int64(daysSinceEpoch) + internalToAbsolute)

	// Account for 400 year cycles.
	n := d / daysPer400Years
	year := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100YearsYears will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	year += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	n = d / daysPer4Years
	year += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3
	// by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	year += n
	d -= 365 * n

	return int32(int64(year) + absoluteZeroYear), int32(d) + 1
}

func (GregorianKernel) GetMonth(y, doy int32) (m, d int32) {
	return monthOfYear(IsGregorianLeapYear(y), doy)
}

func (GregorianKernel) CountMonthsSinceEpoch(y, m int32) int32 {
	return regularMonthsSinceEpoch(y, m, 12)
}

func (GregorianKernel) GetMonthParts(monthsSinceEpoch int32) (y, m int32) {
	return regularMonthParts(monthsSinceEpoch, 12)
}
