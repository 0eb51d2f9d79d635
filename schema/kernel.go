// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

// A Kernel implements the arithmetic of one calendar family. Days are counted
// from the first day of the first month of year 1, which is day 0.
//
// Kernel methods do not validate their arguments. The caller must make sure
// that years lie in the supported range of the Schema wrapping the kernel and
// that months, days and days of the year are valid for their year, for
// example by using a PreValidator. Results for invalid arguments are
// unspecified, and for years outside the supported range the computations may
// overflow.
//
// Implementations must be safe for concurrent use. All kernels in this package
// are stateless.
type Kernel interface {
	// IsLeapYear reports whether y contains an intercalary day or month.
	IsLeapYear(y int32) bool
	// IsIntercalaryMonth reports whether m is an intercalary month of y.
	IsIntercalaryMonth(y, m int32) bool
	// IsIntercalaryDay reports whether the given day was inserted to
	// keep the calendar aligned, like February 29th in the Gregorian
	// calendar.
	IsIntercalaryDay(y, m, d int32) bool
	// IsSupplementaryDay reports whether the given day is kept outside of
	// the regular month cycle, like the epagomenal days of the Coptic
	// calendar.
	IsSupplementaryDay(y, m, d int32) bool

	// CountMonthsInYear returns the number of months in y.
	CountMonthsInYear(y int32) int32
	// CountDaysInYear returns the number of days in y.
	CountDaysInYear(y int32) int32
	// CountDaysInMonth returns the number of days in month m of y.
	CountDaysInMonth(y, m int32) int32
	// CountDaysInYearBeforeMonth returns the number of days in y before
	// month m begins.
	CountDaysInYearBeforeMonth(y, m int32) int32
	// CountDaysBeforeYear returns the number of days from the epoch to the
	// first day of y. It is negative for years before 1.
	CountDaysBeforeYear(y int32) int32

	// GetYear returns the year and day of the year (counted from one) of
	// the given day.
	GetYear(daysSinceEpoch int32) (y, doy int32)
	// GetMonth returns the month and day of the month of the given day of
	// y.
	GetMonth(y, doy int32) (m, d int32)

	// CountMonthsSinceEpoch returns the number of months from the first
	// month of year 1 to month m of y.
	CountMonthsSinceEpoch(y, m int32) int32
	// GetMonthParts is the inverse of CountMonthsSinceEpoch.
	GetMonthParts(monthsSinceEpoch int32) (y, m int32)
}

// regularMonthsSinceEpoch implements CountMonthsSinceEpoch for schemas with a
// fixed number of months per year.
func regularMonthsSinceEpoch(y, m, monthsPerYear int32) int32 {
	return monthsPerYear*(y-1) + m - 1
}

// regularMonthParts implements GetMonthParts for schemas with a fixed number
// of months per year.
func regularMonthParts(n, monthsPerYear int32) (y, m int32) {
	q, r := n/monthsPerYear, n%monthsPerYear
	if r < 0 {
		q--
		r += monthsPerYear
	}
	return q + 1, r + 1
}
