// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/core"
)

// JulianKernel is the kernel of the proleptic Julian calendar. It is exported
// so that user-defined kernels can embed its year arithmetic.
type JulianKernel struct{}

var julian = mustNew(JulianKernel{}, Info{
	Name:           "julian",
	Algorithm:      Arithmetic,
	Family:         Solar,
	Adjustments:    DayAdjustment,
	MinDaysInYear:  365,
	MinDaysInMonth: 28,
	SupportedYears: DefaultSupportedYears,
})

// Julian returns the schema of the proleptic Julian calendar.
func Julian() *Schema { return julian }

// IsJulianLeapYear reports whether y is a leap year under the Julian rule.
// Year 0 (1 BCE) is a leap year.
func IsJulianLeapYear(y int32) bool {
	return y&3 == 0
}

func (JulianKernel) IsLeapYear(y int32) bool { return IsJulianLeapYear(y) }

func (JulianKernel) IsIntercalaryMonth(y, m int32) bool { return false }

func (JulianKernel) IsIntercalaryDay(y, m, d int32) bool { return m == 2 && d == 29 }

func (JulianKernel) IsSupplementaryDay(y, m, d int32) bool { return false }

func (JulianKernel) CountMonthsInYear(y int32) int32 { return 12 }

func (JulianKernel) CountDaysInYear(y int32) int32 {
	if IsJulianLeapYear(y) {
		return 366
	}
	return 365
}

func (JulianKernel) CountDaysInMonth(y, m int32) int32 {
	return daysIn(IsJulianLeapYear(y), m)
}

func (JulianKernel) CountDaysInYearBeforeMonth(y, m int32) int32 {
	return daysBeforeMonth(IsJulianLeapYear(y), m)
}

func (JulianKernel) CountDaysBeforeYear(y int32) int32 {
	y0 := int64(y) - 1
	return int32(365*y0 + core.FloorDiv(y0, 4))
}

func (JulianKernel) GetYear(daysSinceEpoch int32) (y, doy int32) {
	y = int32(core.FloorDiv(4*int64(daysSinceEpoch)+1464, daysPer4Years))
	return y, daysSinceEpoch - JulianKernel{}.CountDaysBeforeYear(y) + 1
}

func (JulianKernel) GetMonth(y, doy int32) (m, d int32) {
	return monthOfYear(IsJulianLeapYear(y), doy)
}

func (JulianKernel) CountMonthsSinceEpoch(y, m int32) int32 {
	return regularMonthsSinceEpoch(y, m, 12)
}

func (JulianKernel) GetMonthParts(monthsSinceEpoch int32) (y, m int32) {
	return regularMonthParts(monthsSinceEpoch, 12)
}
