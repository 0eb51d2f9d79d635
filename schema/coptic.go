// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/core"
)

// The Coptic year has twelve months of thirty days, followed by five
// epagomenal days, six in leap years. A year is a leap year if it is one less
// than a multiple of four. The Ethiopic calendar has the same structure.
//
// coptic13 keeps the epagomenal days in a virtual thirteenth month, coptic12
// appends them to the twelfth month.

type coptic13 struct{}

type coptic12 struct{}

var (
	coptic13Schema = mustNew(coptic13{}, Info{
		Name:           "coptic13",
		Algorithm:      Arithmetic,
		Family:         Solar,
		Adjustments:    DayAdjustment,
		MinDaysInYear:  365,
		MinDaysInMonth: 5,
		SupportedYears: DefaultSupportedYears,
	})
	coptic12Schema = mustNew(coptic12{}, Info{
		Name:           "coptic12",
		Algorithm:      Arithmetic,
		Family:         Solar,
		Adjustments:    DayAdjustment,
		MinDaysInYear:  365,
		MinDaysInMonth: 30,
		SupportedYears: DefaultSupportedYears,
	})
)

// Coptic13 returns the schema of the Coptic and Ethiopic calendars, with the
// epagomenal days forming a thirteenth month.
func Coptic13() *Schema { return coptic13Schema }

// Coptic12 returns the schema of the Coptic and Ethiopic calendars, with the
// epagomenal days appended to the twelfth month.
func Coptic12() *Schema { return coptic12Schema }

func isCopticLeapYear(y int32) bool {
	return core.FloorMod(int64(y), 4) == 3
}

func copticDaysInYear(y int32) int32 {
	if isCopticLeapYear(y) {
		return 366
	}
	return 365
}

func copticDaysBeforeYear(y int32) int32 {
	return int32(365*(int64(y)-1) + core.FloorDiv(int64(y), 4))
}

func copticGetYear(daysSinceEpoch int32) (y, doy int32) {
	y = int32(core.FloorDiv(4*int64(daysSinceEpoch)+1463, daysPer4Years))
	return y, daysSinceEpoch - copticDaysBeforeYear(y) + 1
}

func (coptic13) IsLeapYear(y int32) bool { return isCopticLeapYear(y) }

func (coptic13) IsIntercalaryMonth(y, m int32) bool { return false }

func (coptic13) IsIntercalaryDay(y, m, d int32) bool { return m == 13 && d == 6 }

func (coptic13) IsSupplementaryDay(y, m, d int32) bool { return m == 13 }

func (coptic13) CountMonthsInYear(y int32) int32 { return 13 }

func (coptic13) CountDaysInYear(y int32) int32 { return copticDaysInYear(y) }

func (coptic13) CountDaysInMonth(y, m int32) int32 {
	if m == 13 {
		return copticDaysInYear(y) - 360
	}
	return 30
}

func (coptic13) CountDaysInYearBeforeMonth(y, m int32) int32 { return 30 * (m - 1) }

func (coptic13) CountDaysBeforeYear(y int32) int32 { return copticDaysBeforeYear(y) }

func (coptic13) GetYear(daysSinceEpoch int32) (y, doy int32) { return copticGetYear(daysSinceEpoch) }

func (coptic13) GetMonth(y, doy int32) (m, d int32) {
	m = (doy-1)/30 + 1
	return m, doy - 30*(m-1)
}

func (coptic13) CountMonthsSinceEpoch(y, m int32) int32 {
	return regularMonthsSinceEpoch(y, m, 13)
}

func (coptic13) GetMonthParts(monthsSinceEpoch int32) (y, m int32) {
	return regularMonthParts(monthsSinceEpoch, 13)
}

func (coptic12) IsLeapYear(y int32) bool { return isCopticLeapYear(y) }

func (coptic12) IsIntercalaryMonth(y, m int32) bool { return false }

func (coptic12) IsIntercalaryDay(y, m, d int32) bool { return m == 12 && d == 36 }

func (coptic12) IsSupplementaryDay(y, m, d int32) bool { return m == 12 && d > 30 }

func (coptic12) CountMonthsInYear(y int32) int32 { return 12 }

func (coptic12) CountDaysInYear(y int32) int32 { return copticDaysInYear(y) }

func (coptic12) CountDaysInMonth(y, m int32) int32 {
	if m == 12 {
		return copticDaysInYear(y) - 330
	}
	return 30
}

func (coptic12) CountDaysInYearBeforeMonth(y, m int32) int32 { return 30 * (m - 1) }

func (coptic12) CountDaysBeforeYear(y int32) int32 { return copticDaysBeforeYear(y) }

func (coptic12) GetYear(daysSinceEpoch int32) (y, doy int32) { return copticGetYear(daysSinceEpoch) }

func (coptic12) GetMonth(y, doy int32) (m, d int32) {
	m = min((doy-1)/30+1, 12)
	return m, doy - 30*(m-1)
}

func (coptic12) CountMonthsSinceEpoch(y, m int32) int32 {
	return regularMonthsSinceEpoch(y, m, 12)
}

func (coptic12) GetMonthParts(monthsSinceEpoch int32) (y, m int32) {
	return regularMonthParts(monthsSinceEpoch, 12)
}
