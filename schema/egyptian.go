// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/core"
)

// The Egyptian year has twelve months of thirty days followed by five
// epagomenal days and never varies. The Armenian and Zoroastrian calendars
// have the same structure.

type egyptian13 struct{}

type egyptian12 struct{}

var (
	egyptian13Schema = mustNew(egyptian13{}, Info{
		Name:           "egyptian13",
		Algorithm:      Arithmetic,
		Family:         Solar,
		Adjustments:    NoAdjustment,
		MinDaysInYear:  365,
		MinDaysInMonth: 5,
		SupportedYears: DefaultSupportedYears,
	})
	egyptian12Schema = mustNew(egyptian12{}, Info{
		Name:           "egyptian12",
		Algorithm:      Arithmetic,
		Family:         Solar,
		Adjustments:    NoAdjustment,
		MinDaysInYear:  365,
		MinDaysInMonth: 30,
		SupportedYears: DefaultSupportedYears,
	})
)

// Egyptian13 returns the schema of the Egyptian, Armenian and Zoroastrian
// calendars, with the epagomenal days forming a thirteenth month.
func Egyptian13() *Schema { return egyptian13Schema }

// Egyptian12 returns the schema of the Egyptian, Armenian and Zoroastrian
// calendars, with the epagomenal days appended to the twelfth month.
func Egyptian12() *Schema { return egyptian12Schema }

func egyptianDaysBeforeYear(y int32) int32 { return 365 * (y - 1) }

func egyptianGetYear(daysSinceEpoch int32) (y, doy int32) {
	y0 := core.FloorDiv(int64(daysSinceEpoch), 365)
	return int32(y0) + 1, int32(int64(daysSinceEpoch)-365*y0) + 1
}

func (egyptian13) IsLeapYear(y int32) bool { return false }

func (egyptian13) IsIntercalaryMonth(y, m int32) bool { return false }

func (egyptian13) IsIntercalaryDay(y, m, d int32) bool { return false }

func (egyptian13) IsSupplementaryDay(y, m, d int32) bool { return m == 13 }

func (egyptian13) CountMonthsInYear(y int32) int32 { return 13 }

func (egyptian13) CountDaysInYear(y int32) int32 { return 365 }

func (egyptian13) CountDaysInMonth(y, m int32) int32 {
	if m == 13 {
		return 5
	}
	return 30
}

func (egyptian13) CountDaysInYearBeforeMonth(y, m int32) int32 { return 30 * (m - 1) }

func (egyptian13) CountDaysBeforeYear(y int32) int32 { return egyptianDaysBeforeYear(y) }

func (egyptian13) GetYear(daysSinceEpoch int32) (y, doy int32) {
	return egyptianGetYear(daysSinceEpoch)
}

func (egyptian13) GetMonth(y, doy int32) (m, d int32) {
	m = (doy-1)/30 + 1
	return m, doy - 30*(m-1)
}

func (egyptian13) CountMonthsSinceEpoch(y, m int32) int32 {
	return regularMonthsSinceEpoch(y, m, 13)
}

func (egyptian13) GetMonthParts(monthsSinceEpoch int32) (y, m int32) {
	return regularMonthParts(monthsSinceEpoch, 13)
}

func (egyptian12) IsLeapYear(y int32) bool { return false }

func (egyptian12) IsIntercalaryMonth(y, m int32) bool { return false }

func (egyptian12) IsIntercalaryDay(y, m, d int32) bool { return false }

func (egyptian12) IsSupplementaryDay(y, m, d int32) bool { return m == 12 && d > 30 }

func (egyptian12) CountMonthsInYear(y int32) int32 { return 12 }

func (egyptian12) CountDaysInYear(y int32) int32 { return 365 }

func (egyptian12) CountDaysInMonth(y, m int32) int32 {
	if m == 12 {
		return 35
	}
	return 30
}

func (egyptian12) CountDaysInYearBeforeMonth(y, m int32) int32 { return 30 * (m - 1) }

func (egyptian12) CountDaysBeforeYear(y int32) int32 { return egyptianDaysBeforeYear(y) }

func (egyptian12) GetYear(daysSinceEpoch int32) (y, doy int32) {
	return egyptianGetYear(daysSinceEpoch)
}

func (egyptian12) GetMonth(y, doy int32) (m, d int32) {
	m = min((doy-1)/30+1, 12)
	return m, doy - 30*(m-1)
}

func (egyptian12) CountMonthsSinceEpoch(y, m int32) int32 {
	return regularMonthsSinceEpoch(y, m, 12)
}

func (egyptian12) GetMonthParts(monthsSinceEpoch int32) (y, m int32) {
	return regularMonthParts(monthsSinceEpoch, 12)
}
