// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/core"
)

// The tabular Islamic calendar has twelve lunar months of alternately thirty
// and twenty-nine days. In eleven years of every thirty, the last month gets
// an extra day.

type tabularIslamic struct{}

var tabularIslamicSchema = mustNew(tabularIslamic{}, Info{
	Name:           "tabular-islamic",
	Algorithm:      Arithmetic,
	Family:         Lunar,
	Adjustments:    DayAdjustment,
	MinDaysInYear:  354,
	MinDaysInMonth: 29,
	SupportedYears: DefaultSupportedYears,
})

// TabularIslamic returns the schema of the arithmetical Islamic calendar,
// using the most common leap year pattern (2, 5, 7, 10, 13, 16, 18, 21, 24,
// 26 and 29 of each thirty-year cycle).
func TabularIslamic() *Schema { return tabularIslamicSchema }

func isIslamicLeapYear(y int32) bool {
	return core.FloorMod(14+11*int64(y), 30) < 11
}

func (tabularIslamic) IsLeapYear(y int32) bool { return isIslamicLeapYear(y) }

func (tabularIslamic) IsIntercalaryMonth(y, m int32) bool { return false }

func (tabularIslamic) IsIntercalaryDay(y, m, d int32) bool { return m == 12 && d == 30 }

func (tabularIslamic) IsSupplementaryDay(y, m, d int32) bool { return false }

func (tabularIslamic) CountMonthsInYear(y int32) int32 { return 12 }

func (tabularIslamic) CountDaysInYear(y int32) int32 {
	if isIslamicLeapYear(y) {
		return 355
	}
	return 354
}

func (tabularIslamic) CountDaysInMonth(y, m int32) int32 {
	switch {
	case m == 12 && isIslamicLeapYear(y):
		return 30
	case m%2 == 1:
		return 30
	}
	return 29
}

func (tabularIslamic) CountDaysInYearBeforeMonth(y, m int32) int32 {
	return 29*(m-1) + m/2
}

func (tabularIslamic) CountDaysBeforeYear(y int32) int32 {
	return int32(354*(int64(y)-1) + core.FloorDiv(3+11*int64(y), 30))
}

func (k tabularIslamic) GetYear(daysSinceEpoch int32) (y, doy int32) {
	y = int32(core.FloorDiv(30*int64(daysSinceEpoch)+10646, 10631))
	return y, daysSinceEpoch - k.CountDaysBeforeYear(y) + 1
}

func (k tabularIslamic) GetMonth(y, doy int32) (m, d int32) {
	// The leap day is the only day of the year for which the estimate
	// yields 13.
	m = min((2*doy+57)/59, 12)
	return m, doy - k.CountDaysInYearBeforeMonth(y, m)
}

func (tabularIslamic) CountMonthsSinceEpoch(y, m int32) int32 {
	return regularMonthsSinceEpoch(y, m, 12)
}

func (tabularIslamic) GetMonthParts(monthsSinceEpoch int32) (y, m int32) {
	return regularMonthParts(monthsSinceEpoch, 12)
}
