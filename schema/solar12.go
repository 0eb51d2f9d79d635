// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

// Month arithmetic shared by the Gregorian and Julian kernels, which only
// differ in their leap year rule.

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int32{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

func daysIn(leap bool, m int32) int32 {
	if m == 2 && leap {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

func daysBeforeMonth(leap bool, m int32) int32 {
	d := daysBefore[m-1]
	if leap && m > 2 {
		d++
	}
	return d
}

// monthOfYear computes the month and day of month of the given day of the
// year.
func monthOfYear(leap bool, doy int32) (month, day int32) {
	day = doy - 1
	if leap {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			// Leap day.
			return 2, 29
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = day / 31
	end := daysBefore[month+1]
	var begin int32
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	month++ // because January is 1
	day = day - begin + 1
	return month, day
}
