// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cmp"
	"strconv"
)

// DateParts is a date given as a year, a month of that year and a day of that
// month. Whether it denotes a valid date depends on the schema it is
// interpreted in.
//
// DateParts are ordered lexicographically by (Year, Month, Day).
type DateParts struct {
	Year  int32
	Month int32
	Day   int32
}

// Compare returns -1, 0 or +1 depending on whether p sorts before, equal to or
// after q.
func (p DateParts) Compare(q DateParts) int {
	if c := cmp.Compare(p.Year, q.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Month, q.Month); c != 0 {
		return c
	}
	return cmp.Compare(p.Day, q.Day)
}

// MonthParts returns the month p lies in.
func (p DateParts) MonthParts() MonthParts {
	return MonthParts{Year: p.Year, Month: p.Month}
}

// String formats p as YYYY-MM-DD. Years with less than four digits are padded
// with zeros and negative years are prefixed with a minus sign.
func (p DateParts) String() string {
	b := make([]byte, 0, 16)
	b = appendYear(b, p.Year)
	b = append(b, '-')
	b = appendTwoDigits(b, p.Month)
	b = append(b, '-')
	b = appendTwoDigits(b, p.Day)
	return string(b)
}

// OrdinalParts is a date given as a year and a day of that year, counted from
// one.
//
// OrdinalParts are ordered lexicographically by (Year, DayOfYear).
type OrdinalParts struct {
	Year      int32
	DayOfYear int32
}

// Compare returns -1, 0 or +1 depending on whether p sorts before, equal to or
// after q.
func (p OrdinalParts) Compare(q OrdinalParts) int {
	if c := cmp.Compare(p.Year, q.Year); c != 0 {
		return c
	}
	return cmp.Compare(p.DayOfYear, q.DayOfYear)
}

// String formats p as YYYY-DDD.
func (p OrdinalParts) String() string {
	b := make([]byte, 0, 16)
	b = appendYear(b, p.Year)
	b = append(b, '-')
	if p.DayOfYear >= 0 && p.DayOfYear < 100 {
		b = append(b, '0')
		if p.DayOfYear < 10 {
			b = append(b, '0')
		}
	}
	return string(strconv.AppendInt(b, int64(p.DayOfYear), 10))
}

// MonthParts is a month given as a year and a month of that year.
//
// MonthParts are ordered lexicographically by (Year, Month).
type MonthParts struct {
	Year  int32
	Month int32
}

// Compare returns -1, 0 or +1 depending on whether p sorts before, equal to or
// after q.
func (p MonthParts) Compare(q MonthParts) int {
	if c := cmp.Compare(p.Year, q.Year); c != 0 {
		return c
	}
	return cmp.Compare(p.Month, q.Month)
}

// String formats p as YYYY-MM.
func (p MonthParts) String() string {
	b := make([]byte, 0, 16)
	b = appendYear(b, p.Year)
	b = append(b, '-')
	return string(appendTwoDigits(b, p.Month))
}

func appendYear(b []byte, y int32) []byte {
	v := int64(y)
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	if v < 1000 {
		b = append(b, '0')
	}
	if v < 100 {
		b = append(b, '0')
	}
	if v < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, v, 10)
}

func appendTwoDigits(b []byte, v int32) []byte {
	if v >= 0 && v < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(v), 10)
}
