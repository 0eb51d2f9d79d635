// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonih.org/calendar/core"
	"gonih.org/calendar/schema"
)

var all = []*schema.Schema{
	schema.Gregorian(),
	schema.Julian(),
	schema.Coptic12(),
	schema.Coptic13(),
	schema.Egyptian12(),
	schema.Egyptian13(),
	schema.TabularIslamic(),
}

// sampleYears are years in which every single day is checked.
var sampleYears = []int32{-999_998, -1601, -401, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 100, 400, 1582, 1900, 2000, 2023, 2024, 999_999}

var gregorianTcs = []struct {
	year, month, day int32
	want             int32
}{
	{1, 1, 1, 0},
	{2, 1, 1, 365},
	{3, 1, 1, 730},
	{4, 1, 1, 1095},
	{5, 1, 1, 1461},

	{1, 3, 1, 59},
	{2, 3, 1, 424},
	{3, 3, 1, 789},
	{4, 3, 1, 1155},
	{5, 3, 1, 1520},

	{1, 1, 31, 30},
	{1, 2, 1, 31},
	{0, 12, 31, -1},
	{1965, 3, 14, 717408},
	{2023, 7, 14, 738714},
}

func TestGregorianCountDaysSinceEpoch(t *testing.T) {
	s := schema.Gregorian()
	for _, tc := range gregorianTcs {
		if got := s.CountDaysSinceEpoch(tc.year, tc.month, tc.day); got != tc.want {
			t.Errorf("CountDaysSinceEpoch(%d, %d, %d) = %d, want %d", tc.year, tc.month, tc.day, got, tc.want)
		}
		if got, want := s.GetDateParts(tc.want), (core.DateParts{Year: tc.year, Month: tc.month, Day: tc.day}); got != want {
			t.Errorf("GetDateParts(%d) = %v, want %v", tc.want, got, want)
		}
	}
}

// TestGregorianAgainstTime checks that the Gregorian schema agrees with
// package time.
func TestGregorianAgainstTime(t *testing.T) {
	s := schema.Gregorian()
	zero := time.Date(1, 1, 1, 6, 0, 0, 0, time.UTC)
	for _, y := range []int32{-400, -1, 0, 1, 1600, 1700, 1969, 1970, 2000, 2024, 9999} {
		for doy := int32(1); doy <= s.CountDaysInYear(y); doy++ {
			days := s.CountDaysSinceEpochOrdinal(y, doy)
			want := zero.AddDate(0, 0, int(days))
			p := s.GetDateParts(days)
			if int(p.Year) != want.Year() || time.Month(p.Month) != want.Month() || int(p.Day) != want.Day() {
				t.Fatalf("GetDateParts(%d) = %v, want %v", days, p, want.Format(time.DateOnly))
			}
			if got := s.GetDayOfYear(p.Year, p.Month, p.Day); int(got) != want.YearDay() {
				t.Fatalf("GetDayOfYear(%v) = %d, want %d", p, got, want.YearDay())
			}
		}
	}
}

func TestEpochConvention(t *testing.T) {
	for _, s := range all {
		assert.Zero(t, s.CountDaysSinceEpoch(1, 1, 1), s.Name())
		assert.Zero(t, s.CountDaysSinceEpochOrdinal(1, 1), s.Name())
		assert.Zero(t, s.CountMonthsSinceEpoch(1, 1), s.Name())
		assert.Equal(t, int32(1), s.CountDaysSinceEpoch(1, 1, 2), s.Name())
	}
}

// TestRoundTrip checks the conversion laws for every day of the sample years.
func TestRoundTrip(t *testing.T) {
	for _, s := range all {
		t.Run(s.Name(), func(t *testing.T) {
			for _, y := range sampleYears {
				checkYear(t, s, y)
			}
		})
	}
}

func checkYear(t *testing.T, s *schema.Schema, y int32) {
	t.Helper()
	start, end := s.GetStartOfYear(y), s.GetEndOfYear(y)
	require.Equal(t, s.CountDaysInYear(y), end-start+1, "year %d", y)
	require.Equal(t, end+1, s.GetStartOfYear(y+1), "year %d", y)

	prev := s.GetDateParts(start - 1)
	for days := start; days <= end; days++ {
		p := s.GetDateParts(days)
		require.NoError(t, s.PreValidator().ValidateDateParts(p, ""), "GetDateParts(%d)", days)
		require.Equal(t, days, s.CountDaysSinceEpoch(p.Year, p.Month, p.Day), "%v", p)

		o := s.GetOrdinalParts(days)
		require.Equal(t, days, s.CountDaysSinceEpochOrdinal(o.Year, o.DayOfYear), "%v", o)
		m, d := s.GetMonth(o.Year, o.DayOfYear)
		require.Equal(t, p, core.DateParts{Year: o.Year, Month: m, Day: d})
		require.Equal(t, s.CountDaysInYear(y), o.DayOfYear+s.CountDaysInYearAfter(p.Year, p.Month, p.Day), "%v", p)
		require.Equal(t, s.CountDaysInMonth(p.Year, p.Month), p.Day+s.CountDaysInMonthAfter(p.Year, p.Month, p.Day), "%v", p)
		require.Equal(t, o.DayOfYear, s.GetDayOfYear(p.Year, p.Month, p.Day), "%v", p)

		require.Equal(t, prev, predecessor(s, p), "day %d", days)
		prev = p
	}
	require.Equal(t, s.GetEndOfYearParts(y), prev)
}

// predecessor returns the day before p, computed without any day counting.
func predecessor(s *schema.Schema, p core.DateParts) core.DateParts {
	switch {
	case p.Day > 1:
		return core.DateParts{Year: p.Year, Month: p.Month, Day: p.Day - 1}
	case p.Month > 1:
		return core.DateParts{Year: p.Year, Month: p.Month - 1, Day: s.CountDaysInMonth(p.Year, p.Month-1)}
	}
	return s.GetEndOfYearParts(p.Year - 1)
}

func TestMonthBoundaries(t *testing.T) {
	for _, s := range all {
		for _, y := range sampleYears {
			var sum int32
			for m := int32(1); m <= s.CountMonthsInYear(y); m++ {
				require.Equal(t, sum, s.CountDaysInYearBeforeMonth(y, m), "%s %d-%d", s, y, m)
				require.Equal(t, s.GetStartOfYear(y)+sum, s.GetStartOfMonth(y, m))
				require.Equal(t, s.GetStartOfMonth(y, m)+s.CountDaysInMonth(y, m)-1, s.GetEndOfMonth(y, m))
				require.GreaterOrEqual(t, s.CountDaysInMonth(y, m), s.MinDaysInMonth())
				sum += s.CountDaysInMonth(y, m)

				n := s.CountMonthsSinceEpoch(y, m)
				gy, gm := s.GetMonthParts(n)
				require.Equal(t, [2]int32{y, m}, [2]int32{gy, gm}, "GetMonthParts(%d)", n)
			}
			require.Equal(t, s.CountDaysInYear(y), sum, "%s %d", s, y)
			require.GreaterOrEqual(t, s.CountDaysInYear(y), s.MinDaysInYear())
		}
	}
}

func TestLeapYears(t *testing.T) {
	tcs := []struct {
		s     *schema.Schema
		leap  []int32
		plain []int32
	}{
		{schema.Gregorian(), []int32{-4, 0, 4, 400, 1600, 2000, 2024}, []int32{-1, 1, 100, 1700, 1900, 2023}},
		{schema.Julian(), []int32{-4, 0, 4, 100, 1700, 1900}, []int32{-1, 1, 2, 3, 2023}},
		{schema.Coptic13(), []int32{-1, 3, 7, 1739}, []int32{0, 1, 2, 4, 1740}},
		{schema.Coptic12(), []int32{-1, 3, 7, 1739}, []int32{0, 1, 2, 4, 1740}},
		{schema.Egyptian13(), nil, []int32{-1, 0, 1, 2, 3, 4}},
		{schema.TabularIslamic(), []int32{2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29, 32}, []int32{1, 3, 4, 30, 31}},
	}
	for _, tc := range tcs {
		for _, y := range tc.leap {
			assert.True(t, tc.s.IsLeapYear(y), "%s: IsLeapYear(%d)", tc.s, y)
		}
		for _, y := range tc.plain {
			assert.False(t, tc.s.IsLeapYear(y), "%s: IsLeapYear(%d)", tc.s, y)
		}
	}
}

func TestIslamicCycle(t *testing.T) {
	s := schema.TabularIslamic()
	for _, y := range []int32{-29, 1, 31, 1441} {
		assert.Equal(t, int32(10631), s.GetStartOfYear(y+30)-s.GetStartOfYear(y), "cycle starting in %d", y)
	}
}

func TestIntercalaryAndSupplementaryDays(t *testing.T) {
	tcs := []struct {
		s                           *schema.Schema
		y, m, d                     int32
		intercalary, supplementary bool
	}{
		{schema.Gregorian(), 2024, 2, 29, true, false},
		{schema.Gregorian(), 2024, 2, 28, false, false},
		{schema.Julian(), 1900, 2, 29, true, false},
		{schema.Coptic13(), 3, 13, 6, true, true},
		{schema.Coptic13(), 3, 13, 5, false, true},
		{schema.Coptic13(), 3, 12, 30, false, false},
		{schema.Coptic12(), 3, 12, 36, true, true},
		{schema.Coptic12(), 3, 12, 31, false, true},
		{schema.Coptic12(), 3, 12, 30, false, false},
		{schema.Egyptian13(), 1, 13, 5, false, true},
		{schema.Egyptian12(), 1, 12, 35, false, true},
		{schema.TabularIslamic(), 2, 12, 30, true, false},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.intercalary, tc.s.IsIntercalaryDay(tc.y, tc.m, tc.d), "%s: IsIntercalaryDay(%d, %d, %d)", tc.s, tc.y, tc.m, tc.d)
		assert.Equal(t, tc.supplementary, tc.s.IsSupplementaryDay(tc.y, tc.m, tc.d), "%s: IsSupplementaryDay(%d, %d, %d)", tc.s, tc.y, tc.m, tc.d)
		assert.False(t, tc.s.IsIntercalaryMonth(tc.y, tc.m))
	}
}

func TestPreValidator(t *testing.T) {
	v := schema.Gregorian().PreValidator()
	tcs := []struct {
		y, m, d int32
		name    string
		kind    core.Kind
		field   string
	}{
		{2000, 2, 29, "", 0, ""},
		{2000, 2, 30, "", core.DayOutOfRange, "day"},
		{1900, 2, 29, "", core.DayOutOfRange, "day"},
		{2000, 0, 1, "", core.MonthOutOfRange, "month"},
		{2000, 13, 1, "", core.MonthOutOfRange, "month"},
		{2000, 13, 40, "", core.MonthOutOfRange, "month"},
		{2000, 1, 0, "", core.DayOutOfRange, "day"},
		{2000, 1, 32, "start", core.DayOutOfRange, "start"},
		{2000, 14, 32, "end", core.MonthOutOfRange, "end"},
	}
	for _, tc := range tcs {
		err := v.ValidateMonthDay(tc.y, tc.m, tc.d, tc.name)
		if tc.kind == 0 {
			assert.NoError(t, err)
			continue
		}
		var fe *core.FieldError
		if assert.ErrorAs(t, err, &fe, "ValidateMonthDay(%d, %d, %d)", tc.y, tc.m, tc.d) {
			assert.Equal(t, tc.kind, fe.Kind)
			assert.Equal(t, tc.field, fe.Field)
		}
	}

	assert.NoError(t, v.ValidateDayOfYear(2024, 366, ""))
	assert.ErrorIs(t, v.ValidateDayOfYear(2023, 366, ""), core.ErrDayOfYearOutOfRange)
	assert.ErrorIs(t, v.ValidateDayOfYear(2023, 0, ""), core.ErrDayOfYearOutOfRange)
	assert.ErrorIs(t, v.ValidateYear(1_000_000, ""), core.ErrYearOutOfRange)
	assert.ErrorIs(t, v.ValidateOrdinalParts(core.OrdinalParts{Year: -999_999, DayOfYear: 1}, ""), core.ErrYearOutOfRange)

	c := schema.Coptic13().PreValidator()
	assert.NoError(t, c.ValidateMonthDay(3, 13, 6, ""))
	assert.ErrorIs(t, c.ValidateMonthDay(4, 13, 6, ""), core.ErrDayOutOfRange)
	assert.ErrorIs(t, c.ValidateMonthDay(4, 14, 1, ""), core.ErrMonthOutOfRange)
}

func TestNew(t *testing.T) {
	valid := schema.Info{
		Name:           "test",
		MinDaysInYear:  365,
		MinDaysInMonth: 28,
		SupportedYears: core.Range[int32]{Min: 1, Max: 9999},
	}
	s, err := schema.New(schema.GregorianKernel{}, valid)
	require.NoError(t, err)
	require.Equal(t, "test", s.Name())
	require.Equal(t, core.Range[int32]{Min: 1, Max: 9999}, s.SupportedYears())

	for _, mod := range []func(*schema.Info){
		func(i *schema.Info) { i.MinDaysInYear = 0 },
		func(i *schema.Info) { i.MinDaysInMonth = -1 },
		func(i *schema.Info) { i.MinDaysInMonth = 400 },
		func(i *schema.Info) { i.SupportedYears = core.Range[int32]{Min: 2, Max: 1} },
	} {
		info := valid
		mod(&info)
		_, err := schema.New(schema.GregorianKernel{}, info)
		require.ErrorIs(t, err, core.ErrConfiguration)
	}
	_, err = schema.New(nil, valid)
	require.True(t, errors.Is(err, core.ErrConfiguration))
}

func TestMetadata(t *testing.T) {
	tcs := []struct {
		s    *schema.Schema
		want string
	}{
		{schema.Gregorian(), "gregorian arithmetic solar days"},
		{schema.Egyptian13(), "egyptian13 arithmetic solar none"},
		{schema.TabularIslamic(), "tabular-islamic arithmetic lunar days"},
	}
	for _, tc := range tcs {
		got := fmt.Sprintf("%v %v %v %v", tc.s, tc.s.Algorithm(), tc.s.Family(), tc.s.Adjustments())
		assert.Equal(t, tc.want, got)
	}
}

// FuzzRoundTrip checks that converting any supported day to date parts and
// back is the identity.
func FuzzRoundTrip(f *testing.F) {
	for _, tc := range gregorianTcs {
		f.Add(tc.want)
	}
	f.Add(int32(-365_242_000))
	f.Add(int32(365_242_000))
	f.Fuzz(func(t *testing.T, days int32) {
		for _, s := range all {
			years := s.SupportedYears()
			if days < s.GetStartOfYear(years.Min) || days > s.GetEndOfYear(years.Max) {
				continue
			}
			p := s.GetDateParts(days)
			if err := s.PreValidator().ValidateDateParts(p, ""); err != nil {
				t.Fatalf("%s: GetDateParts(%d) = %v: %v", s, days, p, err)
			}
			if got := s.CountDaysSinceEpoch(p.Year, p.Month, p.Day); got != days {
				t.Errorf("%s: CountDaysSinceEpoch(%v) = %d, want %d", s, p, got, days)
			}
		}
	})
}
