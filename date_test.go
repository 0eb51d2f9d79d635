// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gonih.org/calendar/core"
)

var tcs = []struct {
	year  int32
	month int32
	day   int32
	want  int32
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
	{1965, 3, 14, 717408},
	{2023, 7, 14, 738714},
	{2024, 3, 15, 738959},
	{9999, 12, 31, 3_652_058},
}

func TestDate(t *testing.T) {
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			d, err := Gregorian().Date(tc.year, tc.month, tc.day)
			if err != nil {
				t.Fatalf("Date(%d, %d, %d) = _, %v", tc.year, tc.month, tc.day, err)
			}
			if got := d.DaysSinceEpoch(); got != tc.want {
				t.Errorf("Date(%d, %d, %d) = %d, want %d", tc.year, tc.month, tc.day, got, tc.want)
			}
			check(t, int(tc.year), int(tc.month), int(tc.day))
		})
	}
}

func TestZeroDate(t *testing.T) {
	var d Date
	if d.Calendar() != Gregorian() {
		t.Errorf("Date{}.Calendar() = %v, want gregorian", d.Calendar())
	}
	if got, want := d.String(), "0001-01-01"; got != want {
		t.Errorf("Date{}.String() = %q, want %q", got, want)
	}
	if got, want := d.Time(0, 0, 0, 0, time.UTC), (time.Time{}); !got.Equal(want) {
		t.Errorf("Date{}.Time(…) = %v, want %v", got, want)
	}
	if d.Compare(Gregorian().MinDate()) != 0 {
		t.Errorf("Date{} is not the first day of the Gregorian calendar")
	}
	if d != Gregorian().MustDate(1, 1, 1) || d != Gregorian().MinDate() {
		t.Errorf("Date{} != Gregorian().MustDate(1, 1, 1)")
	}
	if e, _ := Gregorian().FromDayNumber(0); d != e {
		t.Errorf("Date{} != Gregorian().FromDayNumber(0)")
	}
	if e, _ := Gregorian().Parse(RFC3339, "0001-01-01"); d != e {
		t.Errorf("Date{} != Gregorian().Parse(RFC3339, %q)", "0001-01-01")
	}
	if e, _ := Gregorian().MustDate(1, 1, 2).AddDays(-1); d != e {
		t.Errorf("Date{} != Gregorian().MustDate(1, 1, 2).AddDays(-1)")
	}

	b, err := d.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var got Date
	if err := got.UnmarshalText(b); err != nil || got != d {
		t.Errorf("UnmarshalText(%q) = %#v, %v, want Date{}, <nil>", b, got, err)
	}
	if b, err = d.MarshalBinary(); err != nil {
		t.Fatal(err)
	}
	got = Date{days: 42}
	if err := got.UnmarshalBinary(b); err != nil || got != d {
		t.Errorf("UnmarshalBinary(%q) = %#v, %v, want Date{}, <nil>", b, got, err)
	}
}

func TestToday(t *testing.T) {
	for _, loc := range []*time.Location{time.UTC, time.Local} {
		got, err := Gregorian().Today(loc)
		if err != nil {
			t.Fatal(err)
		}
		now := time.Now().In(loc)
		want := Gregorian().MustDate(int32(now.Year()), int32(now.Month()), int32(now.Day()))
		// Allow for midnight passing between the two calls.
		if diff := want.Sub(got); diff < 0 || diff > 1 {
			t.Errorf("Today(%v) = %v, want %v", loc, got, want)
		}
	}
	if _, err := Coptic().Today(time.UTC); err != nil {
		t.Errorf("Coptic().Today(time.UTC) = _, %v", err)
	}
}

func TestArithmetic(t *testing.T) {
	g, c := Gregorian(), Coptic()
	tcs := []struct {
		name string
		f    func() (Date, error)
		want Date
	}{
		{"AddDays", func() (Date, error) { return g.MustDate(2024, 2, 28).AddDays(2) }, g.MustDate(2024, 3, 1)},
		{"AddDays negative", func() (Date, error) { return g.MustDate(2024, 1, 1).AddDays(-1) }, g.MustDate(2023, 12, 31)},
		{"AddMonths", func() (Date, error) { return g.MustDate(2024, 1, 15).AddMonths(14) }, g.MustDate(2025, 3, 15)},
		{"AddMonths truncates", func() (Date, error) { return g.MustDate(2024, 1, 31).AddMonths(1) }, g.MustDate(2024, 2, 29)},
		{"AddMonths negative", func() (Date, error) { return g.MustDate(2024, 3, 31).AddMonths(-13) }, g.MustDate(2023, 2, 28)},
		{"AddMonths epagomenae", func() (Date, error) { return c.MustDate(1711, 12, 30).AddMonths(14) }, c.MustDate(1712, 13, 5)},
		{"AddYears", func() (Date, error) { return g.MustDate(2024, 2, 29).AddYears(1) }, g.MustDate(2025, 2, 28)},
		{"AddYears leap day", func() (Date, error) { return c.MustDate(1711, 13, 6).AddYears(4) }, c.MustDate(1715, 13, 6)},
		{"StartOfYear", func() (Date, error) { return g.MustDate(2024, 3, 15).StartOfYear() }, g.MustDate(2024, 1, 1)},
		{"EndOfYear", func() (Date, error) { return c.MustDate(1711, 2, 3).EndOfYear() }, c.MustDate(1711, 13, 6)},
		{"StartOfMonth", func() (Date, error) { return g.MustDate(2024, 3, 15).StartOfMonth() }, g.MustDate(2024, 3, 1)},
		{"EndOfMonth", func() (Date, error) { return g.MustDate(2024, 2, 15).EndOfMonth() }, g.MustDate(2024, 2, 29)},
		{"Next", func() (Date, error) { return g.MustDate(2024, 3, 15).Next(time.Friday) }, g.MustDate(2024, 3, 22)},
		{"Next other", func() (Date, error) { return g.MustDate(2024, 3, 15).Next(time.Sunday) }, g.MustDate(2024, 3, 17)},
		{"Previous", func() (Date, error) { return g.MustDate(2024, 3, 15).Previous(time.Monday) }, g.MustDate(2024, 3, 11)},
		{"Previous same", func() (Date, error) { return g.MustDate(2024, 3, 15).Previous(time.Friday) }, g.MustDate(2024, 3, 8)},
	}
	for _, tc := range tcs {
		got, err := tc.f()
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s = %#v, want %#v", tc.name, got, tc.want)
		}
	}
}

func TestOverflow(t *testing.T) {
	g := Gregorian()
	calls := []struct {
		name string
		f    func() (Date, error)
	}{
		{"AddDays", func() (Date, error) { return g.MaxDate().AddDays(1) }},
		{"AddDays min", func() (Date, error) { return g.MinDate().AddDays(-1) }},
		{"AddDays large", func() (Date, error) { return g.MinDate().AddDays(1 << 30) }},
		{"AddMonths", func() (Date, error) { return g.MustDate(9999, 12, 1).AddMonths(1) }},
		{"AddMonths large", func() (Date, error) { return g.MinDate().AddMonths(-(1 << 31)) }},
		{"AddYears", func() (Date, error) { return g.MinDate().AddYears(-1) }},
		{"Next", func() (Date, error) { return g.MaxDate().Next(time.Monday) }},
		{"Previous", func() (Date, error) { return g.MinDate().Previous(time.Monday) }},
		{"In", func() (Date, error) { return g.MinDate().In(Coptic()) }},
	}
	for _, c := range calls {
		if _, err := c.f(); !errors.Is(err, core.ErrOverflow) {
			t.Errorf("%s = _, %v, want %v", c.name, err, core.ErrOverflow)
		}
	}

	b, err := New("test-overflow-bounded", g.Schema(), 0, WithMinDate(1582, 10, 15))
	require.NoError(t, err)
	d := b.MustDate(1582, 10, 20)
	_, err = d.StartOfYear()
	require.ErrorIs(t, err, core.ErrOverflow)
	_, err = d.StartOfMonth()
	require.ErrorIs(t, err, core.ErrOverflow)
	_, err = d.AddMonths(-1)
	require.ErrorIs(t, err, core.ErrOverflow)
	e, err := d.EndOfMonth()
	require.NoError(t, err)
	require.Equal(t, "1582-10-31", e.String())
}

func TestDesignations(t *testing.T) {
	g, c := Gregorian(), Coptic()
	tcs := []struct {
		d                  Date
		intercalary, suppl bool
	}{
		{g.MustDate(2024, 2, 29), true, false},
		{g.MustDate(2024, 2, 28), false, false},
		{c.MustDate(1711, 13, 6), true, true},
		{c.MustDate(1711, 13, 1), false, true},
		{c.MustDate(1711, 12, 30), false, false},
		{TabularIslamic().MustDate(1415, 12, 30), true, false},
	}
	for _, tc := range tcs {
		if got := tc.d.IsIntercalary(); got != tc.intercalary {
			t.Errorf("%#v.IsIntercalary() = %v, want %v", tc.d, got, tc.intercalary)
		}
		if got := tc.d.IsSupplementary(); got != tc.suppl {
			t.Errorf("%#v.IsSupplementary() = %v, want %v", tc.d, got, tc.suppl)
		}
	}
}

func TestCompare(t *testing.T) {
	g := Gregorian().MustDate(1996, 2, 25)
	j := Julian().MustDate(1996, 2, 12)
	c := Coptic().MustDate(1712, 6, 18)
	require.Equal(t, 0, g.Compare(j))
	require.Equal(t, -1, j.Compare(c))
	require.Equal(t, 1, c.Compare(g))
	require.Equal(t, int64(1), c.Sub(g))
	require.Equal(t, int64(-1), j.Sub(c))
	require.NotEqual(t, g, j)
	require.Equal(t, time.Sunday, g.Weekday())
	require.Equal(t, time.Sunday, j.Weekday())
	require.Equal(t, `calendar.MustLookup("coptic").MustDate(1712, 6, 18)`, c.GoString())
}

func TestGetters(t *testing.T) {
	d := TabularIslamic().MustDate(1416, 10, 5)
	y, m, day := d.Date()
	require.Equal(t, [3]int32{1416, 10, 5}, [3]int32{y, m, day})
	require.Equal(t, int32(1416), d.Year())
	require.Equal(t, int32(10), d.Month())
	require.Equal(t, int32(5), d.Day())
	// 5 months of 30 and 4 months of 29 days precede Shawwal.
	require.Equal(t, int32(5*30+4*29+5), d.DayOfYear())
	require.Equal(t, core.OrdinalParts{Year: 1416, DayOfYear: 271}, d.OrdinalParts())
	require.Equal(t, core.DayNumber(728713), d.DayNumber())
}

func addAll(f *testing.F) {
	for _, tc := range tcs {
		f.Add(tc.year, tc.month, tc.day)
	}
}

func FuzzDate(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int32) {
		if _, err := Gregorian().Date(year, month, day); err != nil {
			return
		}
		check(t, int(year), int(month), int(day))
	})
}

// FuzzRoundTrip checks that converting a day to a date and back is the
// identity, in every built-in calendar.
func FuzzRoundTrip(f *testing.F) {
	for _, tc := range conversions {
		f.Add(int32(tc.n))
	}
	f.Add(int32(0))
	f.Add(int32(-272788))
	f.Add(int32(3_652_058))
	f.Fuzz(func(t *testing.T, n int32) {
		for _, key := range Keys() {
			c := MustLookup(key)
			d, err := c.FromDayNumber(core.DayNumber(n))
			if err != nil {
				continue
			}
			y, m, day := d.Date()
			d2, err := c.Date(y, m, day)
			if err != nil {
				t.Fatalf("%s: %v does not round trip: %v", key, d.Parts(), err)
			}
			if d2 != d {
				t.Fatalf("%s: Date(%d, %d, %d) = %#v, want %#v", key, y, m, day, d2, d)
			}
			y, doy := d.Ordinal()
			d3, err := c.OrdinalDate(y, doy)
			if err != nil || d3 != d {
				t.Fatalf("%s: OrdinalDate(%d, %d) = %#v, %v, want %#v", key, y, doy, d3, err, d)
			}
		}
	})
}

func FuzzMarshalText(f *testing.F) {
	for _, tc := range conversions {
		f.Add(int32(tc.n))
	}
	f.Fuzz(func(t *testing.T, n int32) {
		for _, key := range Keys() {
			want, err := MustLookup(key).FromDayNumber(core.DayNumber(n))
			if err != nil {
				continue
			}
			b, _ := want.MarshalText()
			var got Date
			if err := got.UnmarshalText(b); err != nil {
				t.Errorf("UnmarshalText(%q) = _, %v, want <nil>", string(b), err)
			}
			if got != want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", string(b), got, want)
			}
		}
	})
}

// builtins are the calendars registered by the package. Tests may register
// more calendars, with smaller ranges.
var builtins = []*Calendar{
	Gregorian(),
	Julian(),
	Coptic(),
	Ethiopic(),
	Armenian(),
	Zoroastrian(),
	Egyptian(),
	TabularIslamic(),
}

func FuzzUnmarshalText(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		c := builtins[rnd.Intn(len(builtins))]
		d, err := c.FromDaysSinceEpoch(int32(rnd.Intn(3e6)))
		if err != nil {
			f.Fatal(err)
		}
		b, err := d.MarshalText()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalText does not panic.
		d.UnmarshalText(b)
	})
}

func FuzzMarshalBinary(f *testing.F) {
	for _, tc := range conversions {
		f.Add(int32(tc.n))
	}
	f.Fuzz(func(t *testing.T, n int32) {
		for _, key := range Keys() {
			want, err := MustLookup(key).FromDayNumber(core.DayNumber(n))
			if err != nil {
				continue
			}
			b, _ := want.MarshalBinary()
			var got Date
			if err := got.UnmarshalBinary(b); err != nil {
				t.Errorf("UnmarshalBinary(%q) = _, %v, want <nil>", string(b), err)
			}
			if got != want {
				t.Errorf("UnmarshalBinary(%q) = %v, want %v", string(b), got, want)
			}
		}
	})
}

func FuzzUnmarshalBinary(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		c := builtins[rnd.Intn(len(builtins))]
		d, err := c.FromDaysSinceEpoch(int32(rnd.Intn(3e6)))
		if err != nil {
			f.Fatal(err)
		}
		b, err := d.MarshalBinary()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalBinary does not panic.
		d.UnmarshalBinary(b)
	})
}

func TestUnmarshalErrors(t *testing.T) {
	var d Date
	require.ErrorIs(t, d.UnmarshalText([]byte("nope:2024-01-01")), ErrUnknownKey)
	require.ErrorIs(t, d.UnmarshalText([]byte("gregorian:2023-02-29")), core.ErrDayOutOfRange)
	require.NoError(t, d.UnmarshalText([]byte("2024-02-29")))
	require.Equal(t, Gregorian().MustDate(2024, 2, 29), d)

	b, err := Coptic().MustDate(1712, 6, 17).MarshalBinary()
	require.NoError(t, err)
	require.Error(t, d.UnmarshalBinary(nil))
	require.Error(t, d.UnmarshalBinary(b[:len(b)-1]))
	require.Error(t, d.UnmarshalBinary(append(b, 0)))
	require.Error(t, d.UnmarshalBinary([]byte{10, 'a'}))
	require.NoError(t, d.UnmarshalBinary(b))
	require.Equal(t, Coptic().MustDate(1712, 6, 17), d)
}

// check that the given Gregorian year, month and day values produce the same
// date calculations as time.Time.
func check(t *testing.T, year, month, day int) {
	d := Gregorian().MustDate(int32(year), int32(month), int32(day))
	got := time.Date(1, 1, 1, 6, 0, 0, 0, time.UTC).AddDate(0, 0, int(d.DayNumber()))
	want := time.Date(year, time.Month(month), day, 6, 0, 0, 0, time.UTC)
	if got != want {
		t.Errorf("Date(%d, %d, %d): %v != %v", year, month, day, got.Format(time.DateOnly), want.Format(time.DateOnly))
	}
	Y, M, D := d.Date()
	if wantY, wantM, wantD := want.Date(); int(Y) != wantY || time.Month(M) != wantM || int(D) != wantD {
		t.Errorf("Date(%d, %d, %d).Date() = %d, %d, %d, want %d, %d, %d", year, month, day, Y, M, D, wantY, wantM, wantD)
	}
	t.Logf("Date(%d, %d, %d).Date() = %d, %d, %d", year, month, day, Y, M, D)
	if gotYD, wantYD := d.DayOfYear(), want.YearDay(); int(gotYD) != wantYD {
		t.Errorf("Date(%d, %d, %d).DayOfYear() = %d, want %d", year, month, day, gotYD, wantYD)
	}
	if gotWD, wantWD := d.Weekday(), want.Weekday(); gotWD != wantWD {
		t.Errorf("Date(%d, %d, %d).Weekday() = %v, want %v", year, month, day, gotWD, wantWD)
	}
	gotIY, gotIW := d.ISOWeek()
	wantIY, wantIW := want.ISOWeek()
	if int(gotIY) != wantIY || int(gotIW) != wantIW {
		t.Errorf("Date(%d, %d, %d).ISOWeek() = (%d, %d), want (%d, %d)", year, month, day, gotIY, gotIW, wantIY, wantIW)
	}
	if got := d.Time(6, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Date(%d, %d, %d).Time(…) = %v, want %v", year, month, day, got, want)
	}
}
