// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar contains date types for arithmetical calendars.
//
// A [Calendar] combines a schema, which describes how a calendar divides
// its years into months and days, with an epoch, which anchors the first day
// of the schema on the universal timeline, and a range of supported years.
// Its dates are [Date] values, which can be converted between calendars,
// formatted, parsed and marshaled.
//
// The package ships with the Gregorian, Julian, Coptic, Ethiopic, Armenian,
// Zoroastrian, Egyptian and tabular Islamic calendars, which are available
// from a process-wide catalog. Additional calendars can be created with [New]
// and added to the catalog with [Register] or [Add].
//
// Unlike [time.Date], constructors of this package do not normalize their
// arguments. Invalid dates are rejected with an error, which matches one of
// the sentinel errors of package [core] under [errors.Is]. Arithmetic which
// would leave the range of a calendar fails with [core.ErrOverflow].
package calendar

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"gonih.org/calendar/core"
	"gonih.org/calendar/schema"
	"gonih.org/calendar/scope"
	"gonih.org/calendar/validate"
)

// A Calendar is an immutable, bounded calendar. It is safe for concurrent use.
type Calendar struct {
	id     uint32
	key    string
	schema *schema.Schema
	scope  *scope.Scope
	v      *validate.Calendar
}

var lastID atomic.Uint32

type options struct {
	years   core.Range[int32]
	minDate *core.DateParts
}

// An Option configures a Calendar created by New.
type Option func(*options)

// WithYears restricts a calendar to the years from min to max. The default is
// [scope.StandardYears].
func WithYears(min, max int32) Option {
	return func(o *options) {
		o.years = core.Range[int32]{Min: min, Max: max}
	}
}

// WithProlepticYears extends a calendar to [scope.ProlepticYears].
func WithProlepticYears() Option {
	return WithYears(scope.ProlepticYears.Min, scope.ProlepticYears.Max)
}

// WithMinDate makes a calendar start on the given date instead of the first
// day of its first year. It overrides the lower bound set by WithYears.
func WithMinDate(year, month, day int32) Option {
	return func(o *options) {
		o.minDate = &core.DateParts{Year: year, Month: month, Day: day}
	}
}

// New returns a calendar using the given schema, with day 0 of the schema
// falling on epoch.
//
// key identifies the calendar in the catalog and in marshaled dates. It must
// not be empty and must not contain a colon or white space. New fails with an
// error matching [core.ErrConfiguration] if key or the options are invalid,
// and with [core.ErrOverflow] if the calendar does not fit into the
// universal timeline.
func New(key string, s *schema.Schema, epoch core.DayNumber, opts ...Option) (*Calendar, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	o := options{years: scope.StandardYears}
	for _, opt := range opts {
		opt(&o)
	}
	if o.years.Min > o.years.Max {
		return nil, fmt.Errorf("calendar %q: years %v: %w", key, o.years, core.ErrConfiguration)
	}

	var (
		sc  *scope.Scope
		err error
	)
	if o.minDate != nil {
		sc, err = scope.NewBoundedBelow(s, epoch, *o.minDate, o.years.Max)
	} else {
		sc, err = scope.NewMinMaxYear(s, epoch, o.years)
	}
	if err != nil {
		return nil, fmt.Errorf("calendar %q: %w", key, err)
	}
	return &Calendar{
		id:     lastID.Add(1),
		key:    key,
		schema: s,
		scope:  sc,
		v:      validate.New(sc),
	}, nil
}

func checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty calendar key: %w", core.ErrConfiguration)
	}
	if strings.ContainsFunc(key, func(r rune) bool { return r == ':' || r == ' ' || r == '\t' || r == '\n' || r == '\r' }) {
		return fmt.Errorf("invalid calendar key %q: %w", key, core.ErrConfiguration)
	}
	return nil
}

// ID returns a number identifying c within the running process. IDs are
// assigned in order of creation and are not stable across processes; use Key
// to persist a reference to a calendar.
func (c *Calendar) ID() uint32 { return c.id }

// Key returns the key of c.
func (c *Calendar) Key() string { return c.key }

// Schema returns the schema of c.
func (c *Calendar) Schema() *schema.Schema { return c.schema }

// Scope returns the scope of c.
func (c *Calendar) Scope() *scope.Scope { return c.scope }

// Epoch returns the day number of day 0 of c.
func (c *Calendar) Epoch() core.DayNumber { return c.scope.Epoch() }

// Domain returns the range of day numbers supported by c.
func (c *Calendar) Domain() core.Range[core.DayNumber] { return c.scope.Domain() }

// date returns the date of c with the given days since the epoch. Dates of
// the built-in Gregorian calendar are stored with a nil calendar, so that they
// compare equal to the zero Date.
func (c *Calendar) date(days int32) Date {
	if c == gregorian {
		return Date{days: days}
	}
	return Date{cal: c, days: days}
}

// MinDate returns the first date supported by c.
func (c *Calendar) MinDate() Date {
	return c.date(c.v.Days().Range().Min)
}

// MaxDate returns the last date supported by c.
func (c *Calendar) MaxDate() Date {
	return c.date(c.v.Days().Range().Max)
}

// String returns the key of c.
func (c *Calendar) String() string { return c.key }

// IsLeapYear reports whether y is a leap year.
func (c *Calendar) IsLeapYear(y int32) (bool, error) {
	if err := c.v.ValidateYear(y, ""); err != nil {
		return false, err
	}
	return c.schema.IsLeapYear(y), nil
}

// CountMonthsInYear returns the number of months in y.
func (c *Calendar) CountMonthsInYear(y int32) (int32, error) {
	if err := c.v.ValidateYear(y, ""); err != nil {
		return 0, err
	}
	return c.schema.CountMonthsInYear(y), nil
}

// CountDaysInYear returns the number of days in y.
func (c *Calendar) CountDaysInYear(y int32) (int32, error) {
	if err := c.v.ValidateYear(y, ""); err != nil {
		return 0, err
	}
	return c.schema.CountDaysInYear(y), nil
}

// CountDaysInMonth returns the number of days in month m of y.
func (c *Calendar) CountDaysInMonth(y, m int32) (int32, error) {
	if err := c.v.ValidateYearMonth(y, m, ""); err != nil {
		return 0, err
	}
	return c.schema.CountDaysInMonth(y, m), nil
}

// Date returns the date with the given year, month and day. Unlike
// [time.Date], it does not normalize its arguments.
func (c *Calendar) Date(y, m, d int32) (Date, error) {
	p, err := c.v.Parts().DateParts(y, m, d)
	if err != nil {
		return Date{}, err
	}
	return c.date(c.schema.CountDaysSinceEpoch(p.Year, p.Month, p.Day)), nil
}

// MustDate is like Date, but panics if the date is invalid. It is intended for
// package-level variables and tests.
func (c *Calendar) MustDate(y, m, d int32) Date {
	date, err := c.Date(y, m, d)
	if err != nil {
		panic(err)
	}
	return date
}

// OrdinalDate returns the date with the given year and day of the year.
func (c *Calendar) OrdinalDate(y, doy int32) (Date, error) {
	p, err := c.v.Parts().OrdinalParts(y, doy)
	if err != nil {
		return Date{}, err
	}
	return c.date(c.schema.CountDaysSinceEpochOrdinal(p.Year, p.DayOfYear)), nil
}

// FromDaysSinceEpoch returns the date which lies the given number of days
// after the epoch of c.
func (c *Calendar) FromDaysSinceEpoch(days int32) (Date, error) {
	if err := c.v.Days().Validate(days, ""); err != nil {
		return Date{}, err
	}
	return c.date(days), nil
}

// FromDayNumber returns the date of c falling on n.
func (c *Calendar) FromDayNumber(n core.DayNumber) (Date, error) {
	if err := c.v.DayNumbers().Validate(n); err != nil {
		return Date{}, err
	}
	return c.date(int32(n - c.Epoch())), nil
}

// Today returns the current date of c in the given location.
func (c *Calendar) Today(loc *time.Location) (Date, error) {
	return c.FromTime(time.Now().In(loc))
}

// FromTime returns the date of c on which t falls, in the location of t.
func (c *Calendar) FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	n, err := gregorianDayNumber(int64(y), int32(m), int32(d))
	if err != nil {
		return Date{}, err
	}
	return c.FromDayNumber(n)
}

// gregorianDayNumber returns the day number of a proleptic Gregorian date.
func gregorianDayNumber(y int64, m, d int32) (core.DayNumber, error) {
	g := schema.Gregorian()
	y32, err := core.Narrow(y)
	if err != nil {
		return 0, err
	}
	if err := g.PreValidator().ValidateYear(y32, ""); err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrOverflow, err)
	}
	return core.DayNumber(g.CountDaysSinceEpoch(y32, m, d)), nil
}
