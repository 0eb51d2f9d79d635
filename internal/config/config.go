// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads calendar definitions from YAML files.
//
// A file lists calendars, each built from one of the schemas of package
// schema and an epoch:
//
//	calendars:
//	  - key: my-coptic
//	    schema: coptic13
//	    epoch: { calendar: julian, date: "0284-08-29" }
//	    years: [1, 3000]
//	  - key: reform
//	    schema: gregorian
//	    epoch: { dayNumber: 0 }
//	    minDate: "1582-10-15"
//	    maxYear: 2999
//
// The epoch is either a day number or a date in a calendar of the catalog,
// which is interpreted proleptically. Calendars are registered in the order of
// the file, so an entry can use the calendars defined before it as the
// calendar of its epoch.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"gonih.org/calendar"
	"gonih.org/calendar/core"
	"gonih.org/calendar/schema"
)

// File is the contents of a calendar definition file.
type File struct {
	Calendars []Entry `yaml:"calendars"`
}

// Entry defines a single calendar.
type Entry struct {
	Key    string `yaml:"key"`
	Schema string `yaml:"schema"`
	Epoch  Epoch  `yaml:"epoch"`
	// Years are the first and last supported year. They default to 1 and
	// 9999.
	Years []int32 `yaml:"years,omitempty"`
	// MinDate is the first supported day, in the form YYYY-MM-DD. It can
	// not be combined with Years; use MaxYear to set the last supported year.
	MinDate string `yaml:"minDate,omitempty"`
	MaxYear int32  `yaml:"maxYear,omitempty"`
}

// Epoch locates the first day of a calendar.
type Epoch struct {
	// Calendar is the key of the calendar Date is given in. It defaults to
	// "gregorian".
	Calendar  string `yaml:"calendar,omitempty"`
	Date      string `yaml:"date,omitempty"`
	DayNumber *int32 `yaml:"dayNumber,omitempty"`
}

var schemas = map[string]*schema.Schema{}

func init() {
	for _, s := range []*schema.Schema{
		schema.Gregorian(),
		schema.Julian(),
		schema.Coptic12(),
		schema.Coptic13(),
		schema.Egyptian12(),
		schema.Egyptian13(),
		schema.TabularIslamic(),
	} {
		schemas[s.Name()] = s
	}
}

// Parse decodes a calendar definition file. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	f := new(File)
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, nil
		}
		return nil, fmt.Errorf("failed to parse calendar definitions: %w", err)
	}
	return f, nil
}

// Load reads and decodes the calendar definition file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar definitions %s: %w", path, err)
	}
	return Parse(data)
}

// Register creates the calendars of f and adds them to the catalog, in order.
// It stops at the first entry which can not be created or whose key is
// already taken, and returns the calendars registered until then.
func (f *File) Register() ([]*calendar.Calendar, error) {
	var out []*calendar.Calendar
	for i := range f.Calendars {
		e := &f.Calendars[i]
		c, err := e.Calendar()
		if err != nil {
			return out, err
		}
		if err := calendar.Register(c); err != nil {
			return out, fmt.Errorf("calendar %q: %w", e.Key, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Calendar creates the calendar defined by e, without registering it. Errors
// name the key of e.
func (e *Entry) Calendar() (*calendar.Calendar, error) {
	c, err := e.build()
	if err != nil {
		return nil, fmt.Errorf("calendar %q: %w", e.Key, err)
	}
	return c, nil
}

func (e *Entry) build() (*calendar.Calendar, error) {
	s, ok := schemas[e.Schema]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q: %w", e.Schema, core.ErrConfiguration)
	}
	epoch, err := e.Epoch.dayNumber()
	if err != nil {
		return nil, err
	}
	var opts []calendar.Option
	switch len(e.Years) {
	case 0:
	case 2:
		if e.MinDate != "" {
			return nil, fmt.Errorf("both years and minDate set a lower bound: %w", core.ErrConfiguration)
		}
		opts = append(opts, calendar.WithYears(e.Years[0], e.Years[1]))
	default:
		return nil, fmt.Errorf("years must be a pair [min, max], got %v: %w", e.Years, core.ErrConfiguration)
	}
	if e.MinDate != "" {
		p, err := parseParts(e.MinDate)
		if err != nil {
			return nil, fmt.Errorf("minDate: %w", err)
		}
		if e.MaxYear != 0 {
			opts = append(opts, calendar.WithYears(p.Year, e.MaxYear))
		}
		opts = append(opts, calendar.WithMinDate(p.Year, p.Month, p.Day))
	} else if e.MaxYear != 0 {
		return nil, fmt.Errorf("maxYear requires minDate, use years instead: %w", core.ErrConfiguration)
	}
	return calendar.New(e.Key, s, epoch, opts...)
}

func (ep Epoch) dayNumber() (core.DayNumber, error) {
	if ep.DayNumber != nil {
		if ep.Date != "" || ep.Calendar != "" {
			return 0, fmt.Errorf("epoch must be given either as a day number or as a date: %w", core.ErrConfiguration)
		}
		return core.DayNumber(*ep.DayNumber), nil
	}
	if ep.Date == "" {
		return 0, fmt.Errorf("missing epoch: %w", core.ErrConfiguration)
	}
	key := ep.Calendar
	if key == "" {
		key = "gregorian"
	}
	c, err := calendar.Lookup(key)
	if err != nil {
		return 0, fmt.Errorf("epoch: %w", err)
	}
	// Epochs of ancient eras lie before the first year of most calendars.
	pc, err := calendar.New(key, c.Schema(), c.Epoch(), calendar.WithProlepticYears())
	if err != nil {
		return 0, fmt.Errorf("epoch: %w", err)
	}
	d, err := pc.Parse(calendar.RFC3339, ep.Date)
	if err != nil {
		return 0, fmt.Errorf("epoch: %w", err)
	}
	return d.DayNumber(), nil
}

// parseParts parses a date of the form YYYY-MM-DD, with an optionally
// negative year, without validating it.
func parseParts(s string) (core.DateParts, error) {
	neg := strings.HasPrefix(s, "-")
	fields := strings.Split(strings.TrimPrefix(s, "-"), "-")
	if len(fields) != 3 {
		return core.DateParts{}, fmt.Errorf("malformed date %q: %w", s, core.ErrConfiguration)
	}
	var v [3]int32
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 32)
		if err != nil || n < 0 {
			return core.DateParts{}, fmt.Errorf("malformed date %q: %w", s, core.ErrConfiguration)
		}
		v[i] = int32(n)
	}
	if neg {
		v[0] = -v[0]
	}
	return core.DateParts{Year: v[0], Month: v[1], Day: v[2]}, nil
}
