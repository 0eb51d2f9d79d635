// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonih.org/calendar/internal/cache"
)

// These are predefined layouts for use in [Date.Format] and
// [Calendar.Parse]. The reference date used in these layouts is the specific
// date:
//
//	January 2, 2006
//
// That value is recorded as the constant named [Layout], listed below. The date
// is chosen for compatibility with package [time].
//
// Layouts work the same as [time.Layout], except that only
// numeric components and the names of the days of the week are recognized.
// Month names depend on the calendar and two-digit years are ambiguous over
// the ranges of years supported by calendars, so they are treated as
// literals. Specifically, the recognized components are
//
//	Year: "2006" "_2006"
//	Month: "01" "1"
//	Day of the week: "Mon" "Monday"
//	Day of the month: "2" "_2", "02"
//	Day of the year: "__2" "002"
//
// Years are formatted with at least four digits and a leading minus sign if
// they are negative.
const (
	Layout  = "01/02 2006" // The reference date, in numerical order
	RFC3339 = "2006-01-02"
	Ordinal = "2006-002"
)

var longDayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var shortDayNames = []string{
	"Sun",
	"Mon",
	"Tue",
	"Wed",
	"Thu",
	"Fri",
	"Sat",
}

// inst is a single component of a layout string, either a literal string, or a
// formatting operator.
type inst struct {
	op  fmtOp
	lit string
}

// String implements fmt.Stringer, for debugging
func (i inst) String() string {
	if i.op == opLiteral {
		return i.lit
	}
	return i.op.String()
}

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota

	// Sorted by parsing preference, do not re-order!
	opLongWeekDay
	opWeekDay
	opZeroYearDay
	opZeroMonth
	opZeroDay
	opNumMonth
	opLongYear
	opDay
	opUnderLongYear
	opUnderDay
	opUnderYearDay

	opInvalid
)

// opNames are the layout components of the operators, by fmtOp.
var opNames = [...]string{
	opLiteral:       "<literal>",
	opLongWeekDay:   "Monday",
	opWeekDay:       "Mon",
	opZeroYearDay:   "002",
	opZeroMonth:     "01",
	opZeroDay:       "02",
	opNumMonth:      "1",
	opLongYear:      "2006",
	opDay:           "2",
	opUnderLongYear: "_2006",
	opUnderDay:      "_2",
	opUnderYearDay:  "__2",
}

// String implements fmt.Stringer. Except for opLiteral, it returns the layout
// component of the operator.
func (op fmtOp) String() string {
	if op < 0 || op >= opInvalid {
		panic("invalid fmtOp")
	}
	return opNames[op]
}

// endsWord returns whether op must be a full word, that is must not be
// followed by a lower-case letter.
func (op fmtOp) endsWord() bool {
	return op == opWeekDay
}

// program is a compiled layout.
type program []inst

// Size implements cache.Sizer.
func (p program) Size() int64 {
	return int64(len(p)) + 1
}

// memoize compiled layout strings.
var memo cache.Cache[string, program]

// parseLayout parses layout into a set of instructions to parse or format
// according to it.
func parseLayout(layout string) program {
	var prog program
	for len(layout) > 0 {
		prefix, op, suffix := nextOp(layout)
		if prefix != "" {
			prog = append(prog, inst{lit: prefix})
		}
		if op != opLiteral {
			prog = append(prog, inst{op: op})
		}
		layout = suffix
	}
	return prog
}

// nextOp decomposes layout into the next operator, a literal prefix and the
// rest of the layout.
func nextOp(layout string) (prefix string, op fmtOp, suffix string) {
	for i := 0; i < len(layout); i++ {
		for op := opLongWeekDay; op < opInvalid; op++ {
			suffix, ok := strings.CutPrefix(layout[i:], op.String())
			if !ok {
				continue
			}
			if op.endsWord() && startsWithLowerCase(suffix) {
				continue
			}
			return layout[:i], op, suffix
		}
	}
	return layout, opLiteral, ""
}

// startsWithLowerCase reports whether the string has a lower-case letter at
// the beginning. Its purpose is to prevent matching strings like "Month" when
// looking for "Mon".
func startsWithLowerCase(s string) bool {
	return len(s) > 0 && 'a' <= s[0] && s[0] <= 'z'
}

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See the documentation for
// the constant called Layout to see how to represent the layout format.
func (d Date) Format(layout string) string {
	const bufSize = 64
	var b []byte
	max := len(layout) + 10
	if max < bufSize {
		var buf [bufSize]byte
		b = buf[:0]
	} else {
		b = make([]byte, 0, max)
	}
	return string(d.AppendFormat(b, layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (d Date) AppendFormat(b []byte, layout string) []byte {
	s := d.Calendar().schema
	year, yday := s.GetYear(d.days)
	month, day := s.GetMonth(year, yday)

	prog := memo.Get(layout, parseLayout)

	for _, i := range prog {
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opUnderLongYear:
			b = append(b, '_')
			fallthrough
		case opLongYear:
			y := int64(year)
			if y < 0 {
				b = append(b, '-')
				y = -y
			}
			b = appendPadded(b, y, 4, '0')
		case opNumMonth:
			b = strconv.AppendInt(b, int64(month), 10)
		case opZeroMonth:
			b = appendPadded(b, int64(month), 2, '0')
		case opWeekDay:
			b = append(b, shortDayNames[d.Weekday()]...)
		case opLongWeekDay:
			b = append(b, longDayNames[d.Weekday()]...)
		case opDay:
			b = strconv.AppendInt(b, int64(day), 10)
		case opUnderDay:
			b = appendPadded(b, int64(day), 2, ' ')
		case opZeroDay:
			b = appendPadded(b, int64(day), 2, '0')
		case opUnderYearDay:
			b = appendPadded(b, int64(yday), 3, ' ')
		case opZeroYearDay:
			b = appendPadded(b, int64(yday), 3, '0')
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
	}
	return b
}

// appendPadded appends the decimal representation of the non-negative v,
// left-padded with pad to width bytes.
func appendPadded(b []byte, v int64, width int, pad byte) []byte {
	for n := int64(10); width > 1; n, width = n*10, width-1 {
		if v < n {
			b = append(b, pad)
		}
	}
	return strconv.AppendInt(b, v, 10)
}

// Parse parses a formatted string and returns the date of c it represents.
// See the documentation for the constant called Layout to see how to
// represent the format. The second argument must be parseable using the
// format string (layout) provided as the first argument.
//
// Elements omitted from the layout are assumed to be one. Years may have a
// leading minus sign and must have at least four digits; more digits are only
// accepted if the year is followed by a literal or the end of the layout. The
// day of the week is checked for syntax but is otherwise ignored.
//
// The parsed date is validated by the calendar. If it is invalid, the
// returned *ParseError wraps the error of the validator, so it can be
// inspected with errors.Is and errors.As.
func (c *Calendar) Parse(layout, value string) (Date, error) {
	p := newParser(value)
	var (
		// kept around for error reporting
		alayout, avalue = layout, value
		year            int32 = 1
		month           int32 = -1
		day             int32 = -1
		yday            int32 = -1
	)

	prog := memo.Get(layout, parseLayout)

	// Execute the parsing instructions
	for j, i := range prog {
		p.setInst(i)
		switch i.op {
		case opLiteral:
			p.accept(i.lit)
		case opUnderLongYear:
			p.accept("_")
			fallthrough
		case opLongYear:
			year = p.year(j+1 == len(prog) || prog[j+1].op == opLiteral)
		case opNumMonth, opZeroMonth:
			month = int32(p.num(i.op == opZeroMonth))
		case opWeekDay:
			// ignore weekday, except for parsing
			p.lookup(shortDayNames)
		case opLongWeekDay:
			// ignore weekday, except for parsing
			p.lookup(longDayNames)
		case opUnderDay:
			p.skipByte(' ')
			fallthrough
		case opDay, opZeroDay:
			day = int32(p.num(i.op == opZeroDay))
		case opUnderYearDay:
			p.skipByte(' ')
			p.skipByte(' ')
			fallthrough
		case opZeroYearDay:
			yday = int32(p.num3(i.op == opZeroYearDay))
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
		if p.hasErr {
			return Date{}, p.err(alayout, avalue, "", nil)
		}
	}
	if len(p.value) > 0 {
		return Date{}, p.err(alayout, avalue, "extra text: "+strconv.Quote(p.value), nil)
	}
	p.finish()

	// Validate the parsed date
	if yday >= 0 {
		if err := c.v.ValidateOrdinal(year, yday, ""); err != nil {
			return Date{}, p.err(alayout, avalue, "", err)
		}
		// If month, day already seen, yday's m, d must match.
		m, d := c.schema.GetMonth(year, yday)
		if month >= 0 && month != m {
			return Date{}, p.err(alayout, avalue, "day-of-year does not match month", nil)
		}
		if day >= 0 && day != d {
			return Date{}, p.err(alayout, avalue, "day-of-year does not match day", nil)
		}
		return c.date(c.schema.CountDaysSinceEpochOrdinal(year, yday)), nil
	}
	if month < 0 {
		month = 1
	}
	if day < 0 {
		day = 1
	}
	if err := c.v.ValidateYearMonthDay(year, month, day, ""); err != nil {
		return Date{}, p.err(alayout, avalue, "", err)
	}
	return c.date(c.schema.CountDaysSinceEpoch(year, month, day)), nil
}

// match reports whether s1 and s2 match ignoring case.
// It is assumed s1 and s2 are the same length.
func match(s1, s2 string) bool {
	for i := 0; i < len(s1); i++ {
		c1 := s1[i]
		c2 := s2[i]
		if c1 != c2 {
			// Switch to lower-case; 'a'-'A' is known to be a single bit.
			c1 |= 'a' - 'A'
			c2 |= 'a' - 'A'
			if c1 != c2 || c1 < 'a' || c1 > 'z' {
				return false
			}
		}
	}
	return true
}

func isDigit(s string, i int) bool {
	if len(s) <= i {
		return false
	}
	return '0' <= s[i] && s[i] <= '9'
}

type parser struct {
	inst   inst
	hasErr bool
	value  string
	valEl  string
}

func newParser(value string) *parser {
	return &parser{
		value: value,
	}
}

// setInst sets the current instruction and input offset for error reporting.
func (p *parser) setInst(i inst) {
	p.inst = i
	p.valEl = p.value
}

// finish signals that parsing is finished and the parser is only being kept
// around for error reporting.
func (p *parser) finish() {
	p.inst = inst{op: opInvalid}
	p.valEl = ""
}

// parseFailed signals that the parse has failed at the current instruction.
func (p *parser) parseFailed() {
	p.hasErr = true
}

// err returns a *ParseError. If msg is empty and cause is nil, it reports the
// current instruction.
func (p *parser) err(layout, value, msg string, cause error) error {
	// The input is cloned, so that it does not escape in the happy path of
	// Parse.
	v := strings.Clone(value)
	if msg == "" && cause == nil {
		ve := strings.Clone(p.valEl)
		le := strings.Clone(p.inst.String())
		return &ParseError{
			Layout:     layout,
			Value:      v,
			LayoutElem: le,
			ValueElem:  ve,
		}
	}
	return &ParseError{
		Layout:  layout,
		Value:   v,
		Message: msg,
		Err:     cause,
	}
}

// skipByte skips the given byte, if the input starts with it.
func (p *parser) skipByte(b byte) {
	if len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// trimByte skips a run of the given byte.
func (p *parser) trimByte(b byte) {
	for len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// accept a literal string, treating runs of space characters as equivalent.
func (p *parser) accept(lit string) {
	for len(lit) > 0 {
		if lit[0] == ' ' {
			if p.value != "" && p.value[0] != ' ' {
				p.parseFailed()
				return
			}
			p.trimByte(' ')
			lit = strings.TrimLeft(lit, " ")
			continue
		}
		if p.value == "" || p.value[0] != lit[0] {
			p.parseFailed()
			return
		}
		lit, p.value = lit[1:], p.value[1:]
	}
}

// year parses an optionally negative year of at least four digits. If greedy
// is set, digits beyond the fourth are consumed as well, unless the year
// starts with a zero.
func (p *parser) year(greedy bool) int32 {
	neg := len(p.value) > 0 && p.value[0] == '-'
	if neg {
		p.value = p.value[1:]
	}
	n := p.getnumN(4, true)
	if p.hasErr {
		return 0
	}
	if greedy && n >= 1000 {
		for isDigit(p.value, 0) && n < 100_000_000 {
			n = n*10 + int(p.value[0]-'0')
			p.value = p.value[1:]
		}
	}
	if neg {
		n = -n
	}
	return int32(n)
}

// getnumN parses s[0:1], …, or s[0:N] (fixed forces s[0:N])
// as a decimal integer.
func (p *parser) getnumN(N int, fixed bool) int {
	var n, i int
	for i = 0; i < N && isDigit(p.value, i); i++ {
		n = n*10 + int(p.value[i]-'0')
	}
	if i == 0 || (fixed && i != N) {
		p.parseFailed()
		return 0
	}
	p.value = p.value[i:]
	return n
}

// num parses s[:1] or s[:2] (fixed forces s[:2]) as a decimal integer.
func (p *parser) num(fixed bool) int {
	return p.getnumN(2, fixed)
}

// num3 parses s[:1], s[:2] or s[:3] (fixed forces s[:3]) as a decimal integer.
func (p *parser) num3(fixed bool) int {
	return p.getnumN(3, fixed)
}

// lookup a value from a table and accept a case-insensitive match.
func (p *parser) lookup(table []string) int {
	for i, v := range table {
		if len(p.value) >= len(v) && match(p.value[0:len(v)], v) {
			p.value = p.value[len(v):]
			return i
		}
	}
	p.parseFailed()
	return 0
}

// ParseError describes a problem parsing a date string.
type ParseError struct {
	Layout     string
	Value      string
	LayoutElem string
	ValueElem  string
	Message    string
	// Err is the validation error, if the value could be parsed but does
	// not denote a valid date.
	Err error
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("parsing date %q: %v", e.Value, e.Err)
	case e.Message == "":
		return fmt.Sprintf("parsing date %q as %q: cannot parse %q as %q", e.Value, e.Layout, e.ValueElem, e.LayoutElem)
	}
	return fmt.Sprintf("parsing date %q: %s", e.Value, e.Message)
}

// Unwrap returns e.Err.
func (e *ParseError) Unwrap() error {
	return e.Err
}
