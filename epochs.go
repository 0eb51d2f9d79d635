// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"gonih.org/calendar/core"
	"gonih.org/calendar/schema"
)

// Epochs of the built-in calendars, as day numbers. They are the first days
// of the respective calendars, given in the Julian calendar by convention.
var (
	GregorianEpoch      core.DayNumber = 0
	JulianEpoch         core.DayNumber = -2
	CopticEpoch                        = julianDayNumber(284, 8, 29)
	EthiopicEpoch                      = julianDayNumber(8, 8, 29)
	ArmenianEpoch                      = julianDayNumber(552, 7, 11)
	ZoroastrianEpoch                   = julianDayNumber(632, 6, 16)
	EgyptianEpoch                      = julianDayNumber(-746, 2, 26) // Nabonassar, 747 BCE
	TabularIslamicEpoch                = julianDayNumber(622, 7, 16)
)

// julianDayNumber returns the day number of a date of the proleptic Julian
// calendar. Years are numbered astronomically.
func julianDayNumber(y, m, d int32) core.DayNumber {
	return JulianEpoch + core.DayNumber(schema.Julian().CountDaysSinceEpoch(y, m, d))
}

var (
	gregorian      = builtin("gregorian", schema.Gregorian(), GregorianEpoch)
	julian         = builtin("julian", schema.Julian(), JulianEpoch)
	coptic         = builtin("coptic", schema.Coptic13(), CopticEpoch)
	ethiopic       = builtin("ethiopic", schema.Coptic13(), EthiopicEpoch)
	armenian       = builtin("armenian", schema.Egyptian13(), ArmenianEpoch)
	zoroastrian    = builtin("zoroastrian", schema.Egyptian13(), ZoroastrianEpoch)
	egyptian       = builtin("egyptian", schema.Egyptian13(), EgyptianEpoch)
	tabularIslamic = builtin("tabular-islamic", schema.TabularIslamic(), TabularIslamicEpoch)
)

// builtin creates a calendar over the standard years and registers it.
func builtin(key string, s *schema.Schema, epoch core.DayNumber) *Calendar {
	c, err := New(key, s, epoch)
	if err != nil {
		panic(err)
	}
	if err := Register(c); err != nil {
		panic(err)
	}
	return c
}

// Gregorian returns the proleptic Gregorian calendar, over the years 1 to 9999.
func Gregorian() *Calendar { return gregorian }

// Julian returns the proleptic Julian calendar, over the years 1 to 9999.
func Julian() *Calendar { return julian }

// Coptic returns the Coptic calendar, over the years 1 to 9999 of the Era of
// the Martyrs.
func Coptic() *Calendar { return coptic }

// Ethiopic returns the Ethiopic calendar, over the years 1 to 9999 of the Era
// of Incarnation.
func Ethiopic() *Calendar { return ethiopic }

// Armenian returns the Armenian calendar, over the years 1 to 9999.
func Armenian() *Calendar { return armenian }

// Zoroastrian returns the Zoroastrian calendar, over the years 1 to 9999 of
// the Yazdegerd era.
func Zoroastrian() *Calendar { return zoroastrian }

// Egyptian returns the Egyptian calendar, over the years 1 to 9999 of the era
// of Nabonassar.
func Egyptian() *Calendar { return egyptian }

// TabularIslamic returns the arithmetical Islamic calendar, over the years 1
// to 9999 of the Hijra.
func TabularIslamic() *Calendar { return tabularIslamic }
