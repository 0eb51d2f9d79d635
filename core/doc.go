// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core contains the value types shared by all calendrical packages:
// date, ordinal and month parts, integer ranges, the universal DayNumber and
// the error taxonomy used by validators.
//
// Everything in this package is immutable and safe for concurrent use.
package core
