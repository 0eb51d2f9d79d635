// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema implements the arithmetic of calendar families.
//
// A [Kernel] converts between three representations of a day: a year, month
// and day of month; a year and day of the year; and the number of days since
// the first day of year 1. A [Schema] wraps a kernel with metadata describing
// it, derives the remaining conversions from the kernel primitives and
// provides a [PreValidator] to check dates against the intrinsic limits of the
// schema.
//
// Schemas know nothing about where their day zero lies on the universal
// timeline or which years a particular calendar supports; see packages
// segment and scope for that.
package schema
