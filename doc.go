// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package strand provides the shared symbol/size data model used by every
// subsystem in this module: suffix arrays, suffix trees, Hirschberg-based
// alignment, and the longest-repeated/common-substring routines built on
// top of them.
//
// A text is any []T for a comparable T. Ordering is carried by a
// caller-supplied strict-weak Less[T] predicate rather than a built-in
// ordering, so texts of runes, bytes, or arbitrary tokens are all first
// class. Offsets into a text use a caller-chosen unsigned integer type,
// constrained by [golang.org/x/exp/constraints.Unsigned], so callers can
// bound memory for small texts (uint16/uint32) or stay general (uint64).
package strand
