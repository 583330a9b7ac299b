// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

// Package conformance provides the fixture descriptor set for the
// constprobe conformance test suite. The set exercises every value type
// the serializer supports — all signed and unsigned integer widths,
// single/double/extended precision floats, char, and string — including
// the boundary values (minimum/maximum magnitudes per width, zero, the
// empty string) and delimiter-bearing string values.
//
// [Constants] returns the descriptor set, [Expected] the matching
// expected records, and [Reference] the built-in reference table; the
// conformance probe binary emits the set and the test suite compares the
// two. In production the descriptor list is supplied by the binding
// generator instead; this package exists so the mechanism itself can be
// verified without one.
package conformance
