// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

// Package constprobe implements the constant-conformance probe used to
// verify that the constant values baked into a generated binding match
// what the native toolchain actually resolves those symbols to.
//
// A binding generator supplies an ordered list of constant descriptors,
// each pairing a symbol name with the symbol's compile-time value in one
// of a fixed set of static types. The probe serializes every descriptor
// to a canonical text form and emits one record per symbol:
//
//	<name>;<value>\n
//
// An independently generated reference table (typically produced from
// static analysis of the library headers rather than compilation) is then
// compared against the report. Any divergence — a changed value, a symbol
// missing from either side — signals ABI drift between the binding's
// compile-time assumptions and the headers installed at verification
// time.
//
// # Value types
//
// The serializer is closed over a fixed, finite type set: signed and
// unsigned integers at 8/16/32/64 bits, single and double precision
// floats, an extended-precision float, a single character, and a string.
// Each type has a dedicated constructor ([Int8], [Uint32], [Float64],
// [String], ...) producing a [Descriptor]; there is no way to construct a
// descriptor for an unsupported type, so the "unsupported type" failure
// class is a compile error rather than a runtime one. Formatting is
// dispatched through the concrete value type, never by switching on a
// boxed runtime tag.
//
// # Report and comparison
//
// [WriteReport] emits the line-oriented wire format in a single forward
// pass. [ParseReport] reads it back, splitting each line on the first
// delimiter so string-valued constants containing ';' survive a round
// trip. [Compare] keys the report against a [Reference] by symbol name
// and produces a [Results] verdict; an unmatched symbol on either side is
// itself a conformance failure.
//
// Reports can also be encoded as a single Arrow record batch
// ([WriteReportIPC], [ReadReportIPC]) for comparison steps that prefer
// columnar input, and reference tables may be zstd-compressed
// ([OpenReference] decompresses *.zst transparently).
//
// A probe binary's exit status 0 means the probe ran to completion, not
// that the values matched; the verdict belongs to the comparison step.
package constprobe
