// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package conformance

import (
	"math"

	"github.com/bindcheck/constprobe/constprobe"
)

// Constants returns the conformance descriptor set. Entry order is the
// canonical emission order; Expected lists the same symbols in the same
// order. Names follow the shape produced by introspection-driven binding
// generators, including the cast prefixes used for enum and flag members.
func Constants() *constprobe.Set {
	return constprobe.MustSet(
		// Enum members (signed 32-bit).
		constprobe.Int32("(gint) CP_CHECK_MODE_SCRIPT", 0),
		constprobe.Int32("(gint) CP_CHECK_MODE_MODULE", 1),
		constprobe.Int32("(gint) CP_SYNTAX_RESULT_SUCCESS", 0),
		constprobe.Int32("(gint) CP_SYNTAX_RESULT_RECOVERABLE_ERROR", 1),
		constprobe.Int32("(gint) CP_SYNTAX_RESULT_IRRECOVERABLE_ERROR", 2),

		// Flag bits (unsigned 32-bit).
		constprobe.Uint32("(guint) CP_PROPERTY_CONFIGURABLE", 1),
		constprobe.Uint32("(guint) CP_PROPERTY_ENUMERABLE", 2),
		constprobe.Uint32("(guint) CP_PROPERTY_WRITABLE", 4),

		// Version macros.
		constprobe.Int32("CP_MAJOR_VERSION", 2),
		constprobe.Int32("CP_MINOR_VERSION", 49),
		constprobe.Int32("CP_MICRO_VERSION", 3),

		// String-valued option names.
		constprobe.String("CP_OPTIONS_USE_JIT", "useJIT"),
		constprobe.String("CP_OPTIONS_USE_DFG", "useDFGJIT"),

		// Signed boundary values per width.
		constprobe.Int8("CP_INT8_MIN", math.MinInt8),
		constprobe.Int8("CP_INT8_MAX", math.MaxInt8),
		constprobe.Int16("CP_INT16_MIN", math.MinInt16),
		constprobe.Int16("CP_INT16_MAX", math.MaxInt16),
		constprobe.Int32("CP_INT32_MIN", math.MinInt32),
		constprobe.Int32("CP_INT32_MAX", math.MaxInt32),
		constprobe.Int64("CP_INT64_MIN", math.MinInt64),
		constprobe.Int64("CP_INT64_MAX", math.MaxInt64),
		constprobe.Int32("CP_INT32_NEG_ONE", -1),

		// Unsigned boundary values per width.
		constprobe.Uint8("CP_UINT8_MAX", math.MaxUint8),
		constprobe.Uint16("CP_UINT16_MAX", math.MaxUint16),
		constprobe.Uint32("CP_UINT32_MAX", math.MaxUint32),
		constprobe.Uint64("CP_UINT64_MAX", math.MaxUint64),
		constprobe.Uint32("CP_UINT32_ZERO", 0),

		// Floating values, including exponent-form and exact binary
		// fractions.
		constprobe.Float32("CP_FLOAT32_ZERO", 0),
		constprobe.Float32("CP_FLOAT32_HALF", 0.5),
		constprobe.Float32("CP_FLOAT32_PI", math.Pi),
		constprobe.Float32("CP_FLOAT32_LARGE", 1e10),
		constprobe.Float64("CP_FLOAT64_E", math.E),
		constprobe.Float64("CP_FLOAT64_NEG", -1.5),
		constprobe.Float64("CP_FLOAT64_SMALL", 0.0078125),
		constprobe.Extended("CP_EXTENDED_LN2", math.Ln2),
		constprobe.Extended("CP_EXTENDED_QUARTER", 1.25),

		// Char and string values, boundary and delimiter cases.
		constprobe.Char("CP_CHAR_A", 'A'),
		constprobe.Char("CP_CHAR_UNDERSCORE", '_'),
		constprobe.String("CP_STRING_NAME", "constprobe"),
		constprobe.String("CP_STRING_EMPTY", ""),
		constprobe.String("CP_STRING_WITH_DELIMITER", "flags;all"),
	)
}

// Expected returns the canonical expected records for Constants, in the
// same order. These are the ground-truth values the probe's report must
// reproduce byte for byte.
func Expected() []constprobe.Record {
	return []constprobe.Record{
		{Name: "(gint) CP_CHECK_MODE_SCRIPT", Value: "0"},
		{Name: "(gint) CP_CHECK_MODE_MODULE", Value: "1"},
		{Name: "(gint) CP_SYNTAX_RESULT_SUCCESS", Value: "0"},
		{Name: "(gint) CP_SYNTAX_RESULT_RECOVERABLE_ERROR", Value: "1"},
		{Name: "(gint) CP_SYNTAX_RESULT_IRRECOVERABLE_ERROR", Value: "2"},
		{Name: "(guint) CP_PROPERTY_CONFIGURABLE", Value: "1"},
		{Name: "(guint) CP_PROPERTY_ENUMERABLE", Value: "2"},
		{Name: "(guint) CP_PROPERTY_WRITABLE", Value: "4"},
		{Name: "CP_MAJOR_VERSION", Value: "2"},
		{Name: "CP_MINOR_VERSION", Value: "49"},
		{Name: "CP_MICRO_VERSION", Value: "3"},
		{Name: "CP_OPTIONS_USE_JIT", Value: "useJIT"},
		{Name: "CP_OPTIONS_USE_DFG", Value: "useDFGJIT"},
		{Name: "CP_INT8_MIN", Value: "-128"},
		{Name: "CP_INT8_MAX", Value: "127"},
		{Name: "CP_INT16_MIN", Value: "-32768"},
		{Name: "CP_INT16_MAX", Value: "32767"},
		{Name: "CP_INT32_MIN", Value: "-2147483648"},
		{Name: "CP_INT32_MAX", Value: "2147483647"},
		{Name: "CP_INT64_MIN", Value: "-9223372036854775808"},
		{Name: "CP_INT64_MAX", Value: "9223372036854775807"},
		{Name: "CP_INT32_NEG_ONE", Value: "-1"},
		{Name: "CP_UINT8_MAX", Value: "255"},
		{Name: "CP_UINT16_MAX", Value: "65535"},
		{Name: "CP_UINT32_MAX", Value: "4294967295"},
		{Name: "CP_UINT64_MAX", Value: "18446744073709551615"},
		{Name: "CP_UINT32_ZERO", Value: "0"},
		{Name: "CP_FLOAT32_ZERO", Value: "0"},
		{Name: "CP_FLOAT32_HALF", Value: "0.5"},
		{Name: "CP_FLOAT32_PI", Value: "3.1415927"},
		{Name: "CP_FLOAT32_LARGE", Value: "1e+10"},
		{Name: "CP_FLOAT64_E", Value: "2.718281828459045"},
		{Name: "CP_FLOAT64_NEG", Value: "-1.5"},
		{Name: "CP_FLOAT64_SMALL", Value: "0.0078125"},
		{Name: "CP_EXTENDED_LN2", Value: "0.6931471805599453"},
		{Name: "CP_EXTENDED_QUARTER", Value: "1.25"},
		{Name: "CP_CHAR_A", Value: "A"},
		{Name: "CP_CHAR_UNDERSCORE", Value: "_"},
		{Name: "CP_STRING_NAME", Value: "constprobe"},
		{Name: "CP_STRING_EMPTY", Value: ""},
		{Name: "CP_STRING_WITH_DELIMITER", Value: "flags;all"},
	}
}

// Reference returns the built-in reference table for Constants.
func Reference() *constprobe.Reference {
	ref, err := constprobe.NewReference(Expected())
	if err != nil {
		panic("conformance: building reference table: " + err.Error())
	}
	return ref
}
