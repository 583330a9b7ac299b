// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import "strconv"

// Value is one constant value in the probe's closed type domain. The
// interface is sealed: the only implementations are the ones in this
// package, one per supported static type, and the only way to obtain a
// Value is through the typed Descriptor constructors. Formatting is total
// over the domain — every representable value maps to some string.
type Value interface {
	// appendText appends the canonical textual form of the value to dst.
	appendText(dst []byte) []byte
	// typeName returns the static type tag, e.g. "int32" or "string".
	typeName() string
}

// FormatValue renders a value to its canonical text form:
// decimal for integer widths, shortest round-trip decimal for floats,
// the literal character or text for char and string values.
func FormatValue(v Value) string {
	return string(v.appendText(nil))
}

type int8Value int8
type int16Value int16
type int32Value int32
type int64Value int64

type uint8Value uint8
type uint16Value uint16
type uint32Value uint32
type uint64Value uint64

type float32Value float32
type float64Value float64

// extendedValue is an extended-precision floating constant. Go has no
// native float80, so the value is carried at 64-bit precision. The
// legacy C probe routed this type through the integer decimal template;
// here it uses the floating template like float64Value.
type extendedValue float64

type charValue byte
type stringValue string

func (v int8Value) appendText(dst []byte) []byte  { return strconv.AppendInt(dst, int64(v), 10) }
func (v int16Value) appendText(dst []byte) []byte { return strconv.AppendInt(dst, int64(v), 10) }
func (v int32Value) appendText(dst []byte) []byte { return strconv.AppendInt(dst, int64(v), 10) }
func (v int64Value) appendText(dst []byte) []byte { return strconv.AppendInt(dst, int64(v), 10) }

func (v uint8Value) appendText(dst []byte) []byte  { return strconv.AppendUint(dst, uint64(v), 10) }
func (v uint16Value) appendText(dst []byte) []byte { return strconv.AppendUint(dst, uint64(v), 10) }
func (v uint32Value) appendText(dst []byte) []byte { return strconv.AppendUint(dst, uint64(v), 10) }
func (v uint64Value) appendText(dst []byte) []byte { return strconv.AppendUint(dst, uint64(v), 10) }

func (v float32Value) appendText(dst []byte) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
}

func (v float64Value) appendText(dst []byte) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 64)
}

func (v extendedValue) appendText(dst []byte) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 64)
}

func (v charValue) appendText(dst []byte) []byte { return append(dst, byte(v)) }

func (v stringValue) appendText(dst []byte) []byte { return append(dst, v...) }

func (int8Value) typeName() string     { return "int8" }
func (int16Value) typeName() string    { return "int16" }
func (int32Value) typeName() string    { return "int32" }
func (int64Value) typeName() string    { return "int64" }
func (uint8Value) typeName() string    { return "uint8" }
func (uint16Value) typeName() string   { return "uint16" }
func (uint32Value) typeName() string   { return "uint32" }
func (uint64Value) typeName() string   { return "uint64" }
func (float32Value) typeName() string  { return "float32" }
func (float64Value) typeName() string  { return "float64" }
func (extendedValue) typeName() string { return "extended" }
func (charValue) typeName() string     { return "char" }
func (stringValue) typeName() string   { return "string" }

// Int8 builds a descriptor for a signed 8-bit constant.
func Int8(name string, v int8) Descriptor { return Descriptor{Name: name, Value: int8Value(v)} }

// Int16 builds a descriptor for a signed 16-bit constant.
func Int16(name string, v int16) Descriptor { return Descriptor{Name: name, Value: int16Value(v)} }

// Int32 builds a descriptor for a signed 32-bit constant. This is the
// usual type for C enum members.
func Int32(name string, v int32) Descriptor { return Descriptor{Name: name, Value: int32Value(v)} }

// Int64 builds a descriptor for a signed 64-bit constant.
func Int64(name string, v int64) Descriptor { return Descriptor{Name: name, Value: int64Value(v)} }

// Uint8 builds a descriptor for an unsigned 8-bit constant.
func Uint8(name string, v uint8) Descriptor { return Descriptor{Name: name, Value: uint8Value(v)} }

// Uint16 builds a descriptor for an unsigned 16-bit constant.
func Uint16(name string, v uint16) Descriptor { return Descriptor{Name: name, Value: uint16Value(v)} }

// Uint32 builds a descriptor for an unsigned 32-bit constant. This is the
// usual type for C flag bits.
func Uint32(name string, v uint32) Descriptor { return Descriptor{Name: name, Value: uint32Value(v)} }

// Uint64 builds a descriptor for an unsigned 64-bit constant.
func Uint64(name string, v uint64) Descriptor { return Descriptor{Name: name, Value: uint64Value(v)} }

// Float32 builds a descriptor for a single-precision floating constant.
func Float32(name string, v float32) Descriptor {
	return Descriptor{Name: name, Value: float32Value(v)}
}

// Float64 builds a descriptor for a double-precision floating constant.
func Float64(name string, v float64) Descriptor {
	return Descriptor{Name: name, Value: float64Value(v)}
}

// Extended builds a descriptor for an extended-precision floating
// constant (C long double). The value is carried and formatted at 64-bit
// precision through the floating template. Reference tables produced by
// tools that printed long double through an integer template must be
// regenerated for these symbols.
func Extended(name string, v float64) Descriptor {
	return Descriptor{Name: name, Value: extendedValue(v)}
}

// Char builds a descriptor for a single-character constant.
func Char(name string, c byte) Descriptor { return Descriptor{Name: name, Value: charValue(c)} }

// String builds a descriptor for a string constant. The value may contain
// the record delimiter (comparison splits on the first delimiter only)
// but must not contain a newline.
func String(name, v string) Descriptor { return Descriptor{Name: name, Value: stringValue(v)} }
