// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import (
	"fmt"
	"strings"
)

// Descriptor pairs a symbol name with its typed compile-time value.
// Descriptors are built by the typed constructors ([Int32], [Uint32],
// [String], ...) and are immutable once formed.
type Descriptor struct {
	Name  string
	Value Value
}

// Set is an ordered, immutable sequence of descriptors with unique symbol
// names. The order is the report emission order and must match the order
// the binding generator enumerated the symbols in.
type Set struct {
	descs  []Descriptor
	byName map[string]int
}

// NewSet validates and freezes a descriptor sequence. It rejects
// descriptors with an empty or delimiter-bearing name, duplicate symbol
// names, and string or char values containing a line terminator — all of
// which would corrupt the line-oriented wire format or break the
// name-keyed comparison. An empty sequence is valid and produces an empty
// report.
func NewSet(descs ...Descriptor) (*Set, error) {
	byName := make(map[string]int, len(descs))
	for i, d := range descs {
		if err := validateDescriptor(d); err != nil {
			return nil, err
		}
		if prev, dup := byName[d.Name]; dup {
			return nil, &ProbeError{
				Type:   "DuplicateSymbol",
				Symbol: d.Name,
				Message: fmt.Sprintf("descriptor %d duplicates descriptor %d; symbol names must key uniquely into the reference table",
					i, prev),
			}
		}
		byName[d.Name] = i
	}
	return &Set{descs: append([]Descriptor(nil), descs...), byName: byName}, nil
}

// MustSet is NewSet for fixture code; it panics on an invalid sequence.
func MustSet(descs ...Descriptor) *Set {
	s, err := NewSet(descs...)
	if err != nil {
		panic(fmt.Sprintf("constprobe: invalid descriptor set: %v", err))
	}
	return s
}

// Len returns the number of descriptors in the set.
func (s *Set) Len() int { return len(s.descs) }

// Descriptors returns the descriptors in emission order. The returned
// slice is a copy; mutating it does not affect the set.
func (s *Set) Descriptors() []Descriptor {
	return append([]Descriptor(nil), s.descs...)
}

// Contains reports whether the set declares the given symbol name.
func (s *Set) Contains(name string) bool {
	_, ok := s.byName[name]
	return ok
}

func validateDescriptor(d Descriptor) error {
	if d.Name == "" {
		return &ProbeError{Type: "InvalidSymbol", Message: "empty symbol name"}
	}
	if strings.ContainsRune(d.Name, Delimiter) {
		return &ProbeError{
			Type:    "InvalidSymbol",
			Symbol:  d.Name,
			Message: fmt.Sprintf("symbol name contains the record delimiter %q", Delimiter),
		}
	}
	if strings.ContainsAny(d.Name, "\n\r") {
		return &ProbeError{
			Type:    "InvalidSymbol",
			Symbol:  d.Name,
			Message: "symbol name contains a line terminator",
		}
	}
	if d.Value == nil {
		return &ProbeError{Type: "InvalidValue", Symbol: d.Name, Message: "nil value"}
	}
	switch v := d.Value.(type) {
	case stringValue:
		if strings.ContainsAny(string(v), "\n\r") {
			return &ProbeError{
				Type:    "InvalidValue",
				Symbol:  d.Name,
				Message: "string value contains a line terminator",
			}
		}
	case charValue:
		if v == '\n' || v == '\r' {
			return &ProbeError{
				Type:    "InvalidValue",
				Symbol:  d.Name,
				Message: "char value is a line terminator",
			}
		}
	}
	return nil
}
