// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Reference is the externally produced expected-value table used as the
// ground truth in the comparison step: symbol name → expected formatted
// value, in the generator's enumeration order.
type Reference struct {
	order  []string
	values map[string]string
}

// NewReference builds a reference table from records. Duplicate symbol
// names are rejected; names must key uniquely for the comparison to be
// meaningful.
func NewReference(records []Record) (*Reference, error) {
	ref := &Reference{
		order:  make([]string, 0, len(records)),
		values: make(map[string]string, len(records)),
	}
	for _, rec := range records {
		if _, dup := ref.values[rec.Name]; dup {
			return nil, &ProbeError{
				Type:    "ReferenceError",
				Symbol:  rec.Name,
				Message: "duplicate symbol in reference table",
			}
		}
		ref.order = append(ref.order, rec.Name)
		ref.values[rec.Name] = rec.Value
	}
	return ref, nil
}

// ReadReference parses a reference table from the line-oriented wire
// format.
func ReadReference(r io.Reader) (*Reference, error) {
	records, err := ParseReport(r)
	if err != nil {
		return nil, fmt.Errorf("reading reference table: %w", err)
	}
	return NewReference(records)
}

// OpenReference loads a reference table from a file. Files with a .zst
// suffix are transparently zstd-decompressed; generated tables covering
// hundreds of symbols across platform variants are usually shipped
// compressed.
func OpenReference(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reference table: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening zstd reference table %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}
	return ReadReference(r)
}

// Len returns the number of entries in the table.
func (ref *Reference) Len() int { return len(ref.order) }

// Symbols returns the symbol names in table order.
func (ref *Reference) Symbols() []string {
	return append([]string(nil), ref.order...)
}

// Lookup returns the expected formatted value for a symbol.
func (ref *Reference) Lookup(name string) (string, bool) {
	v, ok := ref.values[name]
	return v, ok
}
