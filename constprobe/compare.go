// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import "fmt"

// FindingKind classifies one conformance failure.
type FindingKind int

const (
	// FindingValueMismatch: the probe's value differs from the reference
	// value for the same symbol — the definitive ABI-drift signal.
	FindingValueMismatch FindingKind = iota
	// FindingMissingSymbol: the reference table names a symbol the report
	// does not contain (symbol removed upstream, or probe list stale).
	FindingMissingSymbol
	// FindingUnknownSymbol: the report names a symbol the reference table
	// does not contain (symbol added upstream, or reference stale).
	FindingUnknownSymbol
)

func (k FindingKind) String() string {
	switch k {
	case FindingValueMismatch:
		return "value mismatch"
	case FindingMissingSymbol:
		return "missing symbol"
	case FindingUnknownSymbol:
		return "unknown symbol"
	default:
		return fmt.Sprintf("FindingKind(%d)", int(k))
	}
}

// Finding is one conformance failure with the expected and actual
// formatted values (empty for the side that lacks the symbol).
type Finding struct {
	Kind   FindingKind
	Symbol string
	Want   string // reference value, "" for FindingUnknownSymbol
	Got    string // report value, "" for FindingMissingSymbol
}

func (f Finding) String() string {
	switch f.Kind {
	case FindingValueMismatch:
		return fmt.Sprintf("constant value mismatch for %s\nexpected: %q\nactual:   %q", f.Symbol, f.Want, f.Got)
	case FindingMissingSymbol:
		return fmt.Sprintf("symbol %s missing from report (expected %q)", f.Symbol, f.Want)
	case FindingUnknownSymbol:
		return fmt.Sprintf("symbol %s not in reference table (reported %q)", f.Symbol, f.Got)
	default:
		return fmt.Sprintf("%s: %s", f.Kind, f.Symbol)
	}
}

// Results is the verdict of one comparison run.
type Results struct {
	Passed   int
	Failed   int
	Findings []Finding
}

// Ok reports whether every symbol matched.
func (r *Results) Ok() bool { return r.Failed == 0 }

// Summary returns a one-line verdict in the form "N passed; M failed".
func (r *Results) Summary() string {
	return fmt.Sprintf("%d passed; %d failed", r.Passed, r.Failed)
}

func (r *Results) recordPassed() { r.Passed++ }

func (r *Results) recordFailed(f Finding) {
	r.Failed++
	r.Findings = append(r.Findings, f)
}

// Compare checks a report against a reference table and returns the
// verdict. Records are keyed by symbol name, not position, so the two
// sides may enumerate in different orders; an unmatched symbol on either
// side is a conformance failure. Comparison is a pure function — the same
// inputs always yield the same Results.
func Compare(records []Record, ref *Reference) *Results {
	results := &Results{}

	reported := make(map[string]struct{}, len(records))
	for _, rec := range records {
		reported[rec.Name] = struct{}{}
		want, ok := ref.Lookup(rec.Name)
		if !ok {
			results.recordFailed(Finding{
				Kind:   FindingUnknownSymbol,
				Symbol: rec.Name,
				Got:    rec.Value,
			})
			continue
		}
		if rec.Value != want {
			results.recordFailed(Finding{
				Kind:   FindingValueMismatch,
				Symbol: rec.Name,
				Want:   want,
				Got:    rec.Value,
			})
			continue
		}
		results.recordPassed()
	}

	for _, name := range ref.order {
		if _, ok := reported[name]; !ok {
			want, _ := ref.Lookup(name)
			results.recordFailed(Finding{
				Kind:   FindingMissingSymbol,
				Symbol: name,
				Want:   want,
			})
		}
	}
	return results
}
