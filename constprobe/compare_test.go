// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustReference(t *testing.T, records []Record) *Reference {
	t.Helper()
	ref, err := NewReference(records)
	require.NoError(t, err)
	return ref
}

func TestCompareAllMatch(t *testing.T) {
	records := []Record{
		{Name: "A", Value: "1"},
		{Name: "B", Value: "hello"},
	}
	ref := mustReference(t, records)

	results := Compare(records, ref)
	require.True(t, results.Ok())
	require.Equal(t, 2, results.Passed)
	require.Equal(t, 0, results.Failed)
	require.Empty(t, results.Findings)
	require.Equal(t, "2 passed; 0 failed", results.Summary())
}

func TestCompareValueMismatch(t *testing.T) {
	ref := mustReference(t, []Record{
		{Name: "A", Value: "1"},
		{Name: "B", Value: "2"},
	})

	results := Compare([]Record{
		{Name: "A", Value: "1"},
		{Name: "B", Value: "3"},
	}, ref)

	require.False(t, results.Ok())
	require.Equal(t, 1, results.Passed)
	require.Equal(t, 1, results.Failed)

	want := []Finding{{Kind: FindingValueMismatch, Symbol: "B", Want: "2", Got: "3"}}
	if diff := cmp.Diff(want, results.Findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareMissingSymbol(t *testing.T) {
	ref := mustReference(t, []Record{
		{Name: "A", Value: "1"},
		{Name: "GONE", Value: "9"},
	})

	results := Compare([]Record{{Name: "A", Value: "1"}}, ref)
	require.False(t, results.Ok())
	require.Equal(t, []Finding{
		{Kind: FindingMissingSymbol, Symbol: "GONE", Want: "9"},
	}, results.Findings)
}

func TestCompareUnknownSymbol(t *testing.T) {
	ref := mustReference(t, []Record{{Name: "A", Value: "1"}})

	results := Compare([]Record{
		{Name: "A", Value: "1"},
		{Name: "NEW", Value: "7"},
	}, ref)
	require.False(t, results.Ok())
	require.Equal(t, []Finding{
		{Kind: FindingUnknownSymbol, Symbol: "NEW", Got: "7"},
	}, results.Findings)
}

// Comparison keys by symbol name, so the reference may enumerate in a
// different order than the report.
func TestCompareOrderIndependent(t *testing.T) {
	ref := mustReference(t, []Record{
		{Name: "B", Value: "2"},
		{Name: "A", Value: "1"},
	})

	results := Compare([]Record{
		{Name: "A", Value: "1"},
		{Name: "B", Value: "2"},
	}, ref)
	require.True(t, results.Ok())
	require.Equal(t, 2, results.Passed)
}

func TestCompareEmpty(t *testing.T) {
	ref := mustReference(t, nil)
	results := Compare(nil, ref)
	require.True(t, results.Ok())
	require.Equal(t, "0 passed; 0 failed", results.Summary())
}

func TestCompareDeterministic(t *testing.T) {
	ref := mustReference(t, []Record{
		{Name: "A", Value: "1"},
		{Name: "B", Value: "2"},
		{Name: "C", Value: "3"},
	})
	records := []Record{
		{Name: "A", Value: "1"},
		{Name: "B", Value: "wrong"},
		{Name: "D", Value: "4"},
	}

	first := Compare(records, ref)
	second := Compare(records, ref)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ between runs (-first +second):\n%s", diff)
	}
}

func TestFindingString(t *testing.T) {
	tests := []struct {
		finding Finding
		want    string
	}{
		{
			Finding{Kind: FindingValueMismatch, Symbol: "S", Want: "1", Got: "2"},
			"constant value mismatch for S\nexpected: \"1\"\nactual:   \"2\"",
		},
		{
			Finding{Kind: FindingMissingSymbol, Symbol: "S", Want: "1"},
			"symbol S missing from report (expected \"1\")",
		},
		{
			Finding{Kind: FindingUnknownSymbol, Symbol: "S", Got: "2"},
			"symbol S not in reference table (reported \"2\")",
		},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.finding.String())
	}
}
