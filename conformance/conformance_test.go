// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package conformance

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bindcheck/constprobe/constprobe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFixtureMatchesReference(t *testing.T) {
	var report bytes.Buffer
	require.NoError(t, constprobe.WriteReport(&report, Constants()))

	records, err := constprobe.ParseReport(&report)
	require.NoError(t, err)

	results := constprobe.Compare(records, Reference())
	for _, f := range results.Findings {
		t.Log(f)
	}
	require.True(t, results.Ok(), "conformance verdict: %s", results.Summary())
	require.Equal(t, Constants().Len(), results.Passed)
}

func TestFixtureRecordsMatchExpected(t *testing.T) {
	got := Constants().Records()
	if diff := cmp.Diff(Expected(), got); diff != "" {
		t.Errorf("records mismatch (-expected +got):\n%s", diff)
	}
}

func TestFixtureReportDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, constprobe.WriteReport(&first, Constants()))
	require.NoError(t, constprobe.WriteReport(&second, Constants()))
	require.True(t, bytes.Equal(first.Bytes(), second.Bytes()))
}

func TestFixtureIPCRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, constprobe.WriteReportIPC(&buf, Constants(), "conformance-go"))

	records, err := constprobe.ReadReportIPC(&buf)
	require.NoError(t, err)

	results := constprobe.Compare(records, Reference())
	require.True(t, results.Ok(), "conformance verdict: %s", results.Summary())
}

func TestFixtureProbeRun(t *testing.T) {
	probe := constprobe.NewProbe(Constants())
	probe.SetProbeID("conformance-go")

	var buf bytes.Buffer
	require.NoError(t, probe.Run(context.Background(), &buf))

	lines := strings.Count(buf.String(), "\n")
	require.Equal(t, Constants().Len(), lines)
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
}

// A stale reference value must surface as a mismatch, not pass silently.
func TestFixtureDetectsDrift(t *testing.T) {
	drifted := Expected()
	for i := range drifted {
		if drifted[i].Name == "CP_MINOR_VERSION" {
			drifted[i].Value = "48"
		}
	}
	ref, err := constprobe.NewReference(drifted)
	require.NoError(t, err)

	results := constprobe.Compare(Constants().Records(), ref)
	require.False(t, results.Ok())
	require.Equal(t, 1, results.Failed)
	require.Equal(t, constprobe.FindingValueMismatch, results.Findings[0].Kind)
	require.Equal(t, "CP_MINOR_VERSION", results.Findings[0].Symbol)
}
