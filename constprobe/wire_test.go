// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestReportIPCRoundTrip(t *testing.T) {
	set, err := NewSet(
		Int32("(gint) CP_MODE_A", 0),
		Uint32("CP_FLAG", 4294967295),
		Float64("CP_E", math.E),
		String("CP_OPT", "useJIT"),
		String("CP_SEMI", "a;b"),
		String("CP_EMPTY", ""),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReportIPC(&buf, set, "test-probe"))

	records, err := ReadReportIPC(&buf)
	require.NoError(t, err)

	want := set.Records()
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReportIPCEmptySet(t *testing.T) {
	set, err := NewSet()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReportIPC(&buf, set, ""))

	records, err := ReadReportIPC(&buf)
	require.NoError(t, err)
	require.Empty(t, records)
}

// The columnar encoding and the line encoding agree row for row.
func TestReportIPCMatchesLineFormat(t *testing.T) {
	set, err := NewSet(
		Int8("A", math.MinInt8),
		Uint64("B", math.MaxUint64),
		Char("C", 'x'),
	)
	require.NoError(t, err)

	var ipcBuf bytes.Buffer
	require.NoError(t, WriteReportIPC(&ipcBuf, set, ""))
	ipcRecords, err := ReadReportIPC(&ipcBuf)
	require.NoError(t, err)

	var lineBuf bytes.Buffer
	require.NoError(t, WriteReport(&lineBuf, set))
	lineRecords, err := ParseReport(&lineBuf)
	require.NoError(t, err)

	if diff := cmp.Diff(lineRecords, ipcRecords); diff != "" {
		t.Errorf("encodings disagree (-line +ipc):\n%s", diff)
	}
}

func TestReportIPCDeterministic(t *testing.T) {
	set, err := NewSet(
		Float32("PI", math.Pi),
		Extended("LN2", math.Ln2),
	)
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, WriteReportIPC(&first, set, "p"))
	require.NoError(t, WriteReportIPC(&second, set, "p"))
	require.True(t, bytes.Equal(first.Bytes(), second.Bytes()))
}

func TestReadReportIPCGarbage(t *testing.T) {
	_, err := ReadReportIPC(bytes.NewReader([]byte("not an arrow stream")))
	require.Error(t, err)
}

// The format version and probe ID travel as schema metadata.
func TestReportIPCSchemaMetadata(t *testing.T) {
	set, err := NewSet(Int32("A", 1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReportIPC(&buf, set, "meta-probe"))

	reader, err := ipc.NewReader(&buf)
	require.NoError(t, err)
	defer reader.Release()

	meta := reader.Schema().Metadata()
	idx := meta.FindKey(MetaFormatVersion)
	require.GreaterOrEqual(t, idx, 0)
	require.Equal(t, FormatVersion, meta.Values()[idx])

	idx = meta.FindKey(MetaProbeID)
	require.GreaterOrEqual(t, idx, 0)
	require.Equal(t, "meta-probe", meta.Values()[idx])
}

func TestReadReportIPCRejectsUnknownVersion(t *testing.T) {
	meta := arrow.NewMetadata([]string{MetaFormatVersion}, []string{"99"})
	schema := arrow.NewSchema(reportFields, &meta)

	mem := memory.NewGoAllocator()
	builder := array.NewStringBuilder(mem)
	defer builder.Release()
	cols := make([]arrow.Array, 3)
	for i := range cols {
		builder.Append("x")
		cols[i] = builder.NewArray()
		defer cols[i].Release()
	}
	rec := array.NewRecord(schema, cols, 1)
	defer rec.Release()

	var buf bytes.Buffer
	writer := ipc.NewWriter(&buf, ipc.WithSchema(schema))
	require.NoError(t, writer.Write(rec))
	require.NoError(t, writer.Close())

	_, err := ReadReportIPC(&buf)
	require.Error(t, err)
	var probeErr *ProbeError
	require.ErrorAs(t, err, &probeErr)
	require.Equal(t, "VersionError", probeErr.Type)
}

// Columnar emission runs through the same hook guard as line emission.
func TestProbeRunIPCFiresHook(t *testing.T) {
	set, err := NewSet(
		Int32("A", 1),
		String("B", "two"),
	)
	require.NoError(t, err)

	probe := NewProbe(set)
	probe.SetProbeID("ipc-probe")
	hook := &captureHook{}
	probe.SetRunHook(hook)

	var buf bytes.Buffer
	require.NoError(t, probe.RunIPC(context.Background(), &buf))

	require.Equal(t, 1, hook.started)
	require.Equal(t, 1, hook.ended)
	require.Equal(t, "ipc-probe", hook.startInfo.ProbeID)
	require.NoError(t, hook.err)
	require.Equal(t, int64(2), hook.stats.Records)
	require.Equal(t, int64(buf.Len()), hook.stats.Bytes)

	records, err := ReadReportIPC(&buf)
	require.NoError(t, err)
	require.Len(t, records, 2)
}
