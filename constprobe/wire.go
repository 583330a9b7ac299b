// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import (
	"context"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// IPC report metadata keys, carried in the stream's schema metadata.
const (
	MetaFormatVersion = "constprobe.format_version"
	MetaProbeID       = "constprobe.probe_id"

	// FormatVersion is the IPC report format version written by this
	// package and the only version it accepts.
	FormatVersion = "1"
)

// reportFields is the columnar shape of a report: one row per symbol,
// in emission order.
var reportFields = []arrow.Field{
	{Name: "name", Type: arrow.BinaryTypes.String},
	{Name: "value", Type: arrow.BinaryTypes.String},
	{Name: "type", Type: arrow.BinaryTypes.String},
}

// reportSchema builds the report schema with the format version and
// probe ID attached as schema metadata.
func reportSchema(probeID string) *arrow.Schema {
	keys := []string{MetaFormatVersion}
	vals := []string{FormatVersion}
	if probeID != "" {
		keys = append(keys, MetaProbeID)
		vals = append(vals, probeID)
	}
	meta := arrow.NewMetadata(keys, vals)
	return arrow.NewSchema(reportFields, &meta)
}

// WriteReportIPC emits the report as a single Arrow IPC stream containing
// one record with name/value/type columns. The schema metadata carries
// the format version and probe ID. Row order matches set emission order,
// so the columnar and line formats agree row for row.
func WriteReportIPC(w io.Writer, set *Set, probeID string) error {
	mem := memory.NewGoAllocator()

	nameBuilder := array.NewStringBuilder(mem)
	defer nameBuilder.Release()
	valueBuilder := array.NewStringBuilder(mem)
	defer valueBuilder.Release()
	typeBuilder := array.NewStringBuilder(mem)
	defer typeBuilder.Release()

	var buf []byte
	for _, d := range set.descs {
		buf = d.Value.appendText(buf[:0])
		nameBuilder.Append(d.Name)
		valueBuilder.Append(string(buf))
		typeBuilder.Append(d.Value.typeName())
	}

	cols := make([]arrow.Array, 3)
	cols[0] = nameBuilder.NewArray()
	cols[1] = valueBuilder.NewArray()
	cols[2] = typeBuilder.NewArray()
	for _, c := range cols {
		defer c.Release()
	}

	schema := reportSchema(probeID)
	rec := array.NewRecord(schema, cols, int64(set.Len()))
	defer rec.Release()

	writer := ipc.NewWriter(w, ipc.WithSchema(schema))
	if err := writer.Write(rec); err != nil {
		return fmt.Errorf("writing report record: %w", err)
	}
	return writer.Close()
}

// ReadReportIPC reads an IPC-encoded report back into records, in row
// order. The format version carried in the schema metadata must match
// [FormatVersion].
func ReadReportIPC(r io.Reader) ([]Record, error) {
	reader, err := ipc.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading report IPC stream: %w", err)
	}
	defer reader.Release()

	meta := reader.Schema().Metadata()
	if idx := meta.FindKey(MetaFormatVersion); idx >= 0 {
		if version := meta.Values()[idx]; version != FormatVersion {
			return nil, &ProbeError{
				Type:    "VersionError",
				Message: fmt.Sprintf("unsupported report format version %q, expected %q", version, FormatVersion),
			}
		}
	}

	var records []Record
	for reader.Next() {
		rec := reader.Record()

		names, ok := columnByName(rec, "name")
		if !ok {
			return nil, &ProbeError{Type: "FormatError", Message: "report record missing 'name' column"}
		}
		values, ok := columnByName(rec, "value")
		if !ok {
			return nil, &ProbeError{Type: "FormatError", Message: "report record missing 'value' column"}
		}

		nameArr, ok := names.(*array.String)
		if !ok {
			return nil, &ProbeError{Type: "FormatError",
				Message: fmt.Sprintf("expected string 'name' column, got %T", names)}
		}
		valueArr, ok := values.(*array.String)
		if !ok {
			return nil, &ProbeError{Type: "FormatError",
				Message: fmt.Sprintf("expected string 'value' column, got %T", values)}
		}

		for i := 0; i < nameArr.Len(); i++ {
			records = append(records, Record{
				Name:  nameArr.Value(i),
				Value: valueArr.Value(i),
			})
		}
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("reading report records: %w", err)
	}
	return records, nil
}

func columnByName(rec arrow.Record, name string) (arrow.Array, bool) {
	for i := 0; i < int(rec.NumCols()); i++ {
		if rec.ColumnName(i) == name {
			return rec.Column(i), true
		}
	}
	return nil, false
}

// RunIPC emits the IPC-encoded report to w through the same hook guard
// as [Probe.Run], so instrumentation covers columnar output too.
func (p *Probe) RunIPC(ctx context.Context, w io.Writer) error {
	return p.runWithHook(ctx, func(ctx context.Context, stats *RunStatistics) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		cw := &countingWriter{w: w}
		if err := WriteReportIPC(cw, p.set, p.probeID); err != nil {
			return err
		}
		stats.Records = int64(p.set.Len())
		stats.Bytes = cw.n
		return nil
	})
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
