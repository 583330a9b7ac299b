// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Delimiter separates the symbol name from the formatted value in a
// report record. It never appears in a valid symbol name (enforced by
// [NewSet]); formatted values may contain it, so [ParseReport] splits on
// the first occurrence only.
const Delimiter = ';'

// Record is one line of a report or reference table: a symbol name and
// its formatted value.
type Record struct {
	Name  string
	Value string
}

// appendRecord appends one wire record for d to buf:
//
//	<name>;<value>\n
//
// Every serialized record goes through here, so the wire shape is
// defined once.
func appendRecord(buf []byte, d Descriptor) []byte {
	buf = append(buf, d.Name...)
	buf = append(buf, Delimiter)
	buf = d.Value.appendText(buf)
	return append(buf, '\n')
}

// WriteReport serializes every descriptor in the set, in input order, and
// writes one record per symbol to w. The output is produced in a single
// forward pass with no buffering beyond the current record. Formatting
// is total over the descriptor type domain, so the only error source is
// the writer itself.
func WriteReport(w io.Writer, set *Set) error {
	var buf []byte
	for _, d := range set.descs {
		buf = appendRecord(buf[:0], d)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing record for %s: %w", d.Name, err)
		}
	}
	return nil
}

// ParseReport reads the line-oriented report format back into records.
// Each non-empty line must contain the delimiter; lines are split on its
// first occurrence so string values containing the delimiter parse
// correctly. Record order is preserved.
func ParseReport(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		name, value, found := strings.Cut(line, string(Delimiter))
		if !found {
			return nil, &ProbeError{
				Type:    "FormatError",
				Message: fmt.Sprintf("line %d: missing %q separator", lineNo, Delimiter),
			}
		}
		records = append(records, Record{Name: name, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	return records, nil
}

// Records serializes the set in memory, returning one record per
// descriptor in emission order.
func (s *Set) Records() []Record {
	records := make([]Record, len(s.descs))
	for i, d := range s.descs {
		records[i] = Record{Name: d.Name, Value: FormatValue(d.Value)}
	}
	return records
}

// Probe drives the serializer over a descriptor set and emits the
// conformance report. The mechanism is single-threaded and synchronous: a
// finite ordered transformation followed by sequential writes to one
// output stream.
type Probe struct {
	set     *Set
	probeID string
	hook    RunHook
}

// NewProbe creates a probe over the given descriptor set.
func NewProbe(set *Set) *Probe {
	return &Probe{set: set}
}

// SetProbeID sets an identifier reported to observability hooks and
// carried in the IPC report metadata.
func (p *Probe) SetProbeID(id string) { p.probeID = id }

// ProbeID returns the probe identifier, or empty string if not set.
func (p *Probe) ProbeID() string { return p.probeID }

// SetRunHook registers a hook that is called around each report run.
func (p *Probe) SetRunHook(hook RunHook) { p.hook = hook }

// Set returns the descriptor set the probe was built over.
func (p *Probe) Set() *Set { return p.set }

// Run emits the report to w, surrounding the pass with the registered
// run hook (if any) and recording per-run statistics. The same set
// always produces byte-identical output.
func (p *Probe) Run(ctx context.Context, w io.Writer) error {
	return p.runWithHook(ctx, func(ctx context.Context, stats *RunStatistics) error {
		return p.run(ctx, w, stats)
	})
}

// runWithHook surrounds emit with the registered run hook (if any),
// guarding both callpoints against hook panics.
func (p *Probe) runWithHook(ctx context.Context, emit func(context.Context, *RunStatistics) error) error {
	info := RunInfo{ProbeID: p.probeID, Symbols: p.set.Len()}
	stats := &RunStatistics{}

	var token HookToken
	var hookActive bool
	if p.hook != nil {
		func() {
			defer func() {
				if rv := recover(); rv != nil {
					slog.Error("run hook start panic", "err", rv)
				}
			}()
			var hookCtx context.Context
			hookCtx, token = p.hook.OnRunStart(ctx, info)
			if hookCtx != nil {
				ctx = hookCtx
			}
			hookActive = true
		}()
	}

	runErr := emit(ctx, stats)

	if hookActive {
		func() {
			defer func() {
				if rv := recover(); rv != nil {
					slog.Error("run hook end panic", "err", rv)
				}
			}()
			p.hook.OnRunEnd(ctx, token, info, stats, runErr)
		}()
	}
	return runErr
}

func (p *Probe) run(ctx context.Context, w io.Writer, stats *RunStatistics) error {
	var buf []byte
	for _, d := range p.set.descs {
		if err := ctx.Err(); err != nil {
			return err
		}
		buf = appendRecord(buf[:0], d)
		n, err := w.Write(buf)
		if err != nil {
			return fmt.Errorf("writing record for %s: %w", d.Name, err)
		}
		stats.RecordOutput(int64(n))
	}
	slog.Debug("probe: run complete", "probe_id", p.probeID, "records", p.set.Len())
	return nil
}

// RunStdio emits the report on stdout, the transport a binding
// generator's test runner captures. Exit-status semantics are the
// caller's: a clean return means the probe ran to completion, not that
// the values matched.
func (p *Probe) RunStdio() error {
	w := bufio.NewWriter(os.Stdout)
	if err := p.Run(context.Background(), w); err != nil {
		return err
	}
	return w.Flush()
}
