// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import "context"

// RunHook provides observability callpoints around a report run.
type RunHook interface {
	OnRunStart(ctx context.Context, info RunInfo) (context.Context, HookToken)
	OnRunEnd(ctx context.Context, token HookToken, info RunInfo, stats *RunStatistics, err error)
}

// HookToken is an opaque value returned by OnRunStart and passed back to
// OnRunEnd. Only meaningful to the RunHook that created it.
type HookToken interface{}

// RunInfo carries probe metadata passed to hooks.
type RunInfo struct {
	ProbeID string // probe identifier, if set
	Symbols int    // number of descriptors in the set
}

// RunStatistics holds per-run output counters.
type RunStatistics struct {
	Records int64
	Bytes   int64
}

// RecordOutput records one emitted record of the given encoded size.
func (s *RunStatistics) RecordOutput(bytes int64) {
	s.Records++
	s.Bytes += bytes
}
