// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import "fmt"

// ErrProbe is a sentinel for use with errors.Is to check whether any
// error in a chain is a *ProbeError.
var ErrProbe = &ProbeError{}

// ProbeError represents a constraint violation in the probe mechanism.
// Type is one of "DuplicateSymbol", "InvalidSymbol", "InvalidValue",
// "FormatError" (malformed report or reference input), "VersionError"
// (unsupported IPC report version), or "ReferenceError".
type ProbeError struct {
	Type    string
	Symbol  string // offending symbol name, if any
	Message string
}

func (e *ProbeError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Symbol, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Is supports errors.Is by matching any *ProbeError target.
func (e *ProbeError) Is(target error) bool {
	_, ok := target.(*ProbeError)
	return ok
}
