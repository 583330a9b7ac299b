// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

package constprobe

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func TestReadReference(t *testing.T) {
	ref, err := ReadReference(strings.NewReader("A;1\nB;hello\n"))
	require.NoError(t, err)
	require.Equal(t, 2, ref.Len())
	require.Equal(t, []string{"A", "B"}, ref.Symbols())

	v, ok := ref.Lookup("B")
	require.True(t, ok)
	require.Equal(t, "hello", v)

	_, ok = ref.Lookup("MISSING")
	require.False(t, ok)
}

func TestNewReferenceRejectsDuplicates(t *testing.T) {
	_, err := NewReference([]Record{
		{Name: "A", Value: "1"},
		{Name: "A", Value: "2"},
	})
	require.Error(t, err)

	var probeErr *ProbeError
	require.True(t, errors.As(err, &probeErr))
	require.Equal(t, "ReferenceError", probeErr.Type)
	require.Equal(t, "A", probeErr.Symbol)
}

func TestOpenReferencePlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expected.txt")
	require.NoError(t, os.WriteFile(path, []byte("A;1\nB;2\n"), 0o644))

	ref, err := OpenReference(path)
	require.NoError(t, err)
	require.Equal(t, 2, ref.Len())
}

func TestOpenReferenceZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expected.txt.zst")

	f, err := os.Create(path)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write([]byte("A;1\nMAX_U32;4294967295\n"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	ref, err := OpenReference(path)
	require.NoError(t, err)
	require.Equal(t, 2, ref.Len())

	v, ok := ref.Lookup("MAX_U32")
	require.True(t, ok)
	require.Equal(t, "4294967295", v)
}

func TestOpenReferenceMissingFile(t *testing.T) {
	_, err := OpenReference(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestSymbolsIsACopy(t *testing.T) {
	ref, err := NewReference([]Record{{Name: "A", Value: "1"}})
	require.NoError(t, err)

	syms := ref.Symbols()
	syms[0] = "MUTATED"
	require.Equal(t, []string{"A"}, ref.Symbols())
}
