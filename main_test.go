// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func runCmd(args ...string) (code int, stdout, stderr string) {
	var o, e bytes.Buffer
	code = run(args, &o, &e)
	return code, o.String(), e.String()
}

func TestArity(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{},
		{filepath.Join(dir, "a")},
		{filepath.Join(dir, "a"), filepath.Join(dir, "b"), filepath.Join(dir, "c")},
	} {
		code, stdout, _ := runCmd(args...)
		require.Equal(t, 1, code)
		require.Equal(t, "ERROR! Usage: filecopy <src> <dst>\n", stdout)
	}

	require.Empty(t, lo.Must(os.ReadDir(dir)), "usage errors must not touch the file system")
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	content := strings.Repeat("hello pipe ", 40)
	lo.Must0(os.WriteFile(src, []byte(content), 0o644))

	code, stdout, _ := runCmd(src, dst)
	require.Equal(t, 0, code)
	require.Equal(t, fmt.Sprintf("File successfully copied from '%s' to '%s'\n", src, dst), stdout)
	require.Equal(t, content, string(lo.Must(os.ReadFile(dst))))
}

func TestCopyWithLogFlags(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	lo.Must0(os.WriteFile(src, []byte("content"), 0o644))

	code, _, stderr := runCmd("--log-level", "info", "--log-json", src, dst)
	require.Equal(t, 0, code)
	require.Contains(t, stderr, `"message":"file copied"`)
}

func TestMissingSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing.txt")
	dst := filepath.Join(dir, "dst.txt")

	code, stdout, stderr := runCmd(src, dst)
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, fmt.Sprintf("Error: Unable to open source file '%s'.", src))

	_, err := os.Stat(dst)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMissingDestinationDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "nope", "dst.txt")

	lo.Must0(os.WriteFile(src, []byte("content"), 0o644))

	code, _, stderr := runCmd(src, dst)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, fmt.Sprintf("Error: Unable to open destination file '%s'.", dst))
	require.Equal(t, "content", string(lo.Must(os.ReadFile(src))))
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCmd("--version")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "version:")
}

func TestHelp(t *testing.T) {
	code, _, stderr := runCmd("--help")
	require.Equal(t, 0, code)
	require.Contains(t, stderr, "Usage: filecopy [flags] <src> <dst>")
}

func TestInvalidFlags(t *testing.T) {
	code, _, _ := runCmd("--log-level", "loud", "a", "b")
	require.Equal(t, 1, code)

	code, _, _ = runCmd("--no-such-flag", "a", "b")
	require.Equal(t, 1, code)
}
