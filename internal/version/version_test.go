// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package version_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"filecopy/internal/version"
)

func TestPrint(t *testing.T) {
	out := version.Print()

	require.Contains(t, out, "version:    "+version.Version())
	require.Contains(t, out, "go version: ")
}

func TestRevisionOverride(t *testing.T) {
	version.Revision = "abc123"
	defer func() { version.Revision = "" }()

	require.Contains(t, version.Print(), "revision:   abc123")
}
