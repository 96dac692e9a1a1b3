// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/samber/lo"

	"filecopy/internal/pkg/global"
)

const (
	MAJOR = 0
	MINOR = 1
	PATCH = 0
)

// Revision may be set at build time with -ldflags.
var Revision string

// Version is MAJOR.MINOR.PATCH, marked when built without the release tag.
func Version() string {
	v := fmt.Sprintf("%d.%d.%d", MAJOR, MINOR, PATCH)
	if global.Dev {
		v += " (development)"
	}

	return v
}

// Print returns the multi-line output of --version.
func Print() string {
	rev, modified := vcsRevision()

	lines := []string{
		"version:    " + Version(),
		"revision:   " + lo.Ternary(modified, rev+"-modified", rev),
		"go version: " + runtime.Version(),
		"platform:   " + runtime.GOOS + "/" + runtime.GOARCH,
	}

	return strings.Join(lines, "\n")
}

func vcsRevision() (rev string, modified bool) {
	if Revision != "" {
		return Revision, false
	}

	rev = "<unknown>"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return rev, false
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	return rev, modified
}
