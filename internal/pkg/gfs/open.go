// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package gfs

import (
	"os"

	"github.com/trim21/errgo"
)

// DestinationMode is the permission of newly created destination files, before umask.
const DestinationMode os.FileMode = 0o644

// OpenSource opens path read-only for a single sequential pass.
func OpenSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errgo.Wrap(err, "failed to open source file")
	}

	fadviseSequential(f)

	return f, nil
}

// CreateDestination opens path write-only, creating it with DestinationMode
// when it does not exist and discarding its content when it does.
func CreateDestination(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DestinationMode)
	if err != nil {
		return nil, errgo.Wrap(err, "failed to open destination file")
	}

	return f, nil
}
