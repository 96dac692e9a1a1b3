// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

//go:build linux

package gfs

import (
	"os"

	"golang.org/x/sys/unix"
)

func fadviseSequential(f *os.File) {
	// only a hint, kernel may ignore it.
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
