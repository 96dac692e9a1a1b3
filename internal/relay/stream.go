// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package relay

import (
	"context"
	"errors"
	"io"

	"github.com/trim21/errgo"
	"go.uber.org/atomic"

	"filecopy/internal/pkg/gfs"
)

// ChunkSize is the fixed number of bytes moved per iteration.
const ChunkSize = 25

// Stats counts what one role moved. Read it after the role returned.
type Stats struct {
	Chunks atomic.Int64 // reads that returned data
	Writes atomic.Int64 // write calls, including retries of short writes
	Bytes  atomic.Int64
}

func (s *Stats) snapshot() Counters {
	return Counters{
		Chunks: s.Chunks.Load(),
		Writes: s.Writes.Load(),
		Bytes:  s.Bytes.Load(),
	}
}

// Counters is a plain copy of Stats.
type Counters struct {
	Chunks int64
	Writes int64
	Bytes  int64
}

// Stream moves everything from src to dst, len(chunk) bytes at a time.
//
// Returned errors are *Error with either ReadError or WriteError status.
func Stream(ctx context.Context, dst io.Writer, src io.Reader, chunk []byte, stats *Stats) error {
	r := gfs.NewReader(ctx, src)

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			stats.Chunks.Inc()

			if werr := writeFull(dst, chunk[:n], stats); werr != nil {
				return &Error{Status: WriteError, Err: werr}
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return &Error{Status: ReadError, Err: err}
		}

		if n == 0 {
			return nil
		}
	}
}

// writeFull keeps writing the unwritten tail of p until all of it is accepted.
func writeFull(w io.Writer, p []byte, stats *Stats) error {
	for off := 0; off < len(p); {
		m, err := w.Write(p[off:])
		stats.Writes.Inc()

		if m < 0 || m > len(p)-off {
			return errgo.Wrap(io.ErrShortWrite, "invalid write count")
		}

		off += m
		stats.Bytes.Add(int64(m))

		if err != nil {
			return err
		}

		if m == 0 {
			return errgo.Wrap(io.ErrNoProgress, "write accepted no bytes")
		}
	}

	return nil
}
