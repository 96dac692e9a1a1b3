// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package gfs

import (
	"context"
	"io"
)

type contextReader struct {
	done <-chan struct{}
	ctx  context.Context
	r    io.Reader
}

// NewReader returns a reader that stops with ctx.Err() once ctx is done.
// The check happens before each Read, a Read that is already blocked is not interrupted.
func NewReader(ctx context.Context, r io.Reader) io.Reader {
	done := ctx.Done()
	if done == nil {
		// context.Background and friends can never be cancelled.
		return r
	}

	return &contextReader{done: done, ctx: ctx, r: r}
}

func (r *contextReader) Read(p []byte) (int, error) {
	select {
	case <-r.done:
		return 0, r.ctx.Err()
	default:
		return r.r.Read(p)
	}
}
