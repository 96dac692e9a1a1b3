// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package tasks

import (
	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/panics"
	"github.com/trim21/errgo"
)

var pool = lo.Must(ants.NewPool(4, ants.WithPreAlloc(true)))

// Future is the pending result of a function started by Go.
type Future struct {
	err  error
	done chan struct{}
}

// Go runs fn on the shared pool. A panic in fn is returned by Wait as an error.
func Go(fn func() error) (*Future, error) {
	return GoOn(pool, fn)
}

// GoOn is like Go, but runs fn on p.
func GoOn(p *ants.Pool, fn func() error) (*Future, error) {
	f := &Future{done: make(chan struct{})}

	err := p.Submit(func() {
		defer close(f.done)

		var c panics.Catcher
		c.Try(func() {
			f.err = fn()
		})

		if r := c.Recovered(); r != nil {
			f.err = r.AsError()
		}
	})
	if err != nil {
		return nil, errgo.Wrap(err, "failed to submit task")
	}

	return f, nil
}

// Wait blocks until the function returned and reports its error.
func (f *Future) Wait() error {
	<-f.done
	return f.err
}
