// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mempool

import (
	"github.com/colega/zeropool"
)

// Pool hands out byte slices of one fixed length.
type Pool struct {
	pool zeropool.Pool[[]byte]
	size int
}

func New(size int) *Pool {
	return &Pool{
		size: size,
		pool: zeropool.New(func() []byte {
			return make([]byte, size)
		}),
	}
}

// Get returns a slice with len == size. Content is undefined.
func (p *Pool) Get() []byte {
	return p.pool.Get()[:p.size]
}

func (p *Pool) Put(b []byte) {
	if cap(b) < p.size {
		return
	}

	p.pool.Put(b[:p.size])
}

func (p *Pool) Size() int {
	return p.size
}
