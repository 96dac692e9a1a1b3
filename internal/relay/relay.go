// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package relay copies a file by passing its bytes through a pipe between a
// producer that reads the source and a consumer that writes the destination.
package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/trim21/errgo"

	"filecopy/internal/pkg/gfs"
	"filecopy/internal/pkg/global/tasks"
)

// Relay copies one file. Build it with New, it is good for a single Run.
type Relay struct {
	out io.Writer
	log zerolog.Logger

	newPipe func() (r *os.File, w *os.File, err error)
	spawn   func(fn func() error) (*tasks.Future, error)

	src string
	dst string
}

type Option func(r *Relay)

// WithOutput sets where the success confirmation is written, os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(r *Relay) {
		r.out = w
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Relay) {
		r.log = l
	}
}

func New(src, dst string, opts ...Option) *Relay {
	r := &Relay{
		src:     src,
		dst:     dst,
		out:     os.Stdout,
		log:     log.Logger,
		newPipe: os.Pipe,
		spawn:   tasks.Go,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.log = r.log.With().Str("src", src).Str("dst", dst).Logger()

	return r
}

// Report is what both roles moved.
type Report struct {
	Producer Counters
	Consumer Counters
}

// Run performs the copy and blocks until both roles are finished.
//
// The returned error is always a *Error, the first failure wins: setup steps,
// then the producer, then the consumer.
func (r *Relay) Run(ctx context.Context) (Report, error) {
	src, err := gfs.OpenSource(r.src)
	if err != nil {
		return Report{}, &Error{Status: OpenSourceError, Op: "open source", Path: r.src, Err: err}
	}

	dst, err := gfs.CreateDestination(r.dst)
	if err != nil {
		_ = src.Close()
		return Report{}, &Error{Status: OpenDestinationError, Op: "open destination", Path: r.dst, Err: err}
	}

	pr, pw, err := r.newPipe()
	if err != nil {
		_ = src.Close()
		_ = dst.Close()
		return Report{}, &Error{Status: ChannelCreationError, Op: "create pipe",
			Err: errgo.Wrap(err, "failed to create pipe")}
	}

	producer := &Producer{Source: src, Channel: pw, SourcePath: r.src, log: r.log}
	consumer := &Consumer{Channel: pr, Destination: dst, DestinationPath: r.dst, log: r.log}

	// from here the consumer owns the read end and the destination.
	future, err := r.spawn(func() error {
		return consumer.Run(ctx)
	})
	if err != nil {
		_ = pr.Close()
		_ = pw.Close()
		_ = src.Close()
		_ = dst.Close()
		return Report{}, &Error{Status: SpawnError, Op: "spawn consumer", Err: err}
	}

	producerErr := producer.Run(ctx)
	consumerErr := future.Wait()

	report := Report{
		Producer: producer.Stats.snapshot(),
		Consumer: consumer.Stats.snapshot(),
	}

	if producerErr != nil {
		return report, producerErr
	}

	if consumerErr != nil {
		var e *Error
		if !errors.As(consumerErr, &e) {
			// only a recovered panic gets here.
			return report, &Error{Status: WriteError, Op: "consumer", Err: consumerErr}
		}

		return report, consumerErr
	}

	r.log.Info().
		Int64("bytes", report.Consumer.Bytes).
		Int64("chunks", report.Producer.Chunks).
		Msg("file copied")

	_, _ = fmt.Fprintf(r.out, "File successfully copied from '%s' to '%s'\n", r.src, r.dst)

	return report, nil
}
