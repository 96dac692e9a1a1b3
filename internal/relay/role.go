// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package relay

import (
	"context"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/trim21/errgo"

	"filecopy/internal/pkg/mempool"
)

var chunks = mempool.New(ChunkSize)

// Producer streams the source into the write end of the channel.
// Run closes both of them.
type Producer struct {
	Source  io.ReadCloser
	Channel io.WriteCloser

	SourcePath string

	log   zerolog.Logger
	Stats Stats
}

func (p *Producer) Run(ctx context.Context) error {
	defer p.Source.Close()
	// closing the write end is what the consumer observes as end of input.
	defer p.Channel.Close()

	buf := chunks.Get()
	defer chunks.Put(buf)

	p.log.Debug().Msg("producer start")

	err := Stream(ctx, p.Channel, p.Source, buf, &p.Stats)
	if err != nil {
		p.log.Debug().Err(err).Msg("producer failed")

		if StatusOf(err) == ReadError {
			return annotate(err, "read source", p.SourcePath)
		}

		return annotate(err, "write channel", "")
	}

	p.log.Debug().
		Int64("chunks", p.Stats.Chunks.Load()).
		Msgf("producer done, %s sent", humanize.IBytes(uint64(p.Stats.Bytes.Load())))

	return nil
}

// Consumer drains the read end of the channel into the destination.
// Run closes both of them.
type Consumer struct {
	Channel     io.ReadCloser
	Destination io.WriteCloser

	DestinationPath string

	log   zerolog.Logger
	Stats Stats
}

func (c *Consumer) Run(ctx context.Context) (err error) {
	defer func() {
		cerr := c.Destination.Close()
		if err == nil && cerr != nil {
			err = &Error{Status: WriteError, Op: "close destination", Path: c.DestinationPath,
				Err: errgo.Wrap(cerr, "failed to close destination file")}
		}
	}()

	defer c.Channel.Close()

	buf := chunks.Get()
	defer chunks.Put(buf)

	c.log.Debug().Msg("consumer start")

	err = Stream(ctx, c.Destination, c.Channel, buf, &c.Stats)
	if err != nil {
		c.log.Debug().Err(err).Msg("consumer failed")

		if StatusOf(err) == ReadError {
			return annotate(err, "read channel", "")
		}

		return annotate(err, "write destination", c.DestinationPath)
	}

	c.log.Debug().
		Int64("chunks", c.Stats.Chunks.Load()).
		Msgf("consumer done, %s written", humanize.IBytes(uint64(c.Stats.Bytes.Load())))

	return nil
}
