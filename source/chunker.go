// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"io"
)

// Chunker splits a Source into fixed-size mono chunks. Multi-channel input
// is mixed down by averaging channels. It reads one chunk ahead so that
// callers learn whether a chunk is the final one at the moment they receive
// it, which stream normalization needs for its end-of-utterance handling.
type Chunker struct {
	src          Source
	chunkSamples int
	channels     int

	tmp     []float32
	pending []float32
	primed  bool
	done    bool
}

// NewChunker wraps src, yielding mono chunks of chunkSamples samples. The
// final chunk may be shorter.
func NewChunker(src Source, chunkSamples int) *Chunker {
	return &Chunker{
		src:          src,
		chunkSamples: chunkSamples,
		channels:     src.Channels(),
		tmp:          make([]float32, chunkSamples*src.Channels()),
	}
}

func (c *Chunker) Close() error {
	if err := c.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readChunk collects up to chunkSamples mono samples from the source.
// Returns nil at end of stream.
func (c *Chunker) readChunk() ([]float32, error) {
	if c.done {
		return nil, nil
	}

	chunk := make([]float32, 0, c.chunkSamples)

	for len(chunk) < c.chunkSamples {
		need := (c.chunkSamples - len(chunk)) * c.channels

		n, err := c.src.ReadSamples(c.tmp[:need])
		if n > 0 {
			frames := n / c.channels
			for f := range frames {
				sum := float32(0)
				for ch := range c.channels {
					sum += c.tmp[f*c.channels+ch]
				}
				chunk = append(chunk, sum/float32(c.channels))
			}
		}

		if err == io.EOF {
			c.done = true
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			c.done = true
			break
		}
	}

	if len(chunk) == 0 {
		return nil, nil
	}

	return chunk, nil
}

// Next returns the next mono chunk and whether it is the final one. After the
// final chunk it returns (nil, true, io.EOF).
func (c *Chunker) Next() ([]float32, bool, error) {
	if !c.primed {
		chunk, err := c.readChunk()
		if err != nil {
			return nil, false, err
		}
		c.pending = chunk
		c.primed = true
	}

	if c.pending == nil {
		return nil, true, io.EOF
	}

	chunk := c.pending

	next, err := c.readChunk()
	if err != nil {
		return nil, false, err
	}
	c.pending = next

	return chunk, next == nil, nil
}
