// SPDX-License-Identifier: MIT

package source_test

import (
	"io"
	"math"
	"testing"

	"github.com/idobn/ttsaudio/internal/audiotest"
	"github.com/idobn/ttsaudio/source"
)

func TestChunker_FixedChunks(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(24000, 1, 2500, 0.5)
	chunker := source.NewChunker(src, 1000)

	var sizes []int
	var lastFlags []bool

	for {
		chunk, last, err := chunker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}

		sizes = append(sizes, len(chunk))
		lastFlags = append(lastFlags, last)
	}

	wantSizes := []int{1000, 1000, 500}
	if len(sizes) != len(wantSizes) {
		t.Fatalf("got %d chunks %v, want %d", len(sizes), sizes, len(wantSizes))
	}

	for i, want := range wantSizes {
		if sizes[i] != want {
			t.Errorf("chunk[%d] size = %d, want %d", i, sizes[i], want)
		}
	}

	for i, last := range lastFlags {
		want := i == len(lastFlags)-1
		if last != want {
			t.Errorf("chunk[%d] last = %v, want %v", i, last, want)
		}
	}
}

func TestChunker_StereoMixdown(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(24000, 2, 100, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.2
		}
		return 0.6
	})
	chunker := source.NewChunker(src, 100)

	chunk, last, err := chunker.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	if !last {
		t.Error("Next() last = false, want true")
	}

	if len(chunk) != 100 {
		t.Fatalf("len(chunk) = %d, want 100", len(chunk))
	}

	for i, v := range chunk {
		if math.Abs(float64(v-0.4)) > 1e-6 {
			t.Fatalf("chunk[%d] = %v, want 0.4", i, v)
		}
	}
}

func TestChunker_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(24000, 1, 0)
	chunker := source.NewChunker(src, 1000)

	chunk, last, err := chunker.Next()
	if err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
	if chunk != nil {
		t.Errorf("Next() chunk = %v, want nil", chunk)
	}
	if !last {
		t.Error("Next() last = false, want true")
	}
}

func TestChunker_ExhaustedReturnsEOF(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(24000, 1, 10, 0.1)
	chunker := source.NewChunker(src, 10)

	if _, _, err := chunker.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	for range 3 {
		if _, _, err := chunker.Next(); err != io.EOF {
			t.Fatalf("Next() after exhaustion error = %v, want io.EOF", err)
		}
	}
}
