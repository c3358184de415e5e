// SPDX-License-Identifier: MIT

// Package normalize prepares synthesized audio chunks for encoding.
//
// Text-to-speech engines emit audio in bounded chunks. Played back to back,
// raw chunks produce audible clicks (uneven loudness) and dead air (synthesis
// tails and leading/trailing silence). This package removes both: each chunk
// is peak-normalized, its tail is trimmed on non-final chunks, and silence at
// the chunk edges is cut back to a configurable padding.
//
// # Per-Stream State
//
// A Normalizer carries the trim and pad parameters for one output stream.
// Create one per stream and pass it through the chunk loop:
//
//	norm := normalize.New(normalize.Config{
//	    SampleRate:              24000,
//	    GapTrimMS:               1,
//	    DynamicGapTrimPaddingMS: 410,
//	})
//
//	for i, chunk := range chunks {
//	    last := i == len(chunks)-1
//	    pcm16 := norm.Normalize(chunk, last)
//	    // hand pcm16 to the encoder
//	}
//
// A Normalizer must not be shared between streams: independent streams must
// not observe each other's parameters. It holds no locks; each instance is
// owned by exactly one chunk-processing loop. Distinct streams with distinct
// instances may run in parallel.
//
// # Silence Boundaries
//
// NonSilentRange is the underlying pure function. It scans a 16-bit buffer
// from both ends for the first and last samples above a dBFS threshold and
// returns the padded range around them. A fully silent buffer is returned
// whole rather than collapsed to nothing, so every chunk yields output.
package normalize
