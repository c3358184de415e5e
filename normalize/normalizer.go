// SPDX-License-Identifier: MIT

package normalize

import "github.com/idobn/ttsaudio/utils"

const (
	// DefaultSampleRate is the rate the synthesis pipeline runs at.
	DefaultSampleRate = 24000

	// SilenceThresholdDB is the fixed gating level for edge trimming.
	SilenceThresholdDB = -45

	// DefaultGapTrimMS is the default tail trim for non-final chunks.
	DefaultGapTrimMS = 1

	// DefaultDynamicGapTrimPaddingMS is the default total padding budget
	// around the audible region.
	DefaultDynamicGapTrimPaddingMS = 410

	// startPadMS is the fixed padding kept before the first audible sample.
	startPadMS = 50
)

// Config holds the stream parameters a Normalizer is derived from. A zero
// SampleRate falls back to the package default; zero trim values mean no
// trimming.
type Config struct {
	// SampleRate of the stream in Hz.
	SampleRate int

	// GapTrimMS is the duration cut from the end of every non-final chunk.
	GapTrimMS float64

	// DynamicGapTrimPaddingMS is the total padding budget in milliseconds.
	// 50 ms is kept ahead of the audible region; the remainder, if any,
	// is kept after it.
	DynamicGapTrimPaddingMS float64
}

// Normalizer holds the per-stream trim and pad parameters. All fields are
// derived once at construction and never mutated; Normalize only reads them.
// One instance per stream, owned by that stream's processing loop.
type Normalizer struct {
	sampleRate  int
	trimSamples int
	padStart    int
	padEnd      int
}

// New derives a Normalizer from cfg. The end padding is the dynamic budget
// minus the fixed start padding, clamped at zero so it is never negative.
func New(cfg Config) *Normalizer {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}

	padStart := msToSamples(startPadMS, rate)
	padEnd := msToSamples(cfg.DynamicGapTrimPaddingMS, rate) - padStart
	if padEnd < 0 {
		padEnd = 0
	}

	return &Normalizer{
		sampleRate:  rate,
		trimSamples: msToSamples(cfg.GapTrimMS, rate),
		padStart:    padStart,
		padEnd:      padEnd,
	}
}

// NewDefault returns a Normalizer with the package default parameters,
// for callers that stream without an explicit configuration.
func NewDefault() *Normalizer {
	return New(Config{
		SampleRate:              DefaultSampleRate,
		GapTrimMS:               DefaultGapTrimMS,
		DynamicGapTrimPaddingMS: DefaultDynamicGapTrimPaddingMS,
	})
}

// SampleRate returns the stream rate the parameters were derived for.
func (n *Normalizer) SampleRate() int { return n.sampleRate }

// Normalize scales a chunk to full range, trims the synthesis tail on
// non-final chunks, quantizes to 16-bit and cuts edge silence back to the
// configured padding.
//
// The steps run in a fixed order: peak normalization first (so the silence
// threshold sees a consistent scale), then the end trim, then quantization,
// then the silence boundary cut. The output is a sub-slice of the quantized
// buffer, never longer than the trimmed input. There is no failure path: an
// empty chunk yields an empty buffer and a silent chunk passes through whole.
func (n *Normalizer) Normalize(chunk []float32, lastChunk bool) []int16 {
	samples := make([]float32, len(chunk))
	copy(samples, chunk)

	// Peak-normalize per chunk. Each chunk is scaled to its own maximum;
	// there is no loudness memory across chunks.
	var peak float32
	for _, v := range samples {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	if peak > 0 {
		inv := 1 / peak
		for i := range samples {
			samples[i] *= inv
		}
	}

	// Trim end of non-final chunks to reduce gaps between them.
	if !lastChunk && len(samples) > n.trimSamples {
		samples = samples[:len(samples)-n.trimSamples]
	}

	quantized := make([]int16, len(samples))
	for i, v := range samples {
		quantized[i] = utils.Float32ToInt16(v)
	}

	start, end := NonSilentRange(quantized, SilenceThresholdDB, n.padStart, n.padEnd)

	return quantized[start:end]
}

// NormalizeInt16 is Normalize for callers that already hold 16-bit samples.
func (n *Normalizer) NormalizeInt16(chunk []int16, lastChunk bool) []int16 {
	return n.Normalize(utils.Int16SliceToFloat32(chunk), lastChunk)
}

func msToSamples(ms float64, rate int) int {
	return int(ms * float64(rate) / 1000)
}
