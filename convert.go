// SPDX-License-Identifier: MIT

package ttsaudio

import (
	"github.com/idobn/ttsaudio/encode"
	"github.com/idobn/ttsaudio/normalize"
	"github.com/idobn/ttsaudio/utils"
)

// Convert encodes a single float32 chunk to the requested format in one shot.
// The chunk is quantized as-is, without normalization or trimming, which
// suits offline conversion of audio that is already leveled.
func Convert(chunk []float32, sampleRate int, format encode.Format, overrides encode.Overrides) ([]byte, error) {
	pcm := make([]int16, len(chunk))
	for i, v := range chunk {
		pcm[i] = utils.Float32ToInt16(v)
	}

	opts := encode.Options{
		Settings: encode.ResolveSettings(format, overrides),
	}

	return encode.Encode(pcm, sampleRate, format, opts)
}

// ConverterOptions configures a Converter. The zero value is usable: default
// normalization at 24 kHz with the format's default encoder settings.
type ConverterOptions struct {
	// Normalizer to run chunks through. Nil creates a default one at the
	// configured sample rate.
	Normalizer *normalize.Normalizer

	// SampleRate of incoming chunks in Hz. Ignored when Normalizer is set,
	// whose rate then applies. Zero means 24000.
	SampleRate int

	// Overrides adjust encoder settings per format.
	Overrides encode.Overrides
}

// Converter prepares and encodes the chunks of one synthesis stream. It owns
// the stream's normalizer state and must not be shared across streams;
// distinct streams each get their own Converter and can run in parallel.
type Converter struct {
	format   encode.Format
	settings encode.Settings
	norm     *normalize.Normalizer
	started  bool
}

// NewConverter builds a Converter for the given format tag ("wav", "mp3",
// "opus", "flac" or "pcm"). An unknown tag fails with
// *encode.UnsupportedFormatError.
func NewConverter(formatTag string, opts ConverterOptions) (*Converter, error) {
	format, err := encode.ParseFormat(formatTag)
	if err != nil {
		return nil, err
	}

	norm := opts.Normalizer
	if norm == nil {
		if opts.SampleRate > 0 && opts.SampleRate != normalize.DefaultSampleRate {
			norm = normalize.New(normalize.Config{
				SampleRate:              opts.SampleRate,
				GapTrimMS:               normalize.DefaultGapTrimMS,
				DynamicGapTrimPaddingMS: normalize.DefaultDynamicGapTrimPaddingMS,
			})
		} else {
			norm = normalize.NewDefault()
		}
	}

	return &Converter{
		format:   format,
		settings: encode.ResolveSettings(format, opts.Overrides),
		norm:     norm,
	}, nil
}

// Format returns the target format.
func (c *Converter) Format() encode.Format { return c.format }

// SampleRate returns the stream rate chunks are expected at.
func (c *Converter) SampleRate() int { return c.norm.SampleRate() }

// ConvertChunk normalizes one chunk and encodes it. Every returned buffer is
// a complete bitstream in the target format, so receivers can play or decode
// each one on its own. lastChunk relaxes the gap trim so the stream's final
// tail is kept.
func (c *Converter) ConvertChunk(chunk []float32, lastChunk bool) ([]byte, error) {
	first := !c.started
	c.started = true

	pcm := c.norm.Normalize(chunk, lastChunk)

	opts := encode.Options{
		Streaming:  true,
		FirstChunk: first,
		LastChunk:  lastChunk,
		Settings:   c.settings,
	}

	return encode.Encode(pcm, c.norm.SampleRate(), c.format, opts)
}

// ConvertChunkInt16 is ConvertChunk for callers that already hold 16-bit
// samples.
func (c *Converter) ConvertChunkInt16(chunk []int16, lastChunk bool) ([]byte, error) {
	return c.ConvertChunk(utils.Int16SliceToFloat32(chunk), lastChunk)
}
