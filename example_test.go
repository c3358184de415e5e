// SPDX-License-Identifier: MIT

package ttsaudio_test

import (
	"fmt"
	"math"

	"github.com/idobn/ttsaudio"
	"github.com/idobn/ttsaudio/encode"
	"github.com/idobn/ttsaudio/normalize"
)

// sineChunk builds a synthetic synthesis chunk: a tone with silent padding on
// both sides, the shape a TTS model typically emits.
func sineChunk(rate, lead, tone, tail int) []float32 {
	chunk := make([]float32, lead+tone+tail)
	for i := range tone {
		t := float64(i) / float64(rate)
		chunk[lead+i] = float32(0.3 * math.Sin(2*math.Pi*440*t))
	}
	return chunk
}

// Example_streaming demonstrates per-chunk conversion of a synthesis stream.
func Example_streaming() {
	conv, err := ttsaudio.NewConverter("pcm", ttsaudio.ConverterOptions{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	chunks := [][]float32{
		sineChunk(24000, 2400, 12000, 2400),
		sineChunk(24000, 2400, 12000, 2400),
	}

	for i, chunk := range chunks {
		data, err := conv.ConvertChunk(chunk, i == len(chunks)-1)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("chunk %d: %d samples in, %d bytes out\n", i, len(chunk), len(data))
	}
	// Output:
	// chunk 0: 16800 samples in, 31150 bytes out
	// chunk 1: 16800 samples in, 31198 bytes out
}

// Example_oneShot encodes a leveled buffer directly, without normalization.
func Example_oneShot() {
	samples := make([]float32, 2400)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*220*float64(i)/24000))
	}

	data, err := ttsaudio.Convert(samples, 24000, encode.WAV, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("WAV file: %d bytes (44 header + %d data)\n", len(data), len(samples)*2)
	// Output: WAV file: 4844 bytes (44 header + 4800 data)
}

// Example_unsupportedFormat shows the error returned for unknown formats.
func Example_unsupportedFormat() {
	_, err := ttsaudio.NewConverter("aac", ttsaudio.ConverterOptions{})
	fmt.Println(err)
	// Output: format aac not supported, supported formats are: wav, mp3, opus, flac, pcm
}

// Example_customNormalizer configures the gap trim explicitly.
func Example_customNormalizer() {
	norm := normalize.New(normalize.Config{
		SampleRate:              24000,
		GapTrimMS:               25,
		DynamicGapTrimPaddingMS: 410,
	})

	conv, err := ttsaudio.NewConverter("pcm", ttsaudio.ConverterOptions{
		Normalizer: norm,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("format:", conv.Format())
	fmt.Println("rate:", conv.SampleRate())
	// Output:
	// format: pcm
	// rate: 24000
}
