// SPDX-License-Identifier: MIT

package encode

import (
	"bytes"
	"fmt"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

// flacBlockSize is the samples-per-frame granularity of the FLAC stream.
const flacBlockSize = 4096

// encodeFLAC produces a complete FLAC stream with PCM 16-bit payload for the
// buffer. Subframes are verbatim: the stream stays lossless and the encode
// cost stays flat, matching the compression-level-zero default.
func encodeFLAC(samples []int16, sampleRate int, _ Settings) ([]byte, error) {
	var buf bytes.Buffer

	info := &meta.StreamInfo{
		BlockSizeMin:  16, // smallest legal block; the final frame may run short
		BlockSizeMax:  flacBlockSize,
		SampleRate:    uint32(sampleRate),
		NChannels:     1,
		BitsPerSample: 16,
		NSamples:      uint64(len(samples)),
	}

	enc, err := flac.NewEncoder(&buf, info)
	if err != nil {
		return nil, fmt.Errorf("create encoder: %w", err)
	}

	for off := 0; off < len(samples); off += flacBlockSize {
		end := off + flacBlockSize
		if end > len(samples) {
			end = len(samples)
		}
		block := samples[off:end]

		data := make([]int32, len(block))
		for i, v := range block {
			data[i] = int32(v)
		}

		f := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: false,
				BlockSize:         uint16(len(block)),
				SampleRate:        uint32(sampleRate),
				Channels:          frame.ChannelsMono,
				BitsPerSample:     16,
				Num:               uint64(off),
			},
			Subframes: []*frame.Subframe{{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   data,
				NSamples:  len(block),
			}},
		}

		if err := enc.WriteFrame(f); err != nil {
			return nil, fmt.Errorf("write frame at %d: %w", off, err)
		}
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close stream: %w", err)
	}

	return buf.Bytes(), nil
}
