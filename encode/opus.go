// SPDX-License-Identifier: MIT

package encode

import (
	"bytes"
	"fmt"

	"github.com/thesyncim/gopus"
	"github.com/thesyncim/gopus/container/ogg"
)

// opusFrameSize is the encoder frame size. Opus frame sizes are specified in
// 48 kHz units regardless of the input rate; 960 is the 20 ms default and the
// buffer length Encode expects per frame.
const opusFrameSize = 960

// encodeOpus produces a complete Ogg Opus stream for the buffer. The input
// is mono at sampleRate, which must be an Opus rate (8, 12, 16, 24 or 48
// kHz); the synthesis pipeline's 24 kHz qualifies. The final partial frame
// is zero-padded to a full frame.
func encodeOpus(samples []int16, sampleRate int, s Settings) ([]byte, error) {
	enc, err := gopus.NewEncoder(sampleRate, 1, gopus.ApplicationVoIP)
	if err != nil {
		return nil, fmt.Errorf("create encoder: %w", err)
	}

	if c := opusComplexity(s.CompressionLevel); c > 0 {
		if err := enc.SetComplexity(c); err != nil {
			return nil, fmt.Errorf("set complexity: %w", err)
		}
	}

	var buf bytes.Buffer
	w, err := ogg.NewWriter(&buf, uint32(sampleRate), 1)
	if err != nil {
		return nil, fmt.Errorf("create ogg writer: %w", err)
	}

	pcm := make([]float32, opusFrameSize)
	for off := 0; off < len(samples); off += opusFrameSize {
		n := len(samples) - off
		if n > opusFrameSize {
			n = opusFrameSize
		}

		for i := 0; i < n; i++ {
			pcm[i] = float32(samples[off+i]) / 32768.0
		}
		for i := n; i < opusFrameSize; i++ {
			pcm[i] = 0
		}

		packet, err := enc.EncodeFloat32(pcm)
		if err != nil {
			return nil, fmt.Errorf("encode frame at %d: %w", off, err)
		}

		// An empty packet means DTX suppressed a silent frame.
		if len(packet) == 0 {
			continue
		}

		// Granule positions count samples in 48 kHz units per packet.
		if err := w.WritePacket(packet, opusFrameSize); err != nil {
			return nil, fmt.Errorf("write packet at %d: %w", off, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close ogg stream: %w", err)
	}

	return buf.Bytes(), nil
}

// opusComplexity maps the 0..1 compression level onto the encoder's 0..10
// complexity scale.
func opusComplexity(level float64) int {
	c := int(level * 10)
	if c < 0 {
		c = 0
	}
	if c > 10 {
		c = 10
	}

	return c
}
