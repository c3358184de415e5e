// SPDX-License-Identifier: MIT

package encode

import (
	"bytes"
	"fmt"
	"math"

	lame "github.com/viert/go-lame"
)

// encodeMP3 produces a complete MP3 bitstream for the buffer using LAME.
// Input is mono PCM16 at sampleRate; the bitrate mode and quality come from
// the resolved settings.
func encodeMP3(samples []int16, sampleRate int, s Settings) ([]byte, error) {
	var buf bytes.Buffer

	enc := lame.NewEncoder(&buf)
	defer enc.Close()

	if err := enc.SetInSamplerate(sampleRate); err != nil {
		return nil, fmt.Errorf("set input sample rate: %w", err)
	}
	if err := enc.SetNumChannels(1); err != nil {
		return nil, fmt.Errorf("set channels: %w", err)
	}
	if err := enc.SetMode(lame.MpegMono); err != nil {
		return nil, fmt.Errorf("set mono mode: %w", err)
	}
	if err := enc.SetQuality(lameQuality(s.CompressionLevel)); err != nil {
		return nil, fmt.Errorf("set quality: %w", err)
	}

	vbr := lame.VBROff
	if s.BitrateMode == BitrateVariable {
		vbr = lame.VBRDefault
	}
	if err := enc.SetVBR(vbr); err != nil {
		return nil, fmt.Errorf("set bitrate mode: %w", err)
	}

	if _, err := enc.Write(encodePCM(samples)); err != nil {
		return nil, fmt.Errorf("encoding: %w", err)
	}

	// Close flushes the final frames into buf before we read it.
	enc.Close()

	return buf.Bytes(), nil
}

// lameQuality maps the 0..1 compression level onto LAME's 0..9 quality
// scale. Level 0 keeps the fastest setting.
func lameQuality(level float64) int {
	q := int(math.Round(level * 9))
	if q < 0 {
		q = 0
	}
	if q > 9 {
		q = 9
	}

	return q
}
