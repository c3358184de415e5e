// SPDX-License-Identifier: MIT

package source

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/idobn/ttsaudio/utils"
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * 2
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	if samples == 0 {
		return 0, io.EOF
	}

	return samples, nil
}

// NewWAVSource parses a WAV stream and returns its PCM 16-bit payload as a
// Source. Unlike a fixed 44-byte header parse, the chunk walk tolerates
// extra chunks (LIST, fact, cue) before the data chunk.
func NewWAVSource(r io.Reader) (Source, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, ErrNotWAVFile
	}

	var (
		haveFmt    bool
		channels   int
		sampleRate int
	)

	for {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrNoDataChunk
			}
			return nil, fmt.Errorf("%w", err)
		}

		id := string(hdr[0:4])
		size := int64(binary.LittleEndian.Uint32(hdr[4:8]))

		switch id {
		case "fmt ":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
			if len(body) < 16 {
				return nil, ErrNotWAVFile
			}

			audioFormat := binary.LittleEndian.Uint16(body[0:2])
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitsPerSample := binary.LittleEndian.Uint16(body[14:16])

			if audioFormat != 1 || bitsPerSample != 16 {
				return nil, ErrOnlyPCM16BitSupported
			}
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, ErrNotWAVFile
			}

			return &wavSource{
				r:          io.LimitReader(r, size),
				sampleRate: sampleRate,
				channels:   channels,
				buf:        make([]byte, 4096),
			}, nil

		default:
			// RIFF chunks are padded to even sizes.
			if size%2 == 1 {
				size++
			}
			if _, err := io.CopyN(io.Discard, r, size); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
		}
	}
}
