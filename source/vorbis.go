// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// vorbisStream is the part of oggvorbis.Reader the source uses, split out so
// tests can substitute it.
type vorbisStream interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type vorbisSource struct {
	dec        vorbisStream
	sampleRate int
	channels   int
}

func (s *vorbisSource) SampleRate() int { return s.sampleRate }
func (s *vorbisSource) Channels() int   { return s.channels }
func (s *vorbisSource) Close() error    { return nil }

func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// The reader wants a buffer holding whole frames and returns the
	// number of frames decoded.
	usable := len(dst) - len(dst)%s.channels

	frames, err := s.dec.Read(dst[:usable])
	if frames == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	return frames * s.channels, err
}

// NewVorbisSource decodes an Ogg Vorbis stream into a Source.
func NewVorbisSource(r io.Reader) (Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &vorbisSource{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
