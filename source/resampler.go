// SPDX-License-Identifier: MIT

package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/idobn/ttsaudio/utils"
)

// ErrInvalidDstSize is returned when a destination buffer length is not a
// multiple of the channel count.
var ErrInvalidDstSize = errors.New("dst length must be a multiple of channel count")

// Resampler converts a Source to a target sample rate using cubic
// interpolation over a sliding four-frame window. It works on interleaved
// samples and preserves the channel count. A one-pole low-pass filter tames
// aliasing when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// window[0]=t-1, window[1]=t0, window[2]=t+1, window[3]=t+2
	window [4][]float32
	filled [4]bool
	primed bool

	pos    float64
	eof    bool
	srcBuf []float32

	filterState []float32
	filterAlpha float32
}

// NewResampler wraps src, producing samples at dstRate.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    ratio,
		channels: channels,
		srcBuf:   make([]float32, channels),
	}

	if ratio > 1.0 {
		r.filterAlpha = 0.5
		r.filterState = make([]float32, channels)
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, io.EOF
	}

	n, err := r.src.ReadSamples(r.srcBuf)
	if n > 0 {
		copy(dst, r.srcBuf[:n])
		if r.filterState != nil {
			for c := range r.channels {
				dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = dst[c]
			}
		}
	}

	if err == io.EOF {
		r.eof = true
		if n == 0 {
			return false, io.EOF
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	return n > 0, nil
}

func (r *Resampler) prime() error {
	for i := range r.window {
		ok, err := r.readFrame(r.window[i])
		if ok {
			r.filled[i] = true
			if i == 0 && r.filterState != nil {
				copy(r.filterState, r.window[0])
			}
			continue
		}

		if err == io.EOF {
			if i == 0 {
				return io.EOF
			}
			// Pad the window with the last valid frame.
			for j := i; j < len(r.window); j++ {
				copy(r.window[j], r.window[i-1])
				r.filled[j] = true
			}
			break
		}
		if err != nil {
			return err
		}
	}

	r.primed = true

	return nil
}

func (r *Resampler) advance() error {
	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	ok, err := r.readFrame(r.window[3])
	r.filled[3] = ok
	if err != nil && err != io.EOF {
		return err
	}
	if err == io.EOF && !ok && !r.filled[2] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces interpolated samples at the destination rate. The dst
// length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := range r.channels {
			y1 := r.window[1][c]
			y2 := r.window[2][c]

			y0 := y1
			if r.filled[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.filled[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
