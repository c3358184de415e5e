// SPDX-License-Identifier: MIT

package source

import (
	"io"
	"sync"
)

// Source is a stream of interleaved float32 samples in [-1,1].
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns the
	// number of float32 values written. n == 0 with io.EOF means the
	// stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// DecoderFunc constructs a Source from an input reader.
type DecoderFunc func(r io.Reader) (Source, error)

// Registry maps format tags (usually file extensions) to decoders.
type Registry struct {
	mtx      sync.RWMutex
	decoders map[string]DecoderFunc
}

func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]DecoderFunc)}
}

func (r *Registry) Register(format string, fn DecoderFunc) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[format] = fn
}

func (r *Registry) Get(format string) (DecoderFunc, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	fn, ok := r.decoders[format]
	return fn, ok
}

// DefaultRegistry returns a registry with every built-in decoder registered
// under its usual file extension.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("wav", NewWAVSource)
	r.Register("mp3", NewMP3Source)
	r.Register("ogg", NewVorbisSource)
	r.Register("aiff", NewAIFFSource)

	return r
}
