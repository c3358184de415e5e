// SPDX-License-Identifier: MIT

package source_test

import (
	"io"
	"testing"

	"github.com/idobn/ttsaudio/source"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := source.NewRegistry()

	if _, ok := r.Get("wav"); ok {
		t.Error("Get() on empty registry returned a decoder")
	}

	r.Register("wav", source.NewWAVSource)

	fn, ok := r.Get("wav")
	if !ok {
		t.Fatal("Get() did not find registered decoder")
	}
	if fn == nil {
		t.Fatal("Get() returned nil decoder")
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := source.DefaultRegistry()

	for _, format := range []string{"wav", "mp3", "ogg", "aiff"} {
		if _, ok := r.Get(format); !ok {
			t.Errorf("Get(%q) = false, want registered", format)
		}
	}

	if _, ok := r.Get("flac"); ok {
		t.Error("Get(\"flac\") = true, want unregistered")
	}
}

// errSource always fails; used to exercise error propagation in wrappers.
type errSource struct {
	err error
}

func (s errSource) SampleRate() int                    { return 24000 }
func (s errSource) Channels() int                      { return 1 }
func (s errSource) Close() error                       { return nil }
func (s errSource) ReadSamples([]float32) (int, error) { return 0, s.err }

var _ source.Source = errSource{err: io.ErrClosedPipe}
