// SPDX-License-Identifier: MIT

package encode

// Options carries the stream bookkeeping for one Encode call.
type Options struct {
	// Streaming selects the header-bearing WAV writer; one-shot callers
	// get the lighter single-pass writer instead.
	Streaming bool

	// FirstChunk and LastChunk mark the buffer's position in its stream.
	// The current collaborators encode every chunk as a self-contained
	// bitstream, so these only matter to callers that splice the results.
	FirstChunk bool
	LastChunk  bool

	// Settings are the resolved parameters for the target format,
	// normally from ResolveSettings.
	Settings Settings
}

// Encode converts a 16-bit sample buffer to encoded bytes in the requested
// format. The buffer is mono at sampleRate Hz.
//
// Failures from the codec collaborators are wrapped in *EncodeError; a
// format outside the supported set fails with *UnsupportedFormatError.
func Encode(samples []int16, sampleRate int, format Format, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case PCM:
		data = encodePCM(samples)
	case WAV:
		if opts.Streaming {
			data, err = encodeWAVStream(samples, sampleRate)
		} else {
			data = encodeWAVRaw(samples, sampleRate)
		}
	case MP3:
		data, err = encodeMP3(samples, sampleRate, opts.Settings)
	case Opus:
		data, err = encodeOpus(samples, sampleRate, opts.Settings)
	case FLAC:
		data, err = encodeFLAC(samples, sampleRate, opts.Settings)
	default:
		return nil, &UnsupportedFormatError{Format: format.String()}
	}

	if err != nil {
		return nil, &EncodeError{Format: format, Err: err}
	}

	return data, nil
}
