// SPDX-License-Identifier: MIT

// Package encode turns prepared 16-bit sample buffers into encoded audio
// bytes.
//
// The package dispatches over a closed set of output formats:
//   - PCM: raw little-endian samples, no container
//   - WAV: RIFF container, PCM 16-bit
//   - MP3: via github.com/viert/go-lame
//   - Opus: via github.com/thesyncim/gopus in an Ogg container
//   - FLAC: via github.com/mewkiz/flac
//
// Each call produces a complete, self-contained bitstream for the given
// buffer; streaming callers concatenate per-chunk results themselves.
//
// # Dispatch
//
//	format, err := encode.ParseFormat("opus")
//	if err != nil {
//	    // *encode.UnsupportedFormatError, lists the supported set
//	}
//
//	data, err := encode.Encode(samples, 24000, format, encode.Options{
//	    Streaming: true,
//	    Settings:  encode.ResolveSettings(format, nil),
//	})
//
// Formats are a closed enum rather than open strings, so adding one is a
// compile-time change; the parse step keeps the originally requested tag for
// error messages.
//
// # Settings
//
// Every format has a static default parameter set (bitrate mode, compression
// level). Callers override individual fields per format:
//
//	vbr := encode.BitrateVariable
//	settings := encode.ResolveSettings(encode.MP3, encode.Overrides{
//	    encode.MP3: {BitrateMode: &vbr},
//	})
//
// Settings are not validated here; a value the codec rejects surfaces as an
// *EncodeError wrapping the codec's failure.
package encode
