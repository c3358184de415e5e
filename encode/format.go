// SPDX-License-Identifier: MIT

package encode

import (
	"fmt"
	"strings"
)

// Format identifies an output encoding. The set is closed: the dispatcher
// switches exhaustively over these values.
type Format int

const (
	// PCM is raw little-endian 16-bit samples without a container header.
	PCM Format = iota
	// WAV is a RIFF/WAVE container with PCM 16-bit payload.
	WAV
	// MP3 is an MPEG layer III bitstream.
	MP3
	// Opus is an Opus bitstream in an Ogg container.
	Opus
	// FLAC is a native FLAC stream with PCM 16-bit payload.
	FLAC
)

// String returns the lowercase wire tag for the format.
func (f Format) String() string {
	switch f {
	case PCM:
		return "pcm"
	case WAV:
		return "wav"
	case MP3:
		return "mp3"
	case Opus:
		return "opus"
	case FLAC:
		return "flac"
	}

	return fmt.Sprintf("format(%d)", int(f))
}

// Formats lists every supported format in the order error messages quote them.
func Formats() []Format {
	return []Format{WAV, MP3, Opus, FLAC, PCM}
}

// ParseFormat maps a wire tag to its Format. Unknown tags, including "aac",
// fail with *UnsupportedFormatError carrying the requested tag.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "pcm":
		return PCM, nil
	case "wav":
		return WAV, nil
	case "mp3":
		return MP3, nil
	case "opus":
		return Opus, nil
	case "flac":
		return FLAC, nil
	}

	return 0, &UnsupportedFormatError{Format: name}
}
