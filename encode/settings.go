// SPDX-License-Identifier: MIT

package encode

// BitrateMode selects constant or variable bitrate for codecs that support
// both.
type BitrateMode int

const (
	// BitrateConstant encodes at a fixed rate. Faster and predictable,
	// the default for streaming.
	BitrateConstant BitrateMode = iota
	// BitrateVariable lets the codec adapt the rate to the signal.
	BitrateVariable
)

func (m BitrateMode) String() string {
	if m == BitrateVariable {
		return "variable"
	}
	return "constant"
}

// Settings are the resolved encoder parameters for one format.
type Settings struct {
	// BitrateMode applies to MP3 only; other codecs ignore it.
	BitrateMode BitrateMode

	// CompressionLevel trades encode speed for size, 0 (fastest) to 1.
	CompressionLevel float64
}

// Override replaces individual Settings fields. Nil fields keep the default.
type Override struct {
	BitrateMode      *BitrateMode
	CompressionLevel *float64
}

// Overrides maps formats to their overrides. Formats absent from the map keep
// their defaults untouched.
type Overrides map[Format]Override

// DefaultSettings returns the static defaults for a format. The values favor
// encode speed over size, tuned for localhost streaming. Formats without
// encoder parameters (pcm, wav) return the zero Settings.
func DefaultSettings(f Format) Settings {
	switch f {
	case MP3:
		return Settings{BitrateMode: BitrateConstant, CompressionLevel: 0}
	case Opus:
		return Settings{CompressionLevel: 0}
	case FLAC:
		return Settings{CompressionLevel: 0}
	}

	return Settings{}
}

// ResolveSettings overlays the caller's override for f, if any, onto the
// defaults. The replacement is field by field, and only the requested
// format's entry is consulted, so overrides for other formats never leak in.
func ResolveSettings(f Format, overrides Overrides) Settings {
	s := DefaultSettings(f)

	ov, ok := overrides[f]
	if !ok {
		return s
	}

	if ov.BitrateMode != nil {
		s.BitrateMode = *ov.BitrateMode
	}
	if ov.CompressionLevel != nil {
		s.CompressionLevel = *ov.CompressionLevel
	}

	return s
}
