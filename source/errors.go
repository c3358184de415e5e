// SPDX-License-Identifier: MIT

package source

import "errors"

var (
	ErrNotWAVFile            = errors.New("not a WAV file")
	ErrNoDataChunk           = errors.New("WAV file has no data chunk")
	ErrNotAIFFFile           = errors.New("not an AIFF file")
	ErrOnlyPCM16BitSupported = errors.New("only PCM 16-bit supported")
)
