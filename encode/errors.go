// SPDX-License-Identifier: MIT

package encode

import "fmt"

// UnsupportedFormatError reports a format tag outside the supported set.
type UnsupportedFormatError struct {
	// Format is the tag as the caller requested it.
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("format %s not supported, supported formats are: wav, mp3, opus, flac, pcm", e.Format)
}

// EncodeError wraps a failure raised by one of the codec collaborators.
// Collaborator errors never propagate raw; the dispatcher wraps every one of
// them so callers always see the target format alongside the cause.
type EncodeError struct {
	Format Format
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to convert audio to %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
