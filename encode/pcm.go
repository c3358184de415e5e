// SPDX-License-Identifier: MIT

package encode

import "encoding/binary"

// encodePCM packs samples as raw little-endian 16-bit PCM, two bytes per
// sample, no header.
func encodePCM(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}

	return out
}
