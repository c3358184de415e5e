// SPDX-License-Identifier: MIT

package utils

// Float32ToInt16 converts a float32 sample in [-1,1] to a signed 16-bit sample.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a signed 16-bit sample to float32 in [-1,1].
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Int16SliceToFloat32 converts a whole buffer of 16-bit samples to float32.
func Int16SliceToFloat32(samples []int16) []float32 {
	out := make([]float32, len(samples))
	for i, v := range samples {
		out[i] = Int16ToFloat32(v)
	}

	return out
}
