// SPDX-License-Identifier: MIT

package normalize

import "github.com/idobn/ttsaudio/utils"

// NonSilentRange finds the boundaries of the audible region of samples.
//
// thresholdDB is a dBFS level (0 = full scale, typical speech gating sits
// around -45). The scan runs forward for the first sample whose absolute
// value exceeds the threshold and backward for the last one, so the cost is
// O(n) worst case with early exit from both ends.
//
// The returned range is widened by padStart before the first audible sample
// and padEnd after the last, clamped to [0, len(samples)]. The result always
// satisfies 0 <= start <= end <= len(samples).
//
// A buffer with no sample above the threshold is returned whole, (0,
// len(samples)), not empty: downstream consumers expect every chunk to carry
// output, and a silence-only chunk still occupies its slot in the stream.
func NonSilentRange(samples []int16, thresholdDB float64, padStart, padEnd int) (start, end int) {
	amplitude := utils.DBFSToAmplitude(thresholdDB)

	first, last := -1, -1

	for i := range samples {
		if exceeds(samples[i], amplitude) {
			first = i
			break
		}
	}

	for i := len(samples) - 1; i >= 0; i-- {
		if exceeds(samples[i], amplitude) {
			last = i
			break
		}
	}

	if first < 0 || last < 0 {
		return 0, len(samples)
	}

	return max(first-padStart, 0), min(last+padEnd, len(samples))
}

// exceeds reports whether the absolute sample value is above amplitude.
// The widening to int avoids overflow on -32768.
func exceeds(v int16, amplitude float64) bool {
	a := int(v)
	if a < 0 {
		a = -a
	}

	return float64(a) > amplitude
}
