// SPDX-License-Identifier: MIT

package utils

import "math"

// Int16Max is the largest positive value of a signed 16-bit sample.
const Int16Max = 32767

// DBFSToAmplitude converts a dBFS level to an absolute amplitude on the
// 16-bit sample scale. 0 dBFS maps to Int16Max, negative values map below it.
func DBFSToAmplitude(db float64) float64 {
	return Int16Max * math.Pow(10, db/20)
}
