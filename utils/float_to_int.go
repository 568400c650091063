// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized sample in [-1, 1] to signed 16-bit PCM.
// Scaling uses 32768 with round-to-nearest, and the result is clamped so
// that 1.0 lands on 32767 instead of wrapping.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * 32768.0)
	return int16(Clamp(v, math.MinInt16, math.MaxInt16))
}

// Int16ToFloat32 is the inverse scaling of Float32ToInt16.
func Int16ToFloat32(s int16) float32 {
	return float32(s) / 32768.0
}
