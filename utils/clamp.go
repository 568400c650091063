// SPDX-License-Identifier: EPL-2.0

package utils

import "cmp"

// Clamp limits v to the closed range [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// FloorDiv divides a by b rounding toward negative infinity.
// Go's / truncates toward zero, which differs for negative quotients.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
