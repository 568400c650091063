// SPDX-License-Identifier: EPL-2.0

package remap

import (
	"github.com/merkelmarrow/embedded-drum-kit/utils"
)

// Buffer is a remapped sample sequence. Values keeps the input order and
// length; every value lies inside Mode.Range().
type Buffer struct {
	Mode   Mode
	Values []int
}

// Apply remaps pcm with the given mode. Offset selects offset; any other
// value falls back to Centered.
func Apply(mode Mode, pcm []int16) Buffer {
	fn := centered
	if mode == Offset {
		fn = offset
	} else {
		mode = Centered
	}

	values := make([]int, len(pcm))
	for i, s := range pcm {
		values[i] = fn(s)
	}

	return Buffer{Mode: mode, Values: values}
}

// centered scales by 2048/32768 (s/16), truncating toward zero, then clamps
// to [-2048, 2047].
func centered(s int16) int {
	return utils.Clamp(int(s)/16, -2048, 2047)
}

// offset scales by 2047/32767 with floor division, adds the 2048 DC offset
// and clamps to [0, 4095].
func offset(s int16) int {
	return utils.Clamp(utils.FloorDiv(int(s)*2047, 32767)+2048, 0, 4095)
}

func (b Buffer) Len() int { return len(b.Values) }

// MinMax returns the smallest and largest value, or zeros when empty.
func (b Buffer) MinMax() (lo, hi int) {
	if len(b.Values) == 0 {
		return 0, 0
	}
	lo, hi = b.Values[0], b.Values[0]
	for _, v := range b.Values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// PCM16 expands the buffer back to signed 16-bit PCM, the way a 12-bit DAC
// would reproduce it. Used for the audition WAV.
func (b Buffer) PCM16() []int16 {
	bias := 0
	if b.Mode == Offset {
		bias = 2048
	}

	pcm := make([]int16, len(b.Values))
	for i, v := range b.Values {
		pcm[i] = int16((v - bias) * 16)
	}
	return pcm
}
