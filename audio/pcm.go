// SPDX-License-Identifier: EPL-2.0

package audio

import "encoding/binary"

// DecodeS16LE reinterprets raw little-endian bytes as int16 samples.
// The sample count is len(b)/2; a trailing odd byte is dropped.
func DecodeS16LE(b []byte) []int16 {
	samples := make([]int16, len(b)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	return samples
}

// EncodeS16LE is the inverse of DecodeS16LE.
func EncodeS16LE(samples []int16) []byte {
	b := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s))
	}
	return b
}
