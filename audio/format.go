// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Encoding names a raw PCM sample layout, using ffmpeg's format names.
type Encoding string

const (
	// EncodingS16LE is signed 16-bit little-endian PCM.
	EncodingS16LE Encoding = "s16le"
)

// BytesPerSample of the encoding, or 0 when unknown.
func (e Encoding) BytesPerSample() int {
	switch e {
	case EncodingS16LE:
		return 2
	default:
		return 0
	}
}

// Format describes raw interleaved PCM.
type Format struct {
	SampleRate int
	Channels   int
	Encoding   Encoding
}

// TargetFormat is what every decoder backend must produce before remapping:
// 44.1 kHz, mono, signed 16-bit little-endian.
var TargetFormat = Format{
	SampleRate: 44100,
	Channels:   1,
	Encoding:   EncodingS16LE,
}

// Validate reports whether f can be produced by the decoder backends.
func (f Format) Validate() error {
	if f.SampleRate <= 0 || f.Channels <= 0 {
		return fmt.Errorf("%w: rate=%d channels=%d", ErrInvalidFormat, f.SampleRate, f.Channels)
	}
	if f.Encoding != EncodingS16LE {
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, f.Encoding)
	}
	return nil
}

// Duration of n interleaved samples in this format.
func (f Format) Duration(n int) time.Duration {
	if f.SampleRate <= 0 || f.Channels <= 0 {
		return 0
	}
	frames := n / f.Channels
	return time.Duration(frames) * time.Second / time.Duration(f.SampleRate)
}

func (f Format) String() string {
	return fmt.Sprintf("%s %dHz %dch", f.Encoding, f.SampleRate, f.Channels)
}
