// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/merkelmarrow/embedded-drum-kit/utils"
)

// ReadAllInt16 drains src and returns every sample converted to 16-bit PCM,
// in stream order. Sources are read in chunks of readChunk values.
func ReadAllInt16(src Source) ([]int16, error) {
	chunk := max(readChunk/src.Channels(), 1) * src.Channels()
	buf := make([]float32, chunk)
	var pcm []int16

	for {
		n, err := src.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(x))
		}

		if err == io.EOF {
			return pcm, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}

// Convert resamples and downmixes src so that it matches f, then returns
// the result as raw PCM bytes in f's encoding.
func Convert(src Source, f Format) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var s Source = src
	if s.SampleRate() != f.SampleRate {
		s = NewResampler(s, f.SampleRate)
	}
	if f.Channels == 1 {
		s = NewMonoMixer(s)
	} else if s.Channels() != f.Channels {
		return nil, fmt.Errorf("%w: cannot map %d channels to %d", ErrInvalidFormat, s.Channels(), f.Channels)
	}

	pcm, err := ReadAllInt16(s)
	if err != nil {
		return nil, err
	}

	return EncodeS16LE(pcm), nil
}
