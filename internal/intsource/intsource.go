// SPDX-License-Identifier: EPL-2.0

// Package intsource adapts the go-audio PCMBuffer decoders (wav, aiff) to
// audio.Source.
package intsource

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// ErrUnsupportedBitDepth is returned for integer PCM other than 16, 24 or 32 bit.
var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// PCMReader is the part of the go-audio decoders used here.
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source normalizes signed integer PCM to float32 in [-1, 1].
type Source struct {
	dec      PCMReader
	format   *goaudio.Format
	bitDepth int
	scale    float32
	buf      *goaudio.IntBuffer
	done     bool
}

func New(dec PCMReader, format *goaudio.Format, bitDepth int) (*Source, error) {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid PCM format: %+v", format)
	}

	return &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
		scale:    1 / float32(int64(1)<<(bitDepth-1)),
	}, nil
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Format:         s.format,
			Data:           make([]int, len(dst)),
			SourceBitDepth: s.bitDepth,
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	switch {
	case err == io.EOF, err == nil && n < len(dst):
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}
