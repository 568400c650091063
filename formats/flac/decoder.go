// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
	"github.com/merkelmarrow/embedded-drum-kit/audio"
)

// frameParser is the part of goflac.Stream used here, narrowed for tests
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	parser     frameParser
	sampleRate int
	channels   int
	scale      float32

	buf     []float32
	pending []float32
	done    bool
}

func newSource(p frameParser, info *meta.StreamInfo) (*source, error) {
	if info == nil || info.SampleRate == 0 || info.NChannels == 0 {
		return nil, ErrNotFlacFile
	}

	bits := int(info.BitsPerSample)
	if bits < 4 || bits > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	return &source{
		parser:     p,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      1 / float32(int64(1)<<(bits-1)),
	}, nil
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) < s.channels {
		return 0, audio.ErrInvalidDstSize
	}
	dst = dst[:len(dst)/s.channels*s.channels]

	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			if err := s.next(); err != nil {
				if errors.Is(err, io.EOF) {
					s.done = true
					break
				}
				return n, fmt.Errorf("decoding flac frame: %w", err)
			}
			continue
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if s.done && len(s.pending) == 0 {
		return n, io.EOF
	}
	return n, nil
}

// next parses one frame and interleaves it into pending.
func (s *source) next() error {
	f, err := s.parser.ParseNext()
	if err != nil {
		return err
	}
	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: %d != %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	block := int(f.BlockSize)
	for _, sub := range f.Subframes {
		if len(sub.Samples) < block {
			return ErrShortSubframe
		}
	}

	s.buf = s.buf[:0]
	for i := range block {
		for _, sub := range f.Subframes {
			s.buf = append(s.buf, float32(sub.Samples[i])*s.scale)
		}
	}
	s.pending = s.buf

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	src, err := newSource(stream, stream.Info)
	if err != nil {
		return nil, err
	}

	return src, nil
}
