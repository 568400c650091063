// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
	"github.com/merkelmarrow/embedded-drum-kit/audio"
)

// oggReader is the part of oggvorbis.Reader used here, narrowed for tests
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read decodes interleaved samples into p and returns the number of
	// values written.
	Read(p []float32) (int, error)
}

// maxEmptyReads bounds consecutive (0, nil) reads, which oggvorbis returns
// while it consumes header-only pages.
const maxEmptyReads = 64

type source struct {
	dec oggReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.dec.Channels()
	if whole == 0 {
		return 0, nil
	}

	for range maxEmptyReads {
		n, err := s.dec.Read(dst[:whole])
		if err != nil && err != io.EOF {
			return n, fmt.Errorf("%w", err)
		}
		if n > 0 || err == io.EOF {
			return n, err
		}
	}

	return 0, io.ErrNoProgress
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{dec: dec}, nil
}
