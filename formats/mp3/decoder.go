// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/merkelmarrow/embedded-drum-kit/audio"
	"github.com/merkelmarrow/embedded-drum-kit/utils"
)

// go-mp3 always produces interleaved stereo, signed 16-bit little-endian.
const channels = 2

// mp3Reader is the part of gomp3.Decoder used here, narrowed for tests
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec  mp3Reader
	raw  []byte
	done bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if s.done {
		return 0, io.EOF
	}

	need := len(dst) * 2
	if cap(s.raw) < need {
		s.raw = make([]byte, need)
	}
	s.raw = s.raw[:need]

	n, err := io.ReadFull(s.dec, s.raw)
	pcm := audio.DecodeS16LE(s.raw[:n])
	for i, v := range pcm {
		dst[i] = utils.Int16ToFloat32(v)
	}

	switch {
	case err == nil:
		return len(pcm), nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		return len(pcm), io.EOF
	default:
		return len(pcm), fmt.Errorf("decoding mp3 frame: %w", err)
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{dec: dec}, nil
}
