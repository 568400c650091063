// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/merkelmarrow/embedded-drum-kit/audio"
	"github.com/merkelmarrow/embedded-drum-kit/formats/aiff"
	"github.com/merkelmarrow/embedded-drum-kit/formats/flac"
	"github.com/merkelmarrow/embedded-drum-kit/formats/mp3"
	"github.com/merkelmarrow/embedded-drum-kit/formats/vorbis"
	"github.com/merkelmarrow/embedded-drum-kit/formats/wav"
)

// Native decodes in-process with the formats/* decoders, picked by file
// extension, then resamples and downmixes to the requested format.
type Native struct {
	Registry *audio.Registry
}

// NewNative returns a Native backend with every built-in container registered.
func NewNative() *Native {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aifc", aiff.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return &Native{Registry: reg}
}

func (n *Native) Decode(ctx context.Context, path string, format audio.Format) ([]byte, error) {
	if err := format.Validate(); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	ext := filepath.Ext(path)
	dec, ok := n.Registry.Get(ext)
	if !ok {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedContainer, ext)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer src.Close()

	raw, err := audio.Convert(&ctxSource{Source: src, ctx: ctx}, format)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return raw, nil
}

// ctxSource stops a decode between reads once ctx is done.
type ctxSource struct {
	audio.Source
	ctx context.Context
}

func (s *ctxSource) ReadSamples(dst []float32) (int, error) {
	if err := s.ctx.Err(); err != nil {
		return 0, err
	}
	return s.Source.ReadSamples(dst)
}
