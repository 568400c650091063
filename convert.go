// SPDX-License-Identifier: EPL-2.0

package drumkit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/merkelmarrow/embedded-drum-kit/audio"
	"github.com/merkelmarrow/embedded-drum-kit/decode"
	"github.com/merkelmarrow/embedded-drum-kit/formats/wav"
	"github.com/merkelmarrow/embedded-drum-kit/header"
	"github.com/merkelmarrow/embedded-drum-kit/remap"
)

// Options configures one conversion.
type Options struct {
	// Input is the audio file handed to the decoder.
	Input string
	// Output is the header file to create or overwrite.
	Output string
	// Identifier names the array. Empty means header.DefaultIdentifier.
	Identifier string
	// Mode selects the remap policy.
	Mode remap.Mode
	// AuditionWAV, when set, also writes the remapped samples expanded back
	// to 16-bit PCM as a WAV file.
	AuditionWAV string
}

func (o Options) validate() (Options, error) {
	if o.Identifier == "" {
		o.Identifier = header.DefaultIdentifier
	}

	switch {
	case o.Input == "":
		return o, &ArgumentError{Name: "input", Err: ErrRequired}
	case o.Output == "":
		return o, &ArgumentError{Name: "output", Err: ErrRequired}
	case filepath.Clean(o.Input) == filepath.Clean(o.Output):
		return o, &ArgumentError{Name: "output", Err: ErrSamePath}
	case !slices.Contains(remap.Modes(), o.Mode):
		return o, &ArgumentError{Name: "mode", Err: fmt.Errorf("%w: %v", remap.ErrUnknownMode, o.Mode)}
	}

	if err := header.ValidateIdentifier(o.Identifier); err != nil {
		return o, &ArgumentError{Name: "identifier", Err: err}
	}

	return o, nil
}

// Result summarizes a finished conversion.
type Result struct {
	Samples  int
	Min      int
	Max      int
	Duration time.Duration
}

// Convert runs the whole pipeline once: decode Input to 44.1 kHz mono
// s16le with dec, remap with Mode, and write the header to Output.
//
// Errors are *ArgumentError, *decode.DecodeError or *IOError depending on the
// failing stage. The output file is only touched after a successful decode.
func Convert(ctx context.Context, dec decode.Decoder, opts Options) (*Result, error) {
	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}

	raw, err := dec.Decode(ctx, opts.Input, audio.TargetFormat)
	if err != nil {
		var decErr *decode.DecodeError
		if !errors.As(err, &decErr) {
			err = &decode.DecodeError{Path: opts.Input, Err: err}
		}
		return nil, err
	}

	pcm := audio.DecodeS16LE(raw)
	if len(pcm) == 0 {
		return nil, &decode.DecodeError{Path: opts.Input, Err: ErrNoAudio}
	}

	buf := remap.Apply(opts.Mode, pcm)

	if err := header.WriteFile(opts.Output, buf, opts.Identifier); err != nil {
		return nil, &IOError{Path: opts.Output, Err: err}
	}

	if opts.AuditionWAV != "" {
		if err := writeAudition(opts.AuditionWAV, buf); err != nil {
			return nil, &IOError{Path: opts.AuditionWAV, Err: err}
		}
	}

	lo, hi := buf.MinMax()
	return &Result{
		Samples:  buf.Len(),
		Min:      lo,
		Max:      hi,
		Duration: audio.TargetFormat.Duration(buf.Len()),
	}, nil
}

func writeAudition(path string, buf remap.Buffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	return wav.Write(f, audio.TargetFormat.SampleRate, buf.PCM16())
}
