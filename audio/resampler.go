// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/merkelmarrow/embedded-drum-kit/utils"
)

const readChunk = 4096

// Resampler converts src to another sample rate with Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, input frames
// pass through a one-pole low-pass first.
//
// For N input frames the output holds ceil(N * dstRate / srcRate) frames.
// Equal rates are an exact pass-through.
type Resampler struct {
	src      Source
	srcRate  int
	dstRate  int
	channels int

	// win holds source frames base-1 .. base+2; frames outside the real
	// stream repeat the nearest edge frame.
	win  [4][]float32
	base int
	real int // frames pulled from src so far
	out  int // output frames produced so far

	in     []float32
	inPos  int
	inLen  int
	srcEOF bool
	primed bool

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		srcRate:  src.SampleRate(),
		dstRate:  dstRate,
		channels: channels,
		in:       make([]float32, (readChunk/channels)*channels),
		lowpass:  src.SampleRate() > dstRate,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull copies the next source frame into frame. It returns false once the
// source is exhausted.
func (r *Resampler) pull(frame []float32) (bool, error) {
	for r.inPos >= r.inLen {
		if r.srcEOF {
			return false, nil
		}
		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	copy(frame, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowpass {
		if r.real == 0 {
			copy(r.state, frame)
		}
		for c := range frame {
			frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
			r.state[c] = frame[c]
		}
	}
	r.real++

	return true, nil
}

// fill loads win[i] from the source, or repeats win[i-1] past the end.
func (r *Resampler) fill(i int) error {
	ok, err := r.pull(r.win[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.win[i], r.win[i-1])
	}
	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.pull(r.win[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.win[0], r.win[1])
	for i := 2; i < 4; i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}
	r.primed = true
	return nil
}

// advance slides the window until win[1] holds source frame idx.
func (r *Resampler) advance(idx int) error {
	for r.base < idx {
		first := r.win[0]
		copy(r.win[:], r.win[1:])
		r.win[3] = first
		r.base++
		if err := r.fill(3); err != nil {
			return err
		}
	}
	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		// Source position out*srcRate/dstRate, kept in integers so the
		// frame count does not drift.
		num := r.out * r.srcRate
		idx := num / r.dstRate
		if err := r.advance(idx); err != nil {
			return written * r.channels, err
		}
		if r.base >= r.real {
			return written * r.channels, io.EOF
		}

		x := float32(num%r.dstRate) / float32(r.dstRate)
		off := written * r.channels
		for c := range r.channels {
			dst[off+c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}
