// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type fakeOgg struct {
	rate, channels int
	data           []float32
	stalls         int // (0, nil) reads served before any data
}

func (f *fakeOgg) SampleRate() int { return f.rate }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if f.stalls > 0 {
		f.stalls--
		return 0, nil
	}
	if len(f.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeOgg{rate: 48000, channels: 2, data: []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, stalls: 3}}
	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Fatalf("format = %d Hz %d ch", src.SampleRate(), src.Channels())
	}

	// 5 is trimmed to 4 so a frame is never split.
	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
	}
	if dst[3] != 0.4 {
		t.Errorf("dst[3] = %v, want 0.4", dst[3])
	}

	n, err = src.ReadSamples(dst)
	if err != nil || n != 2 {
		t.Fatalf("second ReadSamples() = %d, %v", n, err)
	}
	if n, err = src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = %d, %v", n, err)
	}
}

func TestSource_NoProgress(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeOgg{rate: 8000, channels: 1, stalls: maxEmptyReads + 1, data: []float32{1}}}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("error = %v, want io.ErrNoProgress", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not Ogg Vorbis data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}
