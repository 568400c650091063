// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/merkelmarrow/embedded-drum-kit/audio"
)

// fakeFFmpeg writes an executable shell script standing in for ffmpeg.
func fakeFFmpeg(t *testing.T, body string) string {
	t.Helper()

	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh available")
	}

	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFFmpeg_Args(t *testing.T) {
	t.Parallel()

	got := FFmpeg{}.Args("kick.mp3", audio.TargetFormat)
	want := []string{
		"-hide_banner", "-loglevel", "error",
		"-i", "kick.mp3",
		"-f", "s16le", "-acodec", "pcm_s16le",
		"-ar", "44100", "-ac", "1",
		"-",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}

func TestFFmpeg_PassesArgs(t *testing.T) {
	t.Parallel()

	bin := fakeFFmpeg(t, `printf '%s\n' "$@"`)
	out, err := FFmpeg{Binary: bin}.Decode(context.Background(), "in put.mp3", audio.TargetFormat)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := strings.Join(FFmpeg{}.Args("in put.mp3", audio.TargetFormat), "\n") + "\n"
	if string(out) != want {
		t.Errorf("decoder saw args %q, want %q", out, want)
	}
}

func TestFFmpeg_CapturesStdout(t *testing.T) {
	t.Parallel()

	bin := fakeFFmpeg(t, `printf '\001\000\377\177'; echo "progress noise" >&2`)
	out, err := FFmpeg{Binary: bin}.Decode(context.Background(), "a.mp3", audio.TargetFormat)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := audio.DecodeS16LE(out); !slices.Equal(got, []int16{1, 32767}) {
		t.Errorf("samples = %v, want [1 32767]", got)
	}
}

func TestFFmpeg_NonZeroExit(t *testing.T) {
	t.Parallel()

	bin := fakeFFmpeg(t, `printf 'partial'; echo "a.mp3: Invalid data found when processing input" >&2; exit 1`)
	out, err := FFmpeg{Binary: bin}.Decode(context.Background(), "a.mp3", audio.TargetFormat)
	if out != nil {
		t.Errorf("output = %q, want nil on failure", out)
	}

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error = %T %v, want *DecodeError", err, err)
	}
	if decErr.Path != "a.mp3" {
		t.Errorf("Path = %q", decErr.Path)
	}
	if !strings.Contains(decErr.Stderr, "Invalid data found") {
		t.Errorf("Stderr = %q, want decoder diagnostics", decErr.Stderr)
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Errorf("error does not carry exit status 1: %v", err)
	}
}

func TestFFmpeg_NotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	notExec := filepath.Join(dir, "not-exec")
	if err := os.WriteFile(notExec, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, bin := range []string{filepath.Join(dir, "missing"), "ffmpeg-does-not-exist-anywhere", notExec} {
		_, err := FFmpeg{Binary: bin}.Decode(context.Background(), "a.mp3", audio.TargetFormat)

		var decErr *DecodeError
		if !errors.As(err, &decErr) || !errors.Is(err, ErrDecoderNotFound) {
			t.Errorf("Binary %q: error = %v, want DecodeError wrapping ErrDecoderNotFound", bin, err)
		}
	}
}

func TestFFmpeg_Timeout(t *testing.T) {
	t.Parallel()

	bin := fakeFFmpeg(t, `exec sleep 5`)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := FFmpeg{Binary: bin}.Decode(ctx, "a.mp3", audio.TargetFormat)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
	if time.Since(start) > 3*time.Second {
		t.Error("decoder was not killed on timeout")
	}
}

func TestFFmpeg_RejectsFormat(t *testing.T) {
	t.Parallel()

	f := audio.TargetFormat
	f.Encoding = "f32le"
	_, err := FFmpeg{Binary: "unused"}.Decode(context.Background(), "a.mp3", f)
	if !errors.Is(err, audio.ErrUnsupportedEncoding) {
		t.Errorf("error = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestDecodeError_Message(t *testing.T) {
	t.Parallel()

	err := &DecodeError{Path: "x.mp3", Stderr: "bad header", Err: errors.New("exit status 1")}
	if got, want := err.Error(), "decode x.mp3: exit status 1: bad header"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err.Stderr = ""
	if got, want := err.Error(), "decode x.mp3: exit status 1"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	d, err := New(BackendFFmpeg, "/opt/ffmpeg")
	if err != nil {
		t.Fatalf("New(ffmpeg) error = %v", err)
	}
	if ff, ok := d.(FFmpeg); !ok || ff.Binary != "/opt/ffmpeg" {
		t.Errorf("New(ffmpeg) = %#v", d)
	}

	if d, err := New(BackendNative, ""); err != nil || d == nil {
		t.Errorf("New(native) = %v, %v", d, err)
	}

	if _, err := New("sox", ""); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("New(sox) error = %v, want ErrUnknownBackend", err)
	}
}
