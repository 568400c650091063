// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"

	"github.com/merkelmarrow/embedded-drum-kit/audio"
)

const defaultFFmpeg = "ffmpeg"

// FFmpeg decodes by running the ffmpeg executable and capturing its stdout.
type FFmpeg struct {
	// Binary is the executable name or path. Empty means "ffmpeg".
	Binary string
}

func (f FFmpeg) binary() string {
	if f.Binary == "" {
		return defaultFFmpeg
	}
	return f.Binary
}

// Args builds the ffmpeg command line for decoding path into format,
// written to stdout with informational logging suppressed.
func (f FFmpeg) Args(path string, format audio.Format) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", path,
		"-f", string(format.Encoding),
		"-acodec", "pcm_" + string(format.Encoding),
		"-ar", strconv.Itoa(format.SampleRate),
		"-ac", strconv.Itoa(format.Channels),
		"-",
	}
}

// Decode runs ffmpeg once. A non-zero exit, a missing executable or a
// cancelled ctx all produce a *DecodeError; stdout is discarded then.
func (f FFmpeg) Decode(ctx context.Context, path string, format audio.Format) ([]byte, error) {
	if err := format.Validate(); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	bin := f.binary()
	cmd := exec.CommandContext(ctx, bin, f.Args(path, format)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		switch {
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
			return nil, &DecodeError{Path: path, Err: fmt.Errorf("%w: %s: %w", ErrDecoderNotFound, bin, err)}
		case ctx.Err() != nil:
			return nil, &DecodeError{Path: path, Err: ctx.Err()}
		default:
			return nil, &DecodeError{Path: path, Stderr: strings.TrimSpace(stderr.String()), Err: err}
		}
	}

	return stdout.Bytes(), nil
}
