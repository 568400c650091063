// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"context"
	"fmt"

	"github.com/merkelmarrow/embedded-drum-kit/audio"
)

// Decoder turns an audio file into raw interleaved PCM in the requested
// format. Failures are reported as *DecodeError.
type Decoder interface {
	Decode(ctx context.Context, path string, format audio.Format) ([]byte, error)
}

// Backend names accepted by New.
const (
	BackendFFmpeg = "ffmpeg"
	BackendNative = "native"
)

// Backends lists the names accepted by New.
func Backends() []string {
	return []string{BackendFFmpeg, BackendNative}
}

// New returns the backend called name. ffmpegBinary is only used by the
// ffmpeg backend; empty means "ffmpeg" from PATH.
func New(name, ffmpegBinary string) (Decoder, error) {
	switch name {
	case BackendFFmpeg:
		return FFmpeg{Binary: ffmpegBinary}, nil
	case BackendNative:
		return NewNative(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
