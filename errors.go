// SPDX-License-Identifier: EPL-2.0

package drumkit

import (
	"errors"
	"fmt"

	"github.com/merkelmarrow/embedded-drum-kit/decode"
)

var (
	// ErrRequired marks a missing mandatory option.
	ErrRequired = errors.New("required")

	// ErrNoAudio means the decoder succeeded but produced zero samples.
	ErrNoAudio = errors.New("decoder produced no samples")

	// ErrSamePath means the output would overwrite the input.
	ErrSamePath = errors.New("output path equals input path")
)

// ArgumentError reports an unusable option. Nothing has been read or
// written when it is returned.
type ArgumentError struct {
	Name string
	Err  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %v", e.Name, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// IOError reports a failure writing one of the output artifacts.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Stage names the pipeline stage an error came from: "arguments", "decode",
// "write", or "" when err is nil or unrecognized.
func Stage(err error) string {
	var (
		argErr *ArgumentError
		decErr *decode.DecodeError
		ioErr  *IOError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &argErr):
		return "arguments"
	case errors.As(err, &decErr):
		return "decode"
	case errors.As(err, &ioErr):
		return "write"
	default:
		return ""
	}
}
