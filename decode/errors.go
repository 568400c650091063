// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrDecoderNotFound means the external decoder binary is missing or not
	// executable.
	ErrDecoderNotFound = errors.New("decoder executable not found")

	// ErrUnsupportedContainer means no in-process decoder handles the file
	// extension.
	ErrUnsupportedContainer = errors.New("unsupported container")

	// ErrUnknownBackend is returned by New for an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown decoder backend")
)

// DecodeError reports a failed decode of Path. Stderr carries the decoder's
// diagnostic output when it produced any.
type DecodeError struct {
	Path   string
	Stderr string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode %s: %v", e.Path, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }
