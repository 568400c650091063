// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrUnsupportedEncoding = errors.New("unsupported sample encoding")
	ErrInvalidFormat       = errors.New("invalid audio format")
)
