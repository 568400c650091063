// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrNotPCM            = errors.New("only integer PCM WAV is supported")
	ErrNoSamples         = errors.New("no samples to write")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
