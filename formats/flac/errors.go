// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacFile         = errors.New("not a valid FLAC stream")
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
	ErrChannelMismatch     = errors.New("frame channel count differs from stream info")
	ErrShortSubframe       = errors.New("subframe holds fewer samples than the block size")
)
