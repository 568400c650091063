// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not an AIFF/AIFC stream
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates the COMM chunk could not be used
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
