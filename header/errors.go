// SPDX-License-Identifier: EPL-2.0

package header

import "errors"

var (
	ErrInvalidIdentifier = errors.New("identifier is not a valid C identifier")
	ErrNoSamples         = errors.New("no samples to emit")
)
