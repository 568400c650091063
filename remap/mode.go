// SPDX-License-Identifier: EPL-2.0

package remap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for an unrecognized name.
var ErrUnknownMode = errors.New("unknown remap mode")

// Mode selects how 16-bit PCM is mapped onto the 12-bit output range.
type Mode int

const (
	// Centered keeps the waveform signed and centered on zero: [-2048, 2047].
	Centered Mode = iota
	// Offset shifts the waveform into [0, 4095] for an unsigned 12-bit DAC.
	Offset
)

// Modes lists every supported mode.
func Modes() []Mode { return []Mode{Centered, Offset} }

func (m Mode) String() string {
	switch m {
	case Centered:
		return "centered"
	case Offset:
		return "offset"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Range returns the inclusive bounds of the mode's output values.
func (m Mode) Range() (lo, hi int) {
	if m == Offset {
		return 0, 4095
	}
	return -2048, 2047
}

// ElementType is the C type that stores one value of this mode.
func (m Mode) ElementType() string {
	if m == Offset {
		return "uint16_t"
	}
	return "int16_t"
}

// ParseMode accepts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
