// SPDX-License-Identifier: EPL-2.0

// Package remap reduces signed 16-bit PCM to the 12-bit range a DAC takes.
//
// Two policies exist, selected with Mode:
//
//	Centered  s/16, truncated toward zero, clamped to [-2048, 2047]
//	Offset    floor(s*2047/32767) + 2048, clamped to [0, 4095]
//
// Centered keeps the sign so the firmware can mix voices before adding its
// own bias. Offset is the direct input format of an MCP4922-style unsigned
// DAC. Both are pure integer functions: the same input always gives the same
// output bit for bit.
package remap
