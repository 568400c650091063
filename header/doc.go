// SPDX-License-Identifier: EPL-2.0

// Package header renders remapped samples as a compilable C++ header.
//
// For the identifier "kick" in centered mode the output looks like:
//
//	#pragma once
//	#include <cstdint>
//
//	const int16_t kick[] = {
//	    0, -3, 12, 40, 97, 160, 201, 188, 121, 33, -52, -130,
//
//	    -171, -166
//	};
//	const uint32_t KICK_LENGTH = sizeof(kick) / sizeof(kick[0]);
//
// Offset mode uses uint16_t elements. The length constant is always the
// upper-cased identifier with a _LENGTH suffix and is derived with sizeof, so
// it cannot drift from the array.
package header
