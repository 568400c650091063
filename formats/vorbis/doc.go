// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Samples come out of the library already as float32, interleaved, at the
// stream's own rate and channel count.
package vorbis
