// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Sample libraries exported from macOS tools are often AIFF, so the native
// decoder backend accepts them next to MP3 and WAV. 16, 24 and 32-bit PCM
// are supported at any rate and channel count:
//
//	f, _ := os.Open("snare.aif")
//	src, err := aiff.Decoder{}.Decode(f)
package aiff
