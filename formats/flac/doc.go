// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files in-process with github.com/mewkiz/flac.
//
// Frames are parsed one at a time and interleaved into float32 samples scaled
// by the stream's bit depth (4 to 32 bits). Channel decorrelation and wasted
// bits are undone by the library before samples reach this package.
package flac
