// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files in-process with github.com/hajimehoshi/go-mp3.
//
// It is the decoder behind the "native" backend, for hosts where ffmpeg is
// not installed. go-mp3 always yields stereo 16-bit PCM at the file's own
// sample rate, so the source is normally wrapped before remapping:
//
//	src, _ := mp3.Decoder{}.Decode(f)
//	raw, err := audio.Convert(src, audio.TargetFormat) // 44.1 kHz mono s16le
//
// Output is not bit-identical to ffmpeg's: the two use different resamplers
// and downmix rules.
package mp3
