// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files through
// github.com/go-audio/wav.
//
// Decoder accepts 16, 24 and 32-bit PCM at any rate and channel count and
// yields an audio.Source. Write produces the mono 16-bit audition file the
// converter can emit next to a header, so the remapped samples can be
// listened to before they are flashed:
//
//	f, _ := os.Create("kick_preview.wav")
//	defer f.Close()
//	err := wav.Write(f, 44100, buf.PCM16())
package wav
