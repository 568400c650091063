// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives shared by the decoder backends.
//
// # Raw PCM
//
// The remapping stage consumes signed 16-bit little-endian mono PCM at
// 44.1 kHz, described by TargetFormat. DecodeS16LE and EncodeS16LE convert
// between that byte layout and []int16 without changing sample order:
//
//	raw, _ := decoder.Decode(ctx, "kick.mp3", audio.TargetFormat)
//	samples := audio.DecodeS16LE(raw) // len(samples) == len(raw)/2
//
// # Streams
//
// In-process decoding works on a Source, a stream of interleaved float32
// samples in [-1, 1]. Container decoders under formats/ produce Sources,
// and two wrappers reshape them:
//
//	resampler := audio.NewResampler(src, 44100) // cubic interpolation
//	mono := audio.NewMonoMixer(resampler)      // average channels
//	pcm, err := audio.ReadAllInt16(mono)
//
// Convert chains the wrappers needed to reach a Format and returns raw bytes.
//
// # Format Registry
//
// A Registry maps file extensions to container decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("mp3", mp3.Decoder{})
//	dec, ok := registry.Get(".MP3") // keys are case and dot insensitive
//
// # Error Handling
//
// Sources return io.EOF, possibly together with the last samples, when the
// stream ends. Any other error aborts processing.
package audio
