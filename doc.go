// SPDX-License-Identifier: EPL-2.0

// Package drumkit converts audio files into C++ headers holding 12-bit sample
// arrays, for firmware that plays samples through a DAC and cannot decode MP3
// itself.
//
// # Pipeline
//
// A conversion is a straight line with no intermediate state:
//
//  1. decode: the input is decoded to signed 16-bit little-endian PCM,
//     44.1 kHz, mono (audio.TargetFormat) by a decode.Decoder. The default
//     backend runs ffmpeg; the native backend decodes MP3, WAV, AIFF, FLAC and
//     Ogg Vorbis in-process.
//  2. remap: every sample is scaled to 12 bits with remap.Centered
//     ([-2048, 2047], int16_t) or remap.Offset ([0, 4095], uint16_t).
//  3. emit: header.WriteFile renders the array, 12 values per row, followed
//     by a sizeof-derived <IDENT>_LENGTH constant.
//
// # Quick Start
//
//	res, err := drumkit.Convert(ctx, decode.FFmpeg{}, drumkit.Options{
//	    Input:      "samples/kick.mp3",
//	    Output:     "src/kick.hpp",
//	    Identifier: "kick",
//	    Mode:       remap.Centered,
//	})
//
// Running the same conversion twice produces byte-identical headers.
//
// # Errors
//
// Convert returns *ArgumentError before doing any work, *decode.DecodeError
// when decoding fails (no output is written then), and *IOError when an
// output file cannot be written. Stage maps an error to the stage name.
//
// See the subpackages for details on each stage.
package drumkit
