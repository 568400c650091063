// SPDX-License-Identifier: EPL-2.0

// Package decode turns an audio file into raw PCM bytes.
//
// The Decoder interface is the only thing the rest of the converter sees, so
// the decoding mechanism can change without touching the remap and header
// stages. Two backends exist:
//
//   - FFmpeg runs the ffmpeg executable once per file:
//     ffmpeg -hide_banner -loglevel error -i IN -f s16le -acodec pcm_s16le -ar 44100 -ac 1 -
//     Standard output is the result; standard error is kept only for the
//     *DecodeError returned on a non-zero exit.
//   - Native decodes MP3, WAV, AIFF, FLAC and Ogg Vorbis in-process (see formats/)
//     and converts to the requested format with audio.Convert.
//
// Neither backend retries. A decode failure is final.
package decode
