// SPDX-License-Identifier: EPL-2.0

// Command mp3tohdr converts an audio file into a C++ header holding a 12-bit
// sample array for DAC playback.
//
//	mp3tohdr [flags] <input> <output>
//
// Exit status is 0 on success, 2 for bad arguments and 1 when decoding or
// writing fails.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	drumkit "github.com/merkelmarrow/embedded-drum-kit"
	"github.com/merkelmarrow/embedded-drum-kit/decode"
	"github.com/merkelmarrow/embedded-drum-kit/header"
	"github.com/merkelmarrow/embedded-drum-kit/internal/config"
	"github.com/merkelmarrow/embedded-drum-kit/remap"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], config.Load(), os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, cfg config.Config, stderr io.Writer) int {
	fs := flag.NewFlagSet("mp3tohdr", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		ident   = fs.String("var", header.DefaultIdentifier, "C identifier of the generated array")
		backend = fs.String("decoder", cfg.Decoder, "decoder backend: "+strings.Join(decode.Backends(), ", "))
		ffmpeg  = fs.String("ffmpeg", cfg.FFmpegPath, "ffmpeg binary used by the ffmpeg decoder")
		timeout = fs.Duration("timeout", cfg.Timeout, "abort the conversion after this long (0 disables)")
		wavOut  = fs.String("wav", "", "also write the remapped samples as a 16-bit WAV for listening")
		verbose = fs.Bool("v", false, "debug logging")
		mode    remap.Mode
	)
	fs.Var(&mode, "mode", "sample mapping: centered ([-2048, 2047]) or offset ([0, 4095])")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: mp3tohdr [flags] <input> <output>")
		fs.PrintDefaults()
	}

	// Flags may appear before, between or after the positionals.
	var positional []string
	for rest := args; ; {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return exitOK
			}
			return exitUsage
		}
		if fs.NArg() == 0 {
			break
		}
		if used := len(rest) - fs.NArg(); used > 0 && rest[used-1] == "--" {
			positional = append(positional, fs.Args()...)
			break
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if len(positional) != 2 {
		fs.Usage()
		return exitUsage
	}
	input, output := positional[0], positional[1]

	if *timeout < 0 {
		logger.Error("invalid arguments", "flag", "timeout", "error", "must not be negative")
		return exitUsage
	}

	dec, err := decode.New(*backend, *ffmpeg)
	if err != nil {
		logger.Error("invalid arguments", "flag", "decoder", "error", err)
		return exitUsage
	}

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	logger.Debug("converting",
		"input", input,
		"output", output,
		"var", *ident,
		"mode", mode,
		"decoder", *backend,
		"timeout", *timeout,
	)

	start := time.Now()
	res, err := drumkit.Convert(ctx, dec, drumkit.Options{
		Input:       input,
		Output:      output,
		Identifier:  *ident,
		Mode:        mode,
		AuditionWAV: *wavOut,
	})
	if err != nil {
		stage := drumkit.Stage(err)
		logger.Error("conversion failed", "stage", stage, "error", err)
		if stage == "arguments" {
			return exitUsage
		}
		return exitError
	}

	logger.Info("wrote header",
		"output", output,
		"samples", res.Samples,
		"duration", res.Duration,
		"min", res.Min,
		"max", res.Max,
	)
	logger.Debug("done", "elapsed", time.Since(start))

	return exitOK
}
