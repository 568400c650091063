// SPDX-License-Identifier: EPL-2.0

// Package config reads the converter's defaults from the environment.
// Command line flags override every value loaded here.
package config

import (
	"os"
	"time"
)

// Config holds the environment-provided defaults.
type Config struct {
	FFmpegPath string        // ffmpeg binary, looked up in PATH when bare
	Decoder    string        // backend name: ffmpeg or native
	Timeout    time.Duration // per-conversion limit, 0 for none
}

// Load reads configuration from environment variables with sane defaults.
// Unparsable values fall back to the default.
func Load() Config {
	return Config{
		FFmpegPath: envStr("DRUMKIT_FFMPEG", "ffmpeg"),
		Decoder:    envStr("DRUMKIT_DECODER", "ffmpeg"),
		Timeout:    envDuration("DRUMKIT_TIMEOUT", 0),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return fallback
}
