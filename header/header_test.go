// SPDX-License-Identifier: EPL-2.0

package header

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/merkelmarrow/embedded-drum-kit/remap"
)

var (
	arrayRe  = regexp.MustCompile(`(?s)const (u?int16_t) (\w+)\[\] = \{\n(.*?)\};\n`)
	lengthRe = regexp.MustCompile(`const uint32_t (\w+) = sizeof\((\w+)\) / sizeof\((\w+)\[0\]\);\n$`)
)

// parse reads back an emitted header and returns the element type,
// identifier, length constant name and values.
func parse(t *testing.T, src string) (elemType, ident, lengthName string, values []int) {
	t.Helper()

	m := arrayRe.FindStringSubmatch(src)
	if m == nil {
		t.Fatalf("no array declaration in:\n%s", src)
	}
	elemType, ident = m[1], m[2]

	for _, field := range strings.Split(m[3], ",") {
		field = strings.TrimSpace(field)
		v, err := strconv.Atoi(field)
		if err != nil {
			t.Fatalf("bad element %q: %v", field, err)
		}
		values = append(values, v)
	}

	l := lengthRe.FindStringSubmatch(src)
	if l == nil {
		t.Fatalf("no length constant in:\n%s", src)
	}
	if l[2] != ident || l[3] != ident {
		t.Errorf("length constant refers to %s/%s, want %s", l[2], l[3], ident)
	}
	return elemType, ident, l[1], values
}

func TestWrite_ExactLayout(t *testing.T) {
	t.Parallel()

	values := make([]int, 14)
	for i := range values {
		values[i] = i - 2
	}
	var out bytes.Buffer
	if err := Write(&out, remap.Buffer{Mode: remap.Centered, Values: values}, "kick"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "#pragma once\n" +
		"#include <cstdint>\n" +
		"\n" +
		"const int16_t kick[] = {\n" +
		"    -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9,\n" +
		"\n" +
		"    10, 11\n" +
		"};\n" +
		"const uint32_t KICK_LENGTH = sizeof(kick) / sizeof(kick[0]);\n"

	if out.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestWrite_FullLastRow(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	buf := remap.Buffer{Mode: remap.Offset, Values: make([]int, 24)}
	if err := Write(&out, buf, "snare"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	body := out.String()
	if !strings.Contains(body, "const uint16_t snare[] = {\n") {
		t.Errorf("offset mode must use uint16_t:\n%s", body)
	}
	if !strings.Contains(body, "    0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0\n\n};\n") {
		t.Errorf("last full row layout wrong:\n%s", body)
	}
	if strings.Count(body, ",\n\n") != 1 {
		t.Errorf("expected one row separator:\n%s", body)
	}
}

func TestWrite_ParsesBack(t *testing.T) {
	t.Parallel()

	pcm := make([]int16, 1000)
	for i := range pcm {
		pcm[i] = int16(math.Sin(float64(i)*0.05) * 32767)
	}

	for _, mode := range remap.Modes() {
		buf := remap.Apply(mode, pcm)

		var out bytes.Buffer
		if err := Write(&out, buf, DefaultIdentifier); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		elemType, ident, lengthName, values := parse(t, out.String())
		if elemType != mode.ElementType() || ident != DefaultIdentifier || lengthName != "AUDIO_DATA_LENGTH" {
			t.Errorf("%v: got %s %s %s", mode, elemType, ident, lengthName)
		}
		if len(values) != buf.Len() {
			t.Fatalf("%v: parsed %d values, want %d", mode, len(values), buf.Len())
		}
		for i := range values {
			if values[i] != buf.Values[i] {
				t.Fatalf("%v: value %d = %d, want %d", mode, i, values[i], buf.Values[i])
			}
		}

		for _, line := range strings.Split(out.String(), "\n") {
			if strings.HasPrefix(line, indent) && strings.Count(strings.TrimSuffix(line, ","), ",")+1 > ValuesPerRow {
				t.Errorf("row has more than %d values: %q", ValuesPerRow, line)
			}
		}
	}
}

func TestWrite_Rejects(t *testing.T) {
	t.Parallel()

	buf := remap.Buffer{Values: []int{1}}
	for _, ident := range []string{"", "1abc", "audio-data", "a b", "ünicode", "int", "class", "delete", "uint16_t", "_Bool"} {
		if err := Write(&bytes.Buffer{}, buf, ident); !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("Write(ident=%q) error = %v, want ErrInvalidIdentifier", ident, err)
		}
	}
	for _, ident := range []string{"Int", "classic", "kick_", "_808"} {
		if err := ValidateIdentifier(ident); err != nil {
			t.Errorf("ValidateIdentifier(%q) = %v, want nil", ident, err)
		}
	}
	if err := Write(&bytes.Buffer{}, remap.Buffer{}, "x"); !errors.Is(err, ErrNoSamples) {
		t.Errorf("Write(empty) error = %v, want ErrNoSamples", err)
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "kick.hpp")
	if err := os.WriteFile(path, []byte(strings.Repeat("stale\n", 1000)), 0o644); err != nil {
		t.Fatal(err)
	}

	buf := remap.Buffer{Mode: remap.Centered, Values: []int{1, 2, 3}}
	if err := WriteFile(path, buf, "kick"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var want bytes.Buffer
	Write(&want, buf, "kick")
	if !bytes.Equal(got, want.Bytes()) {
		t.Errorf("file content = %q, want %q", got, want.Bytes())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope", "kick.hpp")
	err := WriteFile(path, remap.Buffer{Values: []int{1}}, "kick")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("WriteFile() error = %v, want not-exist", err)
	}
}

func TestWriteFile_FailedWriteKeepsOldFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "kick.hpp")
	if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, remap.Buffer{}, "kick"); !errors.Is(err, ErrNoSamples) {
		t.Fatalf("WriteFile() error = %v, want ErrNoSamples", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "previous" {
		t.Errorf("file was modified: %q", got)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestLengthName(t *testing.T) {
	t.Parallel()

	if got := LengthName("closed_hi_hat"); got != "CLOSED_HI_HAT_LENGTH" {
		t.Errorf("LengthName() = %q", got)
	}
}

func TestIdentifierFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"kick.mp3", "kick"},
		{"samples/Snare-Tight.wav", "snare_tight"},
		{"808 cowbell.ogg", "_808_cowbell"},
		{"/tmp/hat.open.aiff", "hat_open"},
		{".mp3", DefaultIdentifier},
		{"Delete.wav", "delete_"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got := IdentifierFromPath(tt.path)
			if got != tt.want {
				t.Errorf("IdentifierFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
			if err := ValidateIdentifier(got); err != nil {
				t.Errorf("derived identifier is invalid: %v", err)
			}
		})
	}
}
