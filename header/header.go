// SPDX-License-Identifier: EPL-2.0

package header

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/merkelmarrow/embedded-drum-kit/remap"
)

// DefaultIdentifier names the array when the caller gives none.
const DefaultIdentifier = "audio_data"

// ValuesPerRow is the number of values on each line of the array body.
const ValuesPerRow = 12

const indent = "    "

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reserved holds C and C++ keywords plus the <cstdint> type names the header
// itself uses.
var reserved = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`
		alignas alignof and and_eq asm auto bitand bitor bool break case catch
		char char8_t char16_t char32_t class compl concept const consteval
		constexpr constinit const_cast continue co_await co_return co_yield
		decltype default delete do double dynamic_cast else enum explicit export
		extern false float for friend goto if inline int long mutable namespace
		new noexcept not not_eq nullptr operator or or_eq private protected
		public register reinterpret_cast requires restrict return short signed
		sizeof static static_assert static_cast struct switch template this
		thread_local throw true try typedef typeid typename union unsigned using
		virtual void volatile wchar_t while xor xor_eq
		_Alignas _Alignof _Atomic _Bool _Complex _Generic _Imaginary _Noreturn
		_Static_assert _Thread_local
		int8_t int16_t int32_t int64_t uint8_t uint16_t uint32_t uint64_t`) {
		reserved[w] = true
	}
}

// ValidateIdentifier reports whether ident can be used as a C/C++ name.
func ValidateIdentifier(ident string) error {
	if !identRe.MatchString(ident) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, ident)
	}
	if reserved[ident] {
		return fmt.Errorf("%w: %q is a reserved word", ErrInvalidIdentifier, ident)
	}
	return nil
}

// LengthName is the name of the element count constant for ident: the
// identifier upper-cased with a _LENGTH suffix.
func LengthName(ident string) string {
	return strings.ToUpper(ident) + "_LENGTH"
}

// IdentifierFromPath derives an identifier from a file name: the extension is
// dropped, letters are lower-cased, anything outside [a-z0-9_] becomes '_',
// a leading digit gets a '_' prefix and a reserved word a '_' suffix. An
// empty result falls back to DefaultIdentifier.
func IdentifierFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	ident := b.String()
	switch {
	case ident == "" || ident == ".":
		return DefaultIdentifier
	case ident[0] >= '0' && ident[0] <= '9':
		return "_" + ident
	case reserved[ident]:
		return ident + "_"
	}
	return ident
}

// Write emits buf as a single-inclusion C++ header declaring the array ident
// and its sizeof-derived length constant.
func Write(w io.Writer, buf remap.Buffer, ident string) error {
	if err := ValidateIdentifier(ident); err != nil {
		return err
	}
	if buf.Len() == 0 {
		return ErrNoSamples
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#pragma once\n#include <cstdint>\n\n")
	fmt.Fprintf(bw, "const %s %s[] = {\n", buf.Mode.ElementType(), ident)

	last := buf.Len() - 1
	scratch := make([]byte, 0, 8)
	for i, v := range buf.Values {
		col := i % ValuesPerRow
		if col == 0 {
			bw.WriteString(indent)
		}

		scratch = strconv.AppendInt(scratch[:0], int64(v), 10)
		bw.Write(scratch)

		switch {
		case i == last:
			bw.WriteByte('\n')
		case col == ValuesPerRow-1:
			bw.WriteString(",\n")
		default:
			bw.WriteString(", ")
		}

		// Blank line after every full row.
		if col == ValuesPerRow-1 {
			bw.WriteByte('\n')
		}
	}

	fmt.Fprintf(bw, "};\n")
	fmt.Fprintf(bw, "const uint32_t %s = sizeof(%s) / sizeof(%s[0]);\n", LengthName(ident), ident, ident)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WriteFile writes the header to path, replacing any existing file. Output
// goes to a temporary file in the same directory that is renamed into place,
// so a failed run leaves the previous artifact untouched.
func WriteFile(path string, buf remap.Buffer, ident string) (err error) {
	if err := ValidateIdentifier(ident); err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := Write(tmp, buf, ident); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
