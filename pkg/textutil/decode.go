// Package textutil resolves encoding labels and turns raw file contents into
// decoded text lines.
package textutil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when detection produces no label.
const DefaultEncoding = "utf-8"

// ErrUnknownEncoding is returned by Lookup for labels no decoder exists for.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Labels whose meaning depends on a byte order mark. The WHATWG index maps
// bare "utf-16" to little-endian without consuming the mark, which would
// leave U+FEFF on the first line.
var bomAware = map[string]encoding.Encoding{
	"utf-8-sig": unicode.UTF8BOM,
	"utf-16":    unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-32":    utf32.UTF32(utf32.LittleEndian, utf32.UseBOM),
	"utf-32le":  utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"utf-32be":  utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
}

// Spellings some detectors emit that neither index knows.
var aliases = map[string]string{
	"gb-18030":  "gb18030",
	"utf8":      "utf-8",
	"macroman":  "macintosh",
	"mac_roman": "macintosh",
}

// Lookup resolves an encoding label. WHATWG labels are tried first, then
// IANA and MIME names. Labels are case-insensitive; visual-order suffixes
// such as "_rtl" are dropped. Labels that only map to the WHATWG replacement
// encoding (iso-2022-kr, iso-2022-cn) are unknown: it decodes a whole file
// to a single U+FFFD.
func Lookup(label string) (encoding.Encoding, error) {
	name := normalizeLabel(label)
	if name == "" {
		return nil, fmt.Errorf("%w: empty label", ErrUnknownEncoding)
	}

	if enc, ok := bomAware[name]; ok {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil && decodable(enc) {
		return enc, nil
	}
	for _, index := range []*ianaindex.Index{ianaindex.IANA, ianaindex.MIME} {
		enc, err := index.Encoding(name)
		if err == nil && decodable(enc) {
			return enc, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
}

func decodable(enc encoding.Encoding) bool {
	return enc != nil && enc != encoding.Replacement
}

func normalizeLabel(label string) string {
	name := strings.ToLower(strings.TrimSpace(label))
	name = strings.TrimSuffix(name, "_rtl")
	name = strings.TrimSuffix(name, "_ltr")
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

// NewDecoder wraps r so that reads return UTF-8 text decoded from enc.
// Byte sequences enc cannot decode come out as U+FFFD instead of failing.
func NewDecoder(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}
