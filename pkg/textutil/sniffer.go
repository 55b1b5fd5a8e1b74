package textutil

// BOM identifies a byte order mark at the start of a text file.
type BOM int

const (
	BOMNone BOM = iota
	BOMUTF8
	BOMUTF16LE
	BOMUTF16BE
	BOMUTF32LE
	BOMUTF32BE
)

// Label returns the encoding label a charset detector reports for the mark.
// UTF-16 and UTF-32 are reported without endianness; the decoder reads it
// from the mark itself.
func (b BOM) Label() string {
	switch b {
	case BOMUTF8:
		return "UTF-8-SIG"
	case BOMUTF16LE, BOMUTF16BE:
		return "UTF-16"
	case BOMUTF32LE, BOMUTF32BE:
		return "UTF-32"
	default:
		return ""
	}
}

func (b BOM) String() string {
	switch b {
	case BOMUTF8:
		return "utf-8"
	case BOMUTF16LE:
		return "utf-16le"
	case BOMUTF16BE:
		return "utf-16be"
	case BOMUTF32LE:
		return "utf-32le"
	case BOMUTF32BE:
		return "utf-32be"
	default:
		return "none"
	}
}

var (
	utf32LESig = []byte{0xff, 0xfe, 0x00, 0x00}
	utf32BESig = []byte{0x00, 0x00, 0xfe, 0xff}
	utf8Sig    = []byte{0xef, 0xbb, 0xbf}
	utf16LESig = []byte{0xff, 0xfe}
	utf16BESig = []byte{0xfe, 0xff}
)

// DetectBOM inspects the leading bytes of a file for a byte order mark.
// UTF-32LE is checked before UTF-16LE since their marks share a prefix.
func DetectBOM(header []byte) BOM {
	switch {
	case hasPrefix(header, utf32LESig):
		return BOMUTF32LE
	case hasPrefix(header, utf32BESig):
		return BOMUTF32BE
	case hasPrefix(header, utf8Sig):
		return BOMUTF8
	case hasPrefix(header, utf16LESig):
		return BOMUTF16LE
	case hasPrefix(header, utf16BESig):
		return BOMUTF16BE
	default:
		return BOMNone
	}
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := range prefix {
		if buf[i] != prefix[i] {
			return false
		}
	}
	return true
}
