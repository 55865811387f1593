package s11n

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// isInCharacterRange checks if rune is in XML Character Range
func isInCharacterRange(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

var (
	escQuot = []byte("&#34;") // shorter than "&quot;"
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escTab  = []byte("&#9;")
	escNl   = []byte("&#10;")
	escCr   = []byte("&#13;")
	escFFFD = []byte("\uFFFD") // Unicode replacement character
)

// EscapeAttrValue writes s to w escaped for use inside a double quoted
// attribute value. Tabs and line breaks are written as character
// references so that attribute value normalization on the reading side
// gives back the original string.
func EscapeAttrValue(w io.Writer, s string) error {
	var esc []byte
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		switch r {
		case '"':
			esc = escQuot
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		case '\n':
			esc = escNl
		case '\r':
			esc = escCr
		case '\t':
			esc = escTab
		default:
			if !isInCharacterRange(r) || (r == utf8.RuneError && width == 1) {
				esc = escFFFD
				break
			}
			if r >= 0x80 && r < 0xA0 {
				// C1 controls are legal but invisible; keep them readable
				esc = []byte(fmt.Sprintf("&#x%X;", r))
				break
			}
			continue
		}

		if _, err := io.WriteString(w, s[last:i-width]); err != nil {
			return err
		}
		if _, err := w.Write(esc); err != nil {
			return err
		}
		last = i
	}

	if _, err := io.WriteString(w, s[last:]); err != nil {
		return err
	}
	return nil
}
