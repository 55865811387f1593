// Package encoding maps the encoding labels found in XML declarations to
// decoders from golang.org/x/text/encoding, so that description files
// written by older authoring tools in legacy code pages can still be
// tokenized as UTF-8.
package encoding

import (
	"fmt"
	"io"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var aliases = map[string]enc.Encoding{
	"utf8":           unicode.UTF8,
	"utf-8":          unicode.UTF8,
	"utf-16":         unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf-16le":       unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":       unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"euc-jp":         japanese.EUCJP,
	"shift_jis":      japanese.ShiftJIS,
	"shift-jis":      japanese.ShiftJIS,
	"shiftjis":       japanese.ShiftJIS,
	"cp932":          japanese.ShiftJIS,
	"iso-2022-jp":    japanese.ISO2022JP,
	"big5":           traditionalchinese.Big5,
	"euc-kr":         korean.EUCKR,
	"gbk":            simplifiedchinese.GBK,
	"gb18030":        simplifiedchinese.GB18030,
	"hz-gb2312":      simplifiedchinese.HZGB2312,
	"cp437":          charmap.CodePage437,
	"cp850":          charmap.CodePage850,
	"cp866":          charmap.CodePage866,
	"iso-8859-1":     charmap.Windows1252,
	"latin1":         charmap.Windows1252,
	"iso-8859-2":     charmap.ISO8859_2,
	"iso-8859-15":    charmap.ISO8859_15,
	"koi8-r":         charmap.KOI8R,
	"macintosh":      charmap.Macintosh,
	"windows-1250":   charmap.Windows1250,
	"windows-1251":   charmap.Windows1251,
	"windows-1252":   charmap.Windows1252,
	"windows1252":    charmap.Windows1252,
	"windows-1253":   charmap.Windows1253,
	"windows-1254":   charmap.Windows1254,
	"windows-1257":   charmap.Windows1257,
	"x-user-defined": charmap.XUserDefined,
}

// Load returns the encoding registered under name, or nil when the
// label is unknown. Labels are matched case-insensitively; anything not
// in the local alias table is looked up in the IANA registry.
func Load(name string) enc.Encoding {
	name = strings.ToLower(strings.TrimSpace(name))
	if e, ok := aliases[name]; ok {
		return e
	}
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil
	}
	return e
}

// CharsetReader has the signature expected by encoding/xml's
// Decoder.CharsetReader.
func CharsetReader(charset string, input io.Reader) (io.Reader, error) {
	e := Load(charset)
	if e == nil {
		return nil, fmt.Errorf("encoding %q not supported", charset)
	}
	return transform.NewReader(input, e.NewDecoder()), nil
}
