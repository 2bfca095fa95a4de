package codec

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Convert UTF-16 bytes to a UTF-8 string.
//
// A BOM selects the byte order, little-endian is assumed without one.
func Utf16ToUtf8(b []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Convert a UTF-8 string to little-endian UTF-16 bytes without BOM.
func Utf8ToUtf16(s string) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	out, _, err := transform.Bytes(enc, []byte(s))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Strip any leading BOM and decode b to UTF-8, regardless of source unicode flavour.
func DecodeUnicode(b []byte) (string, error) {
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
