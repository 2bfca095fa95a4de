// Thin base64 and unicode text conversion wrappers.
package codec

import (
	"encoding/base64"

	"github.com/igen-org/igen-go/util/strutil"
)

// Encode bytes as standard base64.
func Base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Encode string as standard base64.
func SBase64Encode(s string) string {
	return Base64Encode(strutil.UnsafeStr2Byt(s))
}

// Decode standard base64, malformed input yields an error.
func Base64Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// Decode standard base64 into a string.
func SBase64Decode(s string) (string, error) {
	b, err := Base64Decode(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Encode bytes as url-safe base64 without padding.
func Base64UrlEncode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode url-safe base64 without padding.
func Base64UrlDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
