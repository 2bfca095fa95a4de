// Json parsing and serialization backed by jsoniter.
package json

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/igen-org/igen-go/util/strutil"
)

var (
	config = jsoniter.Config{EscapeHTML: true}.Froze()
)

// Parse json bytes.
func ParseJson(body []byte, ptr any) error {
	return config.Unmarshal(body, ptr)
}

// Parse json bytes.
func ParseJsonAs[T any](body []byte) (T, error) {
	var t T
	return t, ParseJson(body, &t)
}

// Parse json string.
func SParseJson(body string, ptr any) error {
	return ParseJson(strutil.UnsafeStr2Byt(body), ptr)
}

// Parse json string.
func SParseJsonAs[T any](body string) (T, error) {
	var t T
	return t, SParseJson(body, &t)
}

// Write json as bytes.
func WriteJson(body any) ([]byte, error) {
	return config.Marshal(body)
}

// Write json as string.
func SWriteJson(body any) (string, error) {
	if v, ok := body.(string); ok {
		return v, nil
	}
	buf, err := WriteJson(body)
	if err != nil {
		return "", err
	}
	return strutil.UnsafeByt2Str(buf), nil
}

// Write json as string, serialization failures yield "".
func TrySWriteJson(body any) string {
	v, err := SWriteJson(body)
	if err != nil {
		return ""
	}
	return v
}

// Write json as an indented string.
func SWriteIndent(body any) (string, error) {
	if v, ok := body.(string); ok {
		return v, nil
	}
	buf, err := config.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", err
	}
	return strutil.UnsafeByt2Str(buf), nil
}
