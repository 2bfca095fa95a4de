package codec

import (
	"bytes"
	"testing"
)

func TestBase64(t *testing.T) {
	enc := SBase64Encode("hello world")
	if enc != "aGVsbG8gd29ybGQ=" {
		t.Fatalf("got %v", enc)
	}
	dec, err := SBase64Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if dec != "hello world" {
		t.Fatalf("got %v", dec)
	}

	if _, err := Base64Decode("!!not base64!!"); err == nil {
		t.Fatal("expected error")
	}
}

func TestBase64Url(t *testing.T) {
	b := []byte{0xfb, 0xff, 0x00}
	enc := Base64UrlEncode(b)
	dec, err := Base64UrlDecode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, b) {
		t.Fatalf("got %v", dec)
	}
}

func TestUtf16RoundTrip(t *testing.T) {
	s := "héllo 世界"
	b, err := Utf8ToUtf16(s)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Utf16ToUtf8(b)
	if err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatalf("got %v", back)
	}
}

func TestDecodeUnicodeBom(t *testing.T) {
	// utf-8 BOM is stripped
	b := append([]byte{0xef, 0xbb, 0xbf}, []byte("abc")...)
	s, err := DecodeUnicode(b)
	if err != nil {
		t.Fatal(err)
	}
	if s != "abc" {
		t.Fatalf("got %v", s)
	}

	// utf-16le with BOM decodes to utf-8
	b = []byte{0xff, 0xfe, 'a', 0x00, 'b', 0x00}
	s, err = DecodeUnicode(b)
	if err != nil {
		t.Fatal(err)
	}
	if s != "ab" {
		t.Fatalf("got %v", s)
	}
}
