package strutil

import (
	"unsafe"
)

// Convert []byte to string without alloc.
//
// Both the []byte and the string share the same memory, any modification on the original
// []byte is reflected on the returned string.
//
// See: https://github.com/golang/go/issues/53003
func UnsafeByt2Str(b []byte) string {
	if len(b) < 1 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Convert string to []byte without alloc.
//
// Both the string and the []byte share the same memory, the resulting []byte is not
// modifiable, program panics if modified.
//
// See: https://github.com/golang/go/issues/53003
func UnsafeStr2Byt(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
