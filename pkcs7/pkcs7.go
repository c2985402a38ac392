// Package pkcs7 implements PKCS#7 padding (RFC 5652 §6.3), the scheme
// this module's block-mode helpers use to pad arbitrary-length data up
// to a cipher's block size.
package pkcs7

import (
	"bytes"
	"fmt"
)

// PaddingError reports that the trailing bytes of a buffer passed to
// Unpad do not form a valid PKCS#7 padding.
type PaddingError struct {
	Len int
}

func (e PaddingError) Error() string {
	return fmt.Sprintf("pkcs7: invalid padding on %d-byte input", e.Len)
}

// Pad appends N bytes of value N to data, where N = blockSize -
// len(data)%blockSize. When data is already block-aligned, a full block
// of padding is appended so that Unpad can always find a trailer.
func Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// Unpad validates and strips PKCS#7 padding previously applied by Pad.
func Unpad(data []byte) ([]byte, error) {
	n := len(data)
	if n == 0 {
		return nil, PaddingError{Len: n}
	}

	padLen := int(data[n-1])
	if padLen == 0 || padLen > n {
		return nil, PaddingError{Len: n}
	}
	if !bytes.Equal(data[n-padLen:], bytes.Repeat([]byte{byte(padLen)}, padLen)) {
		return nil, PaddingError{Len: n}
	}
	return data[:n-padLen], nil
}
