// Package hmacsm3 provides HMAC-SM3, the standard library's generic HMAC
// construction instantiated with this module's SM3 implementation.
package hmacsm3

import (
	"crypto/hmac"
	"hash"

	"github.com/gouzhi/gmcrypto/sm3"
)

// New returns a hash.Hash computing HMAC-SM3 with the given key.
func New(key []byte) hash.Hash {
	return hmac.New(sm3.New, key)
}

// Sum computes HMAC-SM3(key, data) in a single call.
func Sum(key, data []byte) []byte {
	h := New(key)
	h.Write(data)
	return h.Sum(nil)
}
