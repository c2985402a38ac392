// Package kdf provides PBKDF2 key derivation parameterized on SM3, for
// callers who need to turn a passphrase into a fixed-length key (for
// example, an SM4 key) without this module's core kernels taking any
// position on key storage or generation.
package kdf

import (
	"golang.org/x/crypto/pbkdf2"

	"github.com/gouzhi/gmcrypto/sm3"
)

// DeriveKey derives a keyLen-byte key from password and salt using
// PBKDF2-HMAC-SM3 with iter iterations.
func DeriveKey(password, salt []byte, iter, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iter, keyLen, sm3.New)
}
