package sm4

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncryptDecryptECBRoundTrip(t *testing.T) {
	key := []byte("1234567890abcdef")
	plaintext := bytes.Repeat([]byte("0123456789abcdef"), 2) // 32 bytes
	assert.Equal(t, 0, len(plaintext)%BlockSize)

	ciphertext, err := EncryptECB(key, plaintext)
	assert.NoError(t, err)
	assert.Equal(t, len(plaintext), len(ciphertext))

	decrypted, err := DecryptECB(key, ciphertext)
	assert.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestECBEmptyInput(t *testing.T) {
	key := []byte("1234567890abcdef")

	ciphertext, err := EncryptECB(key, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(ciphertext))

	plaintext, err := DecryptECB(key, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(plaintext))
}

func TestECBInvalidKeyLength(t *testing.T) {
	_, err := EncryptECB(make([]byte, 15), make([]byte, 16))
	assert.Error(t, err)
	assert.IsType(t, KeySizeError(0), err)
}

func TestECBInvalidBlockAlignment(t *testing.T) {
	key := []byte("1234567890abcdef")
	_, err := EncryptECB(key, make([]byte, 17))
	assert.Error(t, err)
	assert.IsType(t, BlockSizeError(0), err)

	_, err = DecryptECB(key, make([]byte, 17))
	assert.Error(t, err)
	assert.IsType(t, BlockSizeError(0), err)
}

func TestECBAgainstStandardVector(t *testing.T) {
	key, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")
	plaintext, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")
	want, _ := hex.DecodeString("681edf34d206965e86b3e94f536e4246")

	got, err := EncryptECB(key, plaintext)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
