package sm4

import (
	"crypto/cipher"

	"github.com/gouzhi/gmcrypto/pkcs7"
)

// EncryptCBC pads plaintext with PKCS#7 and encrypts it under key/iv
// using Cipher Block Chaining mode via the standard library's generic
// CBC implementation over the SM4 block.
func EncryptCBC(key, iv, plaintext []byte) ([]byte, error) {
	block, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, InvalidIVError{Mode: "CBC", Size: len(iv)}
	}

	padded := pkcs7.Pad(plaintext, BlockSize)
	dst := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(dst, padded)
	return dst, nil
}

// DecryptCBC decrypts ciphertext under key/iv using CBC mode and strips
// the PKCS#7 padding applied by EncryptCBC.
func DecryptCBC(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, InvalidIVError{Mode: "CBC", Size: len(iv)}
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, BlockSizeError(len(ciphertext))
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)
	return pkcs7.Unpad(padded)
}

// EncryptCTR encrypts plaintext of any length under key/counter using
// Counter mode, turning the SM4 block into a stream cipher. No padding
// is required or applied.
func EncryptCTR(key, iv, plaintext []byte) ([]byte, error) {
	block, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, InvalidIVError{Mode: "CTR", Size: len(iv)}
	}

	dst := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(dst, plaintext)
	return dst, nil
}

// DecryptCTR decrypts data encrypted with EncryptCTR. CTR mode is a
// stream cipher, so decryption is identical to encryption given the
// same key and counter.
func DecryptCTR(key, iv, ciphertext []byte) ([]byte, error) {
	return EncryptCTR(key, iv, ciphertext)
}
