package sm4

import (
	"crypto/cipher"
	"encoding/binary"
)

// sm4Cipher implements the standard library's crypto/cipher.Block
// interface for SM4, so it can be handed to any generic block-mode
// helper (cipher.NewCBCEncrypter, cipher.NewCTR, ...) in addition to
// this package's own ECB/CBC/CTR drivers.
type sm4Cipher struct {
	rk [32]uint32
}

// NewCipher creates a new SM4 cipher.Block from a 16-byte key.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	var k [KeySize]byte
	copy(k[:], key)
	return &sm4Cipher{rk: expandKey(&k)}, nil
}

// BlockSize returns the SM4 block size.
func (c *sm4Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block in src into dst.
func (c *sm4Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sm4: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sm4: output not full block")
	}
	var x [4]uint32
	x[0] = binary.BigEndian.Uint32(src[0:4])
	x[1] = binary.BigEndian.Uint32(src[4:8])
	x[2] = binary.BigEndian.Uint32(src[8:12])
	x[3] = binary.BigEndian.Uint32(src[12:16])

	cryptBlock(&x, &c.rk, false)

	binary.BigEndian.PutUint32(dst[0:4], x[0])
	binary.BigEndian.PutUint32(dst[4:8], x[1])
	binary.BigEndian.PutUint32(dst[8:12], x[2])
	binary.BigEndian.PutUint32(dst[12:16], x[3])
}

// Decrypt decrypts the first block in src into dst.
func (c *sm4Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sm4: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sm4: output not full block")
	}
	var x [4]uint32
	x[0] = binary.BigEndian.Uint32(src[0:4])
	x[1] = binary.BigEndian.Uint32(src[4:8])
	x[2] = binary.BigEndian.Uint32(src[8:12])
	x[3] = binary.BigEndian.Uint32(src[12:16])

	cryptBlock(&x, &c.rk, true)

	binary.BigEndian.PutUint32(dst[0:4], x[0])
	binary.BigEndian.PutUint32(dst[4:8], x[1])
	binary.BigEndian.PutUint32(dst[8:12], x[2])
	binary.BigEndian.PutUint32(dst[12:16], x[3])
}
