package sm4

import (
	"math/rand"
	"testing"

	gmsm4 "github.com/emmansun/gmsm/sm4"
	"github.com/stretchr/testify/assert"
)

// TestInteropWithGmsm cross-validates this package's block transform
// against github.com/emmansun/gmsm, an independently written SM4
// implementation, over randomized keys and plaintexts. This is in
// addition to the fixed vectors in sm4_test.go, not a replacement for
// them.
func TestInteropWithGmsm(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		key := make([]byte, KeySize)
		plaintext := make([]byte, BlockSize)
		rng.Read(key)
		rng.Read(plaintext)

		ours, err := NewCipher(key)
		assert.NoError(t, err)
		theirs, err := gmsm4.NewCipher(key)
		assert.NoError(t, err)

		ourCipher := make([]byte, BlockSize)
		theirCipher := make([]byte, BlockSize)
		ours.Encrypt(ourCipher, plaintext)
		theirs.Encrypt(theirCipher, plaintext)
		assert.Equal(t, theirCipher, ourCipher, "mismatch at iteration %d", i)

		ourPlain := make([]byte, BlockSize)
		ours.Decrypt(ourPlain, ourCipher)
		assert.Equal(t, plaintext, ourPlain)
	}
}
