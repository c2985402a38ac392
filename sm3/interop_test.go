package sm3

import (
	"math/rand"
	"testing"

	gmsm3 "github.com/emmansun/gmsm/sm3"
	"github.com/stretchr/testify/assert"
)

// TestInteropWithGmsm cross-validates this package's digest against
// github.com/emmansun/gmsm, an independently written SM3 implementation,
// over randomized messages of varying length.
func TestInteropWithGmsm(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{0, 1, 3, 55, 56, 63, 64, 65, 127, 128, 129, 1000} {
		data := make([]byte, n)
		rng.Read(data)

		ours := Sum(data)

		theirHash := gmsm3.New()
		theirHash.Write(data)
		theirs := theirHash.Sum(nil)

		assert.Equal(t, theirs, ours[:], "mismatch for length %d", n)
	}
}
