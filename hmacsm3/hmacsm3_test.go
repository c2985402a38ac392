package hmacsm3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumIs32Bytes(t *testing.T) {
	mac := Sum([]byte("key"), []byte("message"))
	assert.Equal(t, 32, len(mac))
}

func TestDeterministic(t *testing.T) {
	key := []byte("secret-key")
	msg := []byte("message body")
	assert.Equal(t, Sum(key, msg), Sum(key, msg))
}

func TestDifferentKeysDiffer(t *testing.T) {
	msg := []byte("message body")
	assert.NotEqual(t, Sum([]byte("key-a"), msg), Sum([]byte("key-b"), msg))
}

func TestHashInterfaceIncrementalWritesMatchSum(t *testing.T) {
	h := New([]byte("key"))
	h.Write([]byte("part1"))
	h.Write([]byte("part2"))
	combined := h.Sum(nil)

	direct := Sum([]byte("key"), []byte("part1part2"))
	assert.Equal(t, direct, combined)
}
