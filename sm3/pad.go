package sm3

import "encoding/binary"

// pad returns a copy of msg padded per GB/T 32905-2016 §5.2: a
// terminator byte 0x80, zero bytes until 8 bytes short of a 64-byte
// boundary, then the original bit length as a big-endian uint64. The
// result's length is always a positive multiple of 64.
func pad(msg []byte) []byte {
	bitLen := uint64(len(msg)) * 8

	total := len(msg) + 1
	for total%64 != 56 {
		total++
	}
	total += 8

	out := make([]byte, total)
	copy(out, msg)
	out[len(msg)] = 0x80
	binary.BigEndian.PutUint64(out[total-8:], bitLen)
	return out
}
