package sm3

import "encoding/binary"

// expand derives the 68-word W and 64-word W' arrays from a single
// 64-byte message block (GB/T 32905-2016 §5.3.2).
func expand(block []byte) (w [68]uint32, wPrime [64]uint32) {
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i : 4*i+4])
	}
	for j := 16; j < 68; j++ {
		w[j] = p1(w[j-16]^w[j-9]^rotl(w[j-3], 15)) ^ rotl(w[j-13], 7) ^ w[j-6]
	}
	for j := 0; j < 64; j++ {
		wPrime[j] = w[j] ^ w[j+4]
	}
	return
}

// compress applies the 64-step compression function to one 64-byte
// block, updating state v in place.
func compress(v *[8]uint32, block []byte) {
	w, wPrime := expand(block)

	a, b, c, d, e, f, g, h := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]

	for j := 0; j < 64; j++ {
		tj := tj0
		if j >= 16 {
			tj = tj1
		}
		ss1 := rotl(rotl(a, 12)+e+rotl(tj, uint32(j)), 7)
		ss2 := ss1 ^ rotl(a, 12)
		tt1 := ff(j, a, b, c) + d + ss2 + wPrime[j]
		tt2 := gg(j, e, f, g) + h + ss1 + w[j]

		d = c
		c = rotl(b, 9)
		b = a
		a = tt1

		h = g
		g = rotl(f, 19)
		f = e
		e = p0(tt2)
	}

	v[0] ^= a
	v[1] ^= b
	v[2] ^= c
	v[3] ^= d
	v[4] ^= e
	v[5] ^= f
	v[6] ^= g
	v[7] ^= h
}
