// Command smdemo exercises the sm4 and sm3 packages against the fixed
// vectors from the GB/T standards, the way a consumer of the library
// would use it end to end.
package main

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/gouzhi/gmcrypto/sm3"
	"github.com/gouzhi/gmcrypto/sm4"
)

func main() {
	key, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")
	plaintext, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")

	ciphertext, err := sm4.EncryptECB(key, plaintext)
	if err != nil {
		log.Fatalf("sm4 encrypt: %v", err)
	}
	fmt.Printf("sm4 ciphertext: %x\n", ciphertext)

	decrypted, err := sm4.DecryptECB(key, ciphertext)
	if err != nil {
		log.Fatalf("sm4 decrypt: %v", err)
	}
	fmt.Printf("sm4 round trip ok: %v\n", hex.EncodeToString(decrypted) == hex.EncodeToString(plaintext))

	digest := sm3.Sum([]byte("abc"))
	fmt.Printf("sm3(\"abc\") = %x\n", digest)
}
