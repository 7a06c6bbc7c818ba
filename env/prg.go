//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"crypto/sha256"

	"golang.org/x/crypto/chacha20"
)

// PRG implements a deterministic pseudo-random generator from the
// ChaCha20 keystream. It is used for reproducible test vectors and
// benchmarks and it must not be used as a source of key material.
type PRG struct {
	cipher *chacha20.Cipher
}

// NewPRG creates a new PRG. The ChaCha20 key is derived from the seed
// with SHA-256 and the nonce is zero.
func NewPRG(seed []byte) *PRG {
	key := sha256.Sum256(seed)
	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &PRG{
		cipher: c,
	}
}

// Read fills buf with the next keystream bytes. It never fails.
func (prg *PRG) Read(buf []byte) (int, error) {
	for i := range buf {
		buf[i] = 0
	}
	prg.cipher.XORKeyStream(buf, buf)
	return len(buf), nil
}
