//
// rand.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"fmt"
	"io"
)

// Rand returns a non-negative random value with at most bits
// significant bits, read from the entropy source rand.
func Rand(rand io.Reader, bits int) (Int, error) {
	if bits < 0 {
		return Zero, ErrInvalidBitLength
	}
	if bits == 0 {
		return Zero, nil
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return Zero, fmt.Errorf("mpint: reading random: %w", err)
	}
	// Mask the excess bits of the most significant byte.
	buf[0] &= byte(0xff >> uint(len(buf)*8-bits))

	return FromBytes(buf), nil
}

// RandBelow returns a uniformly random value in the range [0, n). The
// bound n must be positive.
func RandBelow(rand io.Reader, n Int) (Int, error) {
	if n.Sign() <= 0 {
		return Zero, ErrInvalidModulus
	}
	bits := n.BitLen()
	for {
		x, err := Rand(rand, bits)
		if err != nil {
			return Zero, err
		}
		if x.Cmp(n) < 0 {
			return x, nil
		}
	}
}
