// -*- go -*-
//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package math defines the digit radix constants of the
// multi-precision integer engine.
package math

// Digit geometry. A digit is an unsigned 32-bit quantity and the
// radix of the engine is 2^WordBits.
const (
	WordBits  = 32
	WordBytes = WordBits / 8
	MaxWord   = 0xffffffff
	MaxUint64 = 0xffffffffffffffff
)
