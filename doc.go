//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mpint implements arbitrary-precision signed integer
// arithmetic for public-key cryptography. The Int type holds its
// magnitude as little-endian 32-bit digits and provides addition,
// subtraction, schoolbook multiplication, normalized long division,
// bit shifts, modular exponentiation with a Montgomery fast path for
// odd moduli, and modular inversion with the extended Euclidean
// algorithm.
//
// Int values are immutable and safe to share between goroutines. The
// arithmetic is not constant-time: the execution time depends on the
// operand values, including the exponent bits of ExpMod.
package mpint
