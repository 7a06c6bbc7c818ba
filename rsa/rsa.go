//
// rsa.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package rsa implements the RSA primitives on top of the mpint
// engine. Key generation and key encoding are delegated to the
// standard library and the key components are converted to the
// engine through their big-endian byte encoding.
package rsa

import (
	stdrsa "crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"github.com/markkurossi/mpint"
)

var (
	// ErrInvalidKey is returned if the key components are
	// inconsistent.
	ErrInvalidKey = errors.New("rsa: invalid key")

	// ErrDecryption is returned if a ciphertext can't be decrypted.
	ErrDecryption = errors.New("rsa: decryption error")

	// ErrVerification is returned if a signature does not verify.
	ErrVerification = errors.New("rsa: verification error")
)

// PublicKey implements an RSA public key.
type PublicKey struct {
	N mpint.Int
	E mpint.Int

	n *mpint.Modulus
}

// NewPublicKey creates a new public key from the modulus n and the
// public exponent e.
func NewPublicKey(n, e mpint.Int) (*PublicKey, error) {
	if n.Sign() <= 0 || !n.IsOdd() || e.Cmp(mpint.One) <= 0 ||
		e.Cmp(n) >= 0 {
		return nil, ErrInvalidKey
	}
	mod, err := mpint.NewModulus(n)
	if err != nil {
		return nil, err
	}
	return &PublicKey{
		N: n,
		E: e,
		n: mod,
	}, nil
}

// FromPublicKey converts a standard library public key.
func FromPublicKey(pub *stdrsa.PublicKey) (*PublicKey, error) {
	return NewPublicKey(mpint.FromBytes(pub.N.Bytes()),
		mpint.NewInt(int64(pub.E)))
}

// Size returns the modulus size in bytes.
func (pub *PublicKey) Size() int {
	return pub.N.ByteLen()
}

// Modulus returns the modulus context of the key.
func (pub *PublicKey) Modulus() *mpint.Modulus {
	return pub.n
}

// PrivateKey implements an RSA private key. The CRT values Dp, Dq,
// and Qinv are computed by Precompute if they are not set.
type PrivateKey struct {
	PublicKey
	D    mpint.Int
	P    mpint.Int
	Q    mpint.Int
	Dp   mpint.Int
	Dq   mpint.Int
	Qinv mpint.Int

	p *mpint.Modulus
	q *mpint.Modulus
}

// NewPrivateKey creates a new private key from the key components.
// The CRT values are derived from d, p, and q.
func NewPrivateKey(n, e, d, p, q mpint.Int) (*PrivateKey, error) {
	pub, err := NewPublicKey(n, e)
	if err != nil {
		return nil, err
	}
	key := &PrivateKey{
		PublicKey: *pub,
		D:         d,
		P:         p,
		Q:         q,
	}
	if err := key.Precompute(); err != nil {
		return nil, err
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return key, nil
}

// FromPrivateKey converts a standard library private key. Only two
// prime keys are supported.
func FromPrivateKey(priv *stdrsa.PrivateKey) (*PrivateKey, error) {
	if len(priv.Primes) != 2 {
		return nil, fmt.Errorf("%w: %d primes", ErrInvalidKey, len(priv.Primes))
	}
	return NewPrivateKey(
		mpint.FromBytes(priv.N.Bytes()),
		mpint.NewInt(int64(priv.E)),
		mpint.FromBytes(priv.D.Bytes()),
		mpint.FromBytes(priv.Primes[0].Bytes()),
		mpint.FromBytes(priv.Primes[1].Bytes()))
}

// GenerateKey generates a new private key of the given modulus size.
func GenerateKey(rand io.Reader, bits int) (*PrivateKey, error) {
	priv, err := stdrsa.GenerateKey(rand, bits)
	if err != nil {
		return nil, err
	}
	return FromPrivateKey(priv)
}

// ParsePrivateKeyPEM parses a PEM encoded PKCS #1 or PKCS #8 RSA
// private key.
func ParsePrivateKeyPEM(data []byte) (*PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM data", ErrInvalidKey)
	}
	switch block.Type {
	case "RSA PRIVATE KEY":
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, err
		}
		return FromPrivateKey(priv)

	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, err
		}
		priv, ok := key.(*stdrsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrInvalidKey, key)
		}
		return FromPrivateKey(priv)

	default:
		return nil, fmt.Errorf("%w: unsupported PEM type %s",
			ErrInvalidKey, block.Type)
	}
}

// ParsePublicKeyPEM parses a PEM encoded PKIX or PKCS #1 RSA public
// key.
func ParsePublicKeyPEM(data []byte) (*PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM data", ErrInvalidKey)
	}
	switch block.Type {
	case "RSA PUBLIC KEY":
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, err
		}
		return FromPublicKey(pub)

	case "PUBLIC KEY":
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, err
		}
		pub, ok := key.(*stdrsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrInvalidKey, key)
		}
		return FromPublicKey(pub)

	default:
		return nil, fmt.Errorf("%w: unsupported PEM type %s",
			ErrInvalidKey, block.Type)
	}
}

// Precompute computes the CRT values Dp, Dq, and Qinv, and the prime
// modulus contexts.
func (priv *PrivateKey) Precompute() error {
	if priv.P.Cmp(mpint.One) <= 0 || priv.Q.Cmp(mpint.One) <= 0 {
		return fmt.Errorf("%w: invalid primes", ErrInvalidKey)
	}
	if priv.Dp.IsZero() {
		priv.Dp = priv.D.Mod(priv.P.Sub(mpint.One))
	}
	if priv.Dq.IsZero() {
		priv.Dq = priv.D.Mod(priv.Q.Sub(mpint.One))
	}
	if priv.Qinv.IsZero() {
		qinv, ok := priv.Q.ModInverse(priv.P)
		if !ok {
			return fmt.Errorf("%w: primes are not coprime", ErrInvalidKey)
		}
		priv.Qinv = qinv
	}
	var err error
	priv.p, err = mpint.NewModulus(priv.P)
	if err != nil {
		return err
	}
	priv.q, err = mpint.NewModulus(priv.Q)
	return err
}

// Validate checks the consistency of the key components.
func (priv *PrivateKey) Validate() error {
	if !priv.P.Mul(priv.Q).Equal(priv.N) {
		return fmt.Errorf("%w: n != p*q", ErrInvalidKey)
	}
	for _, prime := range []mpint.Int{priv.P, priv.Q} {
		pm1 := prime.Sub(mpint.One)
		if !priv.E.Mul(priv.D).Mod(pm1).Equal(mpint.One) {
			return fmt.Errorf("%w: e*d != 1 mod (p-1)", ErrInvalidKey)
		}
	}
	if !priv.Q.Mul(priv.Qinv).Mod(priv.P).Equal(mpint.One) {
		return fmt.Errorf("%w: q*qinv != 1 mod p", ErrInvalidKey)
	}
	return nil
}

// Public returns the public key of priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &priv.PublicKey
}

// KeyFields contains the key components as fixed-width big-endian
// byte strings. The modulus and the private exponent have the
// modulus size and the prime related values half of it.
type KeyFields struct {
	N    []byte
	E    []byte
	D    []byte
	P    []byte
	Q    []byte
	Dp   []byte
	Dq   []byte
	Qinv []byte
}

// Fields returns the fixed-width encoding of the key components.
func (priv *PrivateKey) Fields() (*KeyFields, error) {
	size := priv.Size()
	half := (size + 1) / 2

	var err error
	fields := &KeyFields{
		E: priv.E.Bytes(),
	}
	for _, f := range []struct {
		dst   *[]byte
		v     mpint.Int
		width int
	}{
		{&fields.N, priv.N, size},
		{&fields.D, priv.D, size},
		{&fields.P, priv.P, half},
		{&fields.Q, priv.Q, half},
		{&fields.Dp, priv.Dp, half},
		{&fields.Dq, priv.Dq, half},
		{&fields.Qinv, priv.Qinv, half},
	} {
		*f.dst, err = f.v.FillBytes(make([]byte, f.width))
		if err != nil {
			return nil, err
		}
	}
	return fields, nil
}

// FromFields creates a private key from its encoded fields.
func FromFields(f *KeyFields) (*PrivateKey, error) {
	pub, err := NewPublicKey(mpint.FromBytes(f.N), mpint.FromBytes(f.E))
	if err != nil {
		return nil, err
	}
	key := &PrivateKey{
		PublicKey: *pub,
		D:         mpint.FromBytes(f.D),
		P:         mpint.FromBytes(f.P),
		Q:         mpint.FromBytes(f.Q),
		Dp:        mpint.FromBytes(f.Dp),
		Dq:        mpint.FromBytes(f.Dq),
		Qinv:      mpint.FromBytes(f.Qinv),
	}
	if err := key.Precompute(); err != nil {
		return nil, err
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return key, nil
}
