//
// crypt.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rsa

import (
	"fmt"
	"io"

	"github.com/markkurossi/mpint"
)

// Encrypt computes the raw RSA encryption m^e mod n. The message
// must be in the range [0, n).
func (pub *PublicKey) Encrypt(m mpint.Int) (mpint.Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return mpint.Zero, ErrMessageTooLong
	}
	return pub.n.Exp(m, pub.E), nil
}

// Decrypt computes the raw RSA decryption c^d mod n with the Chinese
// remainder theorem. If rand is not nil, the ciphertext is blinded
// with a random factor before the private key operation.
func (priv *PrivateKey) Decrypt(rand io.Reader, c mpint.Int) (
	mpint.Int, error) {

	if c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
		return mpint.Zero, ErrDecryption
	}

	var rinv mpint.Int
	if rand != nil {
		r, inv, err := priv.blindingFactor(rand)
		if err != nil {
			return mpint.Zero, err
		}
		rinv = inv

		// c' = c * r^e mod n
		c = priv.n.Mul(c, priv.n.Exp(r, priv.E))
	}

	m := priv.decryptCRT(c)

	if rand != nil {
		m = priv.n.Mul(m, rinv)
	}
	return m, nil
}

// blindingFactor returns a random invertible r < n and its inverse.
func (priv *PrivateKey) blindingFactor(rand io.Reader) (
	mpint.Int, mpint.Int, error) {

	for {
		r, err := mpint.RandBelow(rand, priv.N)
		if err != nil {
			return mpint.Zero, mpint.Zero, err
		}
		if r.IsZero() {
			continue
		}
		if inv, ok := r.ModInverse(priv.N); ok {
			return r, inv, nil
		}
	}
}

func (priv *PrivateKey) decryptCRT(c mpint.Int) mpint.Int {
	if priv.p == nil || priv.q == nil {
		return priv.n.Exp(c, priv.D)
	}
	// m1 = c^dp mod p, m2 = c^dq mod q
	m1 := priv.p.Exp(c, priv.Dp)
	m2 := priv.q.Exp(c, priv.Dq)

	// h = qinv * (m1 - m2) mod p
	h := priv.p.Mul(priv.Qinv, priv.p.Sub(m1, m2))

	// m = m2 + h*q
	return m2.Add(h.Mul(priv.Q))
}

// EncryptPKCS1v15 encrypts msg with the PKCS #1 v1.5 encryption
// block type 2.
func EncryptPKCS1v15(rand io.Reader, pub *PublicKey, msg []byte) (
	[]byte, error) {

	k := pub.Size()
	block, err := NewBlock(rand, BT2, k, msg)
	if err != nil {
		return nil, err
	}
	c, err := pub.Encrypt(mpint.FromBytes(block))
	if err != nil {
		return nil, err
	}
	return c.FillBytes(make([]byte, k))
}

// DecryptPKCS1v15 decrypts the PKCS #1 v1.5 ciphertext. The rand
// argument enables blinding, see PrivateKey.Decrypt.
func DecryptPKCS1v15(rand io.Reader, priv *PrivateKey, ciphertext []byte) (
	[]byte, error) {

	k := priv.Size()
	if len(ciphertext) != k {
		return nil, ErrDecryption
	}
	m, err := priv.Decrypt(rand, mpint.FromBytes(ciphertext))
	if err != nil {
		return nil, err
	}
	block, err := m.FillBytes(make([]byte, k))
	if err != nil {
		return nil, ErrDecryption
	}
	data, err := ParseBlock(BT2, block)
	if err != nil {
		return nil, ErrDecryption
	}
	return data, nil
}

// SignPKCS1v15 signs data with the PKCS #1 v1.5 encryption block
// type 1. The data is signed as is: callers provide the encoded
// digest.
func SignPKCS1v15(rand io.Reader, priv *PrivateKey, data []byte) (
	[]byte, error) {

	k := priv.Size()
	block, err := NewBlock(nil, BT1, k, data)
	if err != nil {
		return nil, err
	}
	s, err := priv.Decrypt(rand, mpint.FromBytes(block))
	if err != nil {
		return nil, err
	}

	// Check the signature to protect against CRT faults.
	check, err := priv.Encrypt(s)
	if err != nil || !check.Equal(mpint.FromBytes(block)) {
		return nil, fmt.Errorf("rsa: signature check failed")
	}
	return s.FillBytes(make([]byte, k))
}

// VerifyPKCS1v15 verifies the PKCS #1 v1.5 signature sig of data.
func VerifyPKCS1v15(pub *PublicKey, data, sig []byte) error {
	k := pub.Size()
	if len(sig) != k {
		return ErrVerification
	}
	m, err := pub.Encrypt(mpint.FromBytes(sig))
	if err != nil {
		return ErrVerification
	}
	block, err := m.FillBytes(make([]byte, k))
	if err != nil {
		return ErrVerification
	}
	signed, err := ParseBlock(BT1, block)
	if err != nil {
		return ErrVerification
	}
	if len(signed) != len(data) {
		return ErrVerification
	}
	var diff byte
	for i := range data {
		diff |= signed[i] ^ data[i]
	}
	if diff != 0 {
		return ErrVerification
	}
	return nil
}
