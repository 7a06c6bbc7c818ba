//
// rsa.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package ot implements the RSA based 1-out-of-2 oblivious transfer
// protocol of Even, Goldreich, and Lempel. All modular arithmetic is
// done with the mpint engine.
package ot

import (
	"errors"
	"fmt"

	"github.com/markkurossi/mpint"
	"github.com/markkurossi/mpint/env"
	"github.com/markkurossi/mpint/rsa"
)

var (
	// ErrUnknownInput is returned if the sender does not have the
	// requested input wire.
	ErrUnknownInput = errors.New("ot: unknown input")

	// ErrInvalidMessage is returned if a protocol message is
	// malformed.
	ErrInvalidMessage = errors.New("ot: invalid message")
)

// Wire contains the two labels of an input wire.
type Wire struct {
	Label0 []byte
	Label1 []byte
}

// Inputs maps input indices to their wires.
type Inputs map[int]Wire

func (i Inputs) String() string {
	var result string

	for k, v := range i {
		str := fmt.Sprintf("%d={%x,%x}", k, v.Label0, v.Label1)
		if len(result) > 0 {
			result += ", "
		}
		result += str
	}
	return result
}

// Sender implements the OT sender.
type Sender struct {
	cfg    *env.Config
	key    *rsa.PrivateKey
	inputs Inputs
}

// NewSender creates a new sender with a fresh RSA key of keyBits
// bits.
func NewSender(cfg *env.Config, keyBits int, inputs Inputs) (*Sender, error) {
	key, err := rsa.GenerateKey(cfg.GetRandom(), keyBits)
	if err != nil {
		return nil, err
	}
	return NewSenderWithKey(cfg, key, inputs), nil
}

// NewSenderWithKey creates a new sender with the RSA key.
func NewSenderWithKey(cfg *env.Config, key *rsa.PrivateKey,
	inputs Inputs) *Sender {

	return &Sender{
		cfg:    cfg,
		key:    key,
		inputs: inputs,
	}
}

// MessageSize returns the size of the protocol messages in bytes.
func (s *Sender) MessageSize() int {
	return s.key.Size()
}

// PublicKey returns the sender's public key.
func (s *Sender) PublicKey() *rsa.PublicKey {
	return s.key.Public()
}

// NewTransfer starts a new transfer of the input wire.
func (s *Sender) NewTransfer(input int) (*SenderXfer, error) {
	w, ok := s.inputs[input]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownInput, input)
	}
	x0, err := mpint.RandBelow(s.cfg.GetRandom(), s.key.N)
	if err != nil {
		return nil, err
	}
	x1, err := mpint.RandBelow(s.cfg.GetRandom(), s.key.N)
	if err != nil {
		return nil, err
	}

	return &SenderXfer{
		sender: s,
		input:  w,
		x0:     x0,
		x1:     x1,
	}, nil
}

// SenderXfer implements the sender side of one transfer.
type SenderXfer struct {
	sender *Sender
	input  Wire
	x0     mpint.Int
	x1     mpint.Int
	k0     mpint.Int
	k1     mpint.Int
}

// MessageSize returns the size of the protocol messages in bytes.
func (s *SenderXfer) MessageSize() int {
	return s.sender.MessageSize()
}

// RandomMessages returns the random messages x0 and x1.
func (s *SenderXfer) RandomMessages() ([]byte, []byte) {
	size := s.MessageSize()
	x0, _ := s.x0.FillBytes(make([]byte, size))
	x1, _ := s.x1.FillBytes(make([]byte, size))
	return x0, x1
}

// ReceiveV processes the receiver's blinded choice v.
func (s *SenderXfer) ReceiveV(data []byte) error {
	key := s.sender.key
	v := mpint.FromBytes(data)
	if len(data) != s.MessageSize() || v.Cmp(key.N) >= 0 {
		return ErrInvalidMessage
	}
	n := key.Modulus()

	var err error
	s.k0, err = key.Decrypt(s.sender.cfg.GetRandom(), n.Sub(v, s.x0))
	if err != nil {
		return err
	}
	s.k1, err = key.Decrypt(s.sender.cfg.GetRandom(), n.Sub(v, s.x1))
	return err
}

// Messages returns the masked messages m0' and m1'.
func (s *SenderXfer) Messages() ([]byte, []byte, error) {
	m0p, err := s.mask(s.input.Label0, s.k0)
	if err != nil {
		return nil, nil, err
	}
	m1p, err := s.mask(s.input.Label1, s.k1)
	if err != nil {
		return nil, nil, err
	}
	return m0p, m1p, nil
}

func (s *SenderXfer) mask(label []byte, k mpint.Int) ([]byte, error) {
	size := s.MessageSize()
	block, err := rsa.NewBlock(nil, rsa.BT1, size, label)
	if err != nil {
		return nil, err
	}
	m := s.sender.key.Modulus().Add(mpint.FromBytes(block), k)
	return m.FillBytes(make([]byte, size))
}

// Receiver implements the OT receiver.
type Receiver struct {
	cfg *env.Config
	pub *rsa.PublicKey
}

// NewReceiver creates a new receiver for the sender's public key.
func NewReceiver(cfg *env.Config, pub *rsa.PublicKey) (*Receiver, error) {
	return &Receiver{
		cfg: cfg,
		pub: pub,
	}, nil
}

// MessageSize returns the size of the protocol messages in bytes.
func (r *Receiver) MessageSize() int {
	return r.pub.Size()
}

// NewTransfer starts a new transfer for the choice bit.
func (r *Receiver) NewTransfer(bit uint) (*ReceiverXfer, error) {
	if bit > 1 {
		return nil, fmt.Errorf("ot: invalid choice bit %d", bit)
	}
	return &ReceiverXfer{
		receiver: r,
		bit:      bit,
	}, nil
}

// ReceiverXfer implements the receiver side of one transfer.
type ReceiverXfer struct {
	receiver *Receiver
	bit      uint
	k        mpint.Int
	v        mpint.Int
	mb       []byte
}

// ReceiveRandomMessages processes the sender's random messages and
// computes the blinded choice v = x_b + k^e mod n.
func (r *ReceiverXfer) ReceiveRandomMessages(x0, x1 []byte) error {
	pub := r.receiver.pub
	size := r.receiver.MessageSize()
	if len(x0) != size || len(x1) != size {
		return ErrInvalidMessage
	}
	k, err := mpint.RandBelow(r.receiver.cfg.GetRandom(), pub.N)
	if err != nil {
		return err
	}
	r.k = k

	var xb mpint.Int
	if r.bit == 0 {
		xb = mpint.FromBytes(x0)
	} else {
		xb = mpint.FromBytes(x1)
	}
	ke, err := pub.Encrypt(k)
	if err != nil {
		return err
	}
	r.v = pub.Modulus().Add(xb, ke)

	return nil
}

// V returns the blinded choice.
func (r *ReceiverXfer) V() []byte {
	v, _ := r.v.FillBytes(make([]byte, r.receiver.MessageSize()))
	return v
}

// ReceiveMessages processes the masked messages and extracts the
// chosen message.
func (r *ReceiverXfer) ReceiveMessages(m0p, m1p []byte, err error) error {
	if err != nil {
		return err
	}
	var mbp mpint.Int
	if r.bit == 0 {
		mbp = mpint.FromBytes(m0p)
	} else {
		mbp = mpint.FromBytes(m1p)
	}
	mb, err := r.receiver.pub.Modulus().Sub(mbp, r.k).
		FillBytes(make([]byte, r.receiver.MessageSize()))
	if err != nil {
		return err
	}
	data, err := rsa.ParseBlock(rsa.BT1, mb)
	if err != nil {
		return err
	}
	r.mb = data

	return nil
}

// Message returns the received message and the choice bit.
func (r *ReceiverXfer) Message() (m []byte, bit uint) {
	return r.mb, r.bit
}
