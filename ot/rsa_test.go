//
// rsa_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"bytes"
	"errors"
	"testing"

	"github.com/markkurossi/mpint/env"
)

func transfer(sender *Sender, receiver *Receiver, input int, bit uint) (
	[]byte, error) {

	sXfer, err := sender.NewTransfer(input)
	if err != nil {
		return nil, err
	}
	rXfer, err := receiver.NewTransfer(bit)
	if err != nil {
		return nil, err
	}
	err = rXfer.ReceiveRandomMessages(sXfer.RandomMessages())
	if err != nil {
		return nil, err
	}
	if err = sXfer.ReceiveV(rXfer.V()); err != nil {
		return nil, err
	}
	err = rXfer.ReceiveMessages(sXfer.Messages())
	if err != nil {
		return nil, err
	}
	m, b := rXfer.Message()
	if b != bit {
		return nil, errors.New("choice bit changed")
	}
	return m, nil
}

func TestTransfer(t *testing.T) {
	cfg := &env.Config{
		Rand: env.NewPRG([]byte("TestTransfer")),
	}
	inputs := Inputs{
		0: {
			Label0: []byte("Msg0"),
			Label1: []byte("1gsM"),
		},
		7: {
			Label0: bytes.Repeat([]byte{0x00}, 16),
			Label1: bytes.Repeat([]byte{0xff}, 16),
		},
	}
	sender, err := NewSender(cfg, 1024, inputs)
	if err != nil {
		t.Fatal(err)
	}
	receiver, err := NewReceiver(cfg, sender.PublicKey())
	if err != nil {
		t.Fatal(err)
	}
	if sender.MessageSize() != 128 || receiver.MessageSize() != 128 {
		t.Errorf("message sizes: %v/%v", sender.MessageSize(),
			receiver.MessageSize())
	}

	for input, wire := range inputs {
		for bit := uint(0); bit < 2; bit++ {
			m, err := transfer(sender, receiver, input, bit)
			if err != nil {
				t.Fatalf("input %d, bit %d: %v", input, bit, err)
			}
			expected := wire.Label0
			if bit == 1 {
				expected = wire.Label1
			}
			if !bytes.Equal(m, expected) {
				t.Errorf("input %d, bit %d: got %x, expected %x",
					input, bit, m, expected)
			}
		}
	}

	if _, err := sender.NewTransfer(1); !errors.Is(err, ErrUnknownInput) {
		t.Errorf("unknown input: got %v", err)
	}
	if _, err := receiver.NewTransfer(2); err == nil {
		t.Errorf("choice bit 2 accepted")
	}
}

func TestInvalidMessages(t *testing.T) {
	cfg := &env.Config{
		Rand: env.NewPRG([]byte("TestInvalidMessages")),
	}
	sender, err := NewSender(cfg, 1024, Inputs{
		0: {
			Label0: []byte{0},
			Label1: []byte{1},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	sXfer, err := sender.NewTransfer(0)
	if err != nil {
		t.Fatal(err)
	}
	if err := sXfer.ReceiveV([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("short v: got %v", err)
	}
	v := bytes.Repeat([]byte{0xff}, sender.MessageSize())
	if err := sXfer.ReceiveV(v); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("v >= n: got %v", err)
	}

	receiver, err := NewReceiver(cfg, sender.PublicKey())
	if err != nil {
		t.Fatal(err)
	}
	rXfer, err := receiver.NewTransfer(0)
	if err != nil {
		t.Fatal(err)
	}
	if err := rXfer.ReceiveRandomMessages([]byte{1}, []byte{2}); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("short random messages: got %v", err)
	}
}

func benchmark(b *testing.B, keySize int) {
	m0 := []byte{'M', 's', 'g', '0'}
	m1 := []byte{'1', 'g', 's', 'M'}

	cfg := new(env.Config)
	sender, err := NewSender(cfg, keySize, Inputs{
		0: {
			Label0: m0,
			Label1: m1,
		},
	})
	if err != nil {
		b.Fatal(err)
	}
	receiver, err := NewReceiver(cfg, sender.PublicKey())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m, err := transfer(sender, receiver, 0, 1)
		if err != nil {
			b.Fatal(err)
		}
		if !bytes.Equal(m, m1) {
			b.Fatal("Verify failed!\n")
		}
	}
}

func BenchmarkOT1024(b *testing.B) {
	benchmark(b, 1024)
}

func BenchmarkOT2048(b *testing.B) {
	benchmark(b, 2048)
}
