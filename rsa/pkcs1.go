//
// pkcs1.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//
// PKCS #1 Encryption-block formatting, RFC 2313.

package rsa

import (
	"errors"
	"fmt"
	"io"
)

// BlockType specifies the encryption block type and how the padding
// is formed and detected.
type BlockType byte

// Block types.
const (
	BT0 BlockType = iota
	BT1
	BT2
)

func (bt BlockType) String() string {
	switch bt {
	case BT0:
		return "BT0"
	case BT1:
		return "BT1"
	case BT2:
		return "BT2"
	default:
		return fmt.Sprintf("{BlockType %d}", bt)
	}
}

// MinPadLen specifies the minimum padding length.
const MinPadLen = 8

var (
	// ErrInvalidBlock is returned if the encryption block is
	// malformed.
	ErrInvalidBlock = errors.New("rsa: invalid encryption block")

	// ErrMessageTooLong is returned if the data does not fit into the
	// encryption block with the minimum padding.
	ErrMessageTooLong = errors.New("rsa: message too long")
)

// NewBlock creates a new encryption block of blockLen bytes with the
// type bt and data. The function returns ErrMessageTooLong if
// blockLen can't hold the data, the block formatting, and MinPadLen
// bytes of padding. The random padding of BT2 blocks is read from
// rand. The block type BT, the padding string PS, and the data D
// form the encryption block EB:
//
//	EB = 00 || BT || PS || 00 || D
func NewBlock(rand io.Reader, bt BlockType, blockLen int, data []byte) (
	[]byte, error) {

	padLen := blockLen - 3 - len(data)
	if padLen < MinPadLen {
		return nil, ErrMessageTooLong
	}

	block := make([]byte, blockLen)
	block[1] = byte(bt)
	ps := block[2 : 2+padLen]

	switch bt {
	case BT1:
		for i := range ps {
			ps[i] = 0xff
		}

	case BT2:
		if err := nonZeroRandom(rand, ps); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("rsa: block type %s not supported", bt)
	}
	copy(block[3+padLen:], data)

	return block, nil
}

// nonZeroRandom fills buf with random non-zero bytes.
func nonZeroRandom(rand io.Reader, buf []byte) error {
	if _, err := io.ReadFull(rand, buf); err != nil {
		return err
	}
	var b [1]byte
	for i := range buf {
		for buf[i] == 0 {
			if _, err := io.ReadFull(rand, b[:]); err != nil {
				return err
			}
			buf[i] = b[0]
		}
	}
	return nil
}

// ParseBlock parses the encryption block and returns its type and
// data. The block must have the expected type bt and at least
// MinPadLen bytes of valid padding.
func ParseBlock(bt BlockType, block []byte) ([]byte, error) {
	if len(block) < 3+MinPadLen {
		return nil, ErrInvalidBlock
	}
	if block[0] != 0 || BlockType(block[1]) != bt {
		return nil, ErrInvalidBlock
	}
	for i := 2; i < len(block); i++ {
		switch {
		case block[i] == 0:
			if i-2 < MinPadLen {
				return nil, ErrInvalidBlock
			}
			return block[i+1:], nil

		case bt == BT1 && block[i] != 0xff:
			return nil, ErrInvalidBlock
		}
	}
	return nil, ErrInvalidBlock
}
