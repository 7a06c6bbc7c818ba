//
// ot.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package p2p

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/markkurossi/mpint/ot"
	"github.com/markkurossi/mpint/rsa"
)

// Transfer status codes.
const (
	statusOK byte = iota
	statusUnknownInput
	statusError
)

// ErrPeerFailed is returned to the receiver when the sender could not
// start the transfer.
var ErrPeerFailed = errors.New("p2p: peer failed to start transfer")

// SendPublicKey sends the RSA public key.
func (c *Conn) SendPublicKey(pub *rsa.PublicKey) error {
	if err := c.SendInt(pub.N); err != nil {
		return err
	}
	if err := c.SendInt(pub.E); err != nil {
		return err
	}
	return c.Flush()
}

// ReceivePublicKey receives an RSA public key.
func (c *Conn) ReceivePublicKey() (*rsa.PublicKey, error) {
	n, err := c.ReceiveInt()
	if err != nil {
		return nil, err
	}
	e, err := c.ReceiveInt()
	if err != nil {
		return nil, err
	}
	return rsa.NewPublicKey(n, e)
}

// Receive implements OT receive for the bit value of the input wire.
func (c *Conn) Receive(receiver *ot.Receiver, input int, bit uint) (
	[]byte, error) {

	id, err := safecast.Conv[uint32](input)
	if err != nil {
		return nil, err
	}
	if err := c.SendUint32(id); err != nil {
		return nil, err
	}
	if err := c.Flush(); err != nil {
		return nil, err
	}
	status, err := c.ReceiveByte()
	if err != nil {
		return nil, err
	}
	switch status {
	case statusOK:
	case statusUnknownInput:
		return nil, fmt.Errorf("%w: %d", ot.ErrUnknownInput, input)
	case statusError:
		return nil, fmt.Errorf("%w: input %d", ErrPeerFailed, input)
	default:
		return nil, fmt.Errorf("p2p: invalid transfer status %d", status)
	}

	xfer, err := receiver.NewTransfer(bit)
	if err != nil {
		return nil, err
	}

	x0, err := c.ReceiveData()
	if err != nil {
		return nil, err
	}
	x1, err := c.ReceiveData()
	if err != nil {
		return nil, err
	}
	err = xfer.ReceiveRandomMessages(x0, x1)
	if err != nil {
		return nil, err
	}

	if err := c.SendData(xfer.V()); err != nil {
		return nil, err
	}
	if err := c.Flush(); err != nil {
		return nil, err
	}

	m0p, err := c.ReceiveData()
	if err != nil {
		return nil, err
	}
	m1p, err := c.ReceiveData()
	if err != nil {
		return nil, err
	}

	err = xfer.ReceiveMessages(m0p, m1p, nil)
	if err != nil {
		return nil, err
	}

	m, _ := xfer.Message()
	return m, nil
}

// Send serves one OT request of the peer. Requests for unknown
// inputs and failures to start the transfer are reported to the peer
// and returned as errors.
func (c *Conn) Send(sender *ot.Sender) error {
	id, err := c.ReceiveUint32()
	if err != nil {
		return err
	}
	input, err := safecast.Conv[int](id)
	if err != nil {
		return err
	}
	xfer, err := sender.NewTransfer(input)
	if err != nil {
		status := statusError
		if errors.Is(err, ot.ErrUnknownInput) {
			status = statusUnknownInput
		}
		if ferr := c.SendByte(status); ferr != nil {
			return ferr
		}
		if ferr := c.Flush(); ferr != nil {
			return ferr
		}
		return err
	}
	if err := c.SendByte(statusOK); err != nil {
		return err
	}

	x0, x1 := xfer.RandomMessages()
	if err := c.SendData(x0); err != nil {
		return err
	}
	if err := c.SendData(x1); err != nil {
		return err
	}
	if err := c.Flush(); err != nil {
		return err
	}

	v, err := c.ReceiveData()
	if err != nil {
		return err
	}
	if err := xfer.ReceiveV(v); err != nil {
		return err
	}

	m0p, m1p, err := xfer.Messages()
	if err != nil {
		return err
	}
	if err := c.SendData(m0p); err != nil {
		return err
	}
	if err := c.SendData(m1p); err != nil {
		return err
	}
	return c.Flush()
}
