//
// main.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Command ot runs RSA oblivious transfers. Without an address, the
// sender and the receiver run in the same process and communicate
// over an in-memory pipe.
package main

import (
	"bytes"
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"time"

	"github.com/markkurossi/mpint/env"
	"github.com/markkurossi/mpint/ot"
	"github.com/markkurossi/mpint/p2p"
	"golang.org/x/sync/errgroup"
)

const labelSize = 16

func main() {
	keyBits := flag.Int("bits", 2048, "RSA key size in bits")
	count := flag.Int("n", 4, "Number of transfers")
	bit := flag.Uint("b", 0, "Receiver's choice bit")
	addr := flag.String("addr", "", "Network address for the sender")
	sender := flag.Bool("s", false, "Sender mode")
	flag.Parse()

	log.SetFlags(0)

	switch {
	case len(*addr) == 0:
		sc, rc := p2p.Pipe()
		labels, err := newInputs(*count)
		if err != nil {
			log.Fatal(err)
		}
		// A failing party closes its endpoint to release the peer.
		var g errgroup.Group
		g.Go(func() error {
			err := runSender(sc, *keyBits, *count, labels)
			if err != nil {
				sc.Close()
			}
			return err
		})
		g.Go(func() error {
			err := runReceiver(rc, *count, *bit, labels)
			if err != nil {
				rc.Close()
			}
			return err
		})
		if err := g.Wait(); err != nil {
			log.Fatal(err)
		}

	case *sender:
		listener, err := net.Listen("tcp", *addr)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Listening at %s", *addr)
		nc, err := listener.Accept()
		if err != nil {
			log.Fatal(err)
		}
		labels, err := newInputs(*count)
		if err != nil {
			log.Fatal(err)
		}
		if err := runSender(p2p.NewConn(nc), *keyBits, *count,
			labels); err != nil {
			log.Fatal(err)
		}

	default:
		nc, err := net.Dial("tcp", *addr)
		if err != nil {
			log.Fatal(err)
		}
		if err := runReceiver(p2p.NewConn(nc), *count, *bit,
			nil); err != nil {
			log.Fatal(err)
		}
	}
}

func newInputs(count int) (ot.Inputs, error) {
	inputs := make(ot.Inputs)
	for i := 0; i < count; i++ {
		var w ot.Wire
		w.Label0 = make([]byte, labelSize)
		w.Label1 = make([]byte, labelSize)
		if _, err := io.ReadFull(rand.Reader, w.Label0); err != nil {
			return nil, err
		}
		if _, err := io.ReadFull(rand.Reader, w.Label1); err != nil {
			return nil, err
		}
		inputs[i] = w
	}
	return inputs, nil
}

func runSender(conn *p2p.Conn, keyBits, count int, inputs ot.Inputs) error {
	start := time.Now()
	sender, err := ot.NewSender(new(env.Config), keyBits, inputs)
	if err != nil {
		return err
	}
	log.Printf("Sender: %d-bit key generated in %v", keyBits,
		time.Since(start))

	for i := 0; i < count; i++ {
		fmt.Printf("  Sender m0 : %x\n", inputs[i].Label0)
		fmt.Printf("  Sender m1 : %x\n", inputs[i].Label1)
	}
	if err := conn.SendPublicKey(sender.PublicKey()); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := conn.Send(sender); err != nil {
			return err
		}
	}
	return conn.Close()
}

func runReceiver(conn *p2p.Conn, count int, bit uint,
	inputs ot.Inputs) error {

	pub, err := conn.ReceivePublicKey()
	if err != nil {
		return err
	}
	receiver, err := ot.NewReceiver(new(env.Config), pub)
	if err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < count; i++ {
		m, err := conn.Receive(receiver, i, bit)
		if err != nil {
			return err
		}
		fmt.Printf("Receiver m%d : %x\n", bit, m)

		if inputs == nil {
			continue
		}
		expected := inputs[i].Label0
		if bit == 1 {
			expected = inputs[i].Label1
		}
		if !bytes.Equal(expected, m) {
			return fmt.Errorf("verify failed for input %d", i)
		}
	}
	elapsed := time.Since(start)
	log.Printf("Receiver: %d transfers in %v, %d bytes transferred",
		count, elapsed, conn.Stats.Sum())

	return conn.Close()
}
