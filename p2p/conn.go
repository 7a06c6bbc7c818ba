//
// conn.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package p2p implements a buffered point-to-point connection that
// frames integers, byte strings, and multi-precision integers.
package p2p

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/markkurossi/mpint"
)

const (
	numBuffers   = 3
	writeBufSize = 64 * 1024
	readBufSize  = 64 * 1024

	// MaxDataLen is the maximum length of a data frame.
	MaxDataLen = 64 * 1024 * 1024
)

// ErrFrameTooLarge is returned if a received data frame is longer
// than MaxDataLen.
var ErrFrameTooLarge = errors.New("p2p: frame too large")

// Conn implements a protocol connection. The writes are buffered and
// the buffers are written to the underlying connection by a writer
// goroutine.
type Conn struct {
	conn      io.ReadWriter
	writeBuf  []byte
	writePos  int
	readBuf   []byte
	readStart int
	readEnd   int
	Stats     IOStats

	fromWriter chan []byte
	toWriter   chan []byte
	writerErr  error
}

// IOStats implements I/O statistics.
type IOStats struct {
	Sent    *atomic.Uint64
	Recvd   *atomic.Uint64
	Flushed *atomic.Uint64
}

// NewIOStats creates a new I/O statistics object.
func NewIOStats() IOStats {
	return IOStats{
		Sent:    new(atomic.Uint64),
		Recvd:   new(atomic.Uint64),
		Flushed: new(atomic.Uint64),
	}
}

// Add adds the argument stats to this IOStats and returns the sum.
func (stats IOStats) Add(o IOStats) IOStats {
	result := NewIOStats()
	result.Sent.Store(stats.Sent.Load() + o.Sent.Load())
	result.Recvd.Store(stats.Recvd.Load() + o.Recvd.Load())
	result.Flushed.Store(stats.Flushed.Load() + o.Flushed.Load())
	return result
}

// Sum returns sum of sent and received bytes.
func (stats IOStats) Sum() uint64 {
	return stats.Sent.Load() + stats.Recvd.Load()
}

// NewConn creates a new connection around the argument connection.
func NewConn(conn io.ReadWriter) *Conn {
	c := &Conn{
		conn:       conn,
		readBuf:    make([]byte, readBufSize),
		fromWriter: make(chan []byte, numBuffers),
		toWriter:   make(chan []byte, numBuffers),
		Stats:      NewIOStats(),
	}

	go c.writer()

	c.writeBuf = <-c.fromWriter

	return c
}

func (c *Conn) writer() {
	for i := 0; i < numBuffers; i++ {
		c.fromWriter <- make([]byte, writeBufSize)
	}

	for buf := range c.toWriter {
		_, err := c.conn.Write(buf)
		if err != nil {
			c.writerErr = err
		}
		c.fromWriter <- buf[0:cap(buf)]
	}
	close(c.fromWriter)
}

// Flush flushes any pending data in the connection.
func (c *Conn) Flush() error {
	if c.writePos > 0 {
		c.Stats.Sent.Add(uint64(c.writePos))
		c.toWriter <- c.writeBuf[0:c.writePos]

		next := <-c.fromWriter
		if c.writerErr != nil {
			return c.writerErr
		}

		c.writeBuf = next
		c.writePos = 0
		c.Stats.Flushed.Add(1)
	}
	return nil
}

// needSpace ensures the write buffer has space for count bytes. The
// function flushes the output if needed.
func (c *Conn) needSpace(count int) error {
	if c.writePos+count > len(c.writeBuf) {
		return c.Flush()
	}
	return nil
}

// fill reads from the connection until the input buffer holds at
// least n unread bytes. Any unread data is moved to the beginning of
// the buffer.
func (c *Conn) fill(n int) error {
	if c.readStart < c.readEnd {
		copy(c.readBuf[0:], c.readBuf[c.readStart:c.readEnd])
		c.readEnd -= c.readStart
		c.readStart = 0
	} else {
		c.readStart = 0
		c.readEnd = 0
	}
	for c.readStart+n > c.readEnd {
		got, err := c.conn.Read(c.readBuf[c.readEnd:])
		c.Stats.Recvd.Add(uint64(got))
		c.readEnd += got
		if err != nil {
			if err == io.EOF && c.readStart+n <= c.readEnd {
				break
			}
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}
	return nil
}

// Close flushes any pending data and closes the connection.
func (c *Conn) Close() error {
	if err := c.Flush(); err != nil {
		return err
	}
	// Wait that flush completes.
	close(c.toWriter)
	for range c.fromWriter {
	}
	if c.writerErr != nil {
		return c.writerErr
	}
	closer, ok := c.conn.(io.Closer)
	if ok {
		return closer.Close()
	}
	return nil
}

// SendByte sends a byte value.
func (c *Conn) SendByte(val byte) error {
	if err := c.needSpace(1); err != nil {
		return err
	}
	c.writeBuf[c.writePos] = val
	c.writePos++
	return nil
}

// SendUint32 sends an uint32 value.
func (c *Conn) SendUint32(val uint32) error {
	if err := c.needSpace(4); err != nil {
		return err
	}
	c.writeBuf[c.writePos+0] = byte(val >> 24)
	c.writeBuf[c.writePos+1] = byte(val >> 16)
	c.writeBuf[c.writePos+2] = byte(val >> 8)
	c.writeBuf[c.writePos+3] = byte(val)
	c.writePos += 4
	return nil
}

// SendData sends binary data. Data larger than the write buffer is
// sent in buffer sized chunks.
func (c *Conn) SendData(val []byte) error {
	if len(val) > MaxDataLen {
		return ErrFrameTooLarge
	}
	if err := c.SendUint32(uint32(len(val))); err != nil {
		return err
	}
	for len(val) > 0 {
		if c.writePos >= len(c.writeBuf) {
			if err := c.Flush(); err != nil {
				return err
			}
		}
		n := copy(c.writeBuf[c.writePos:], val)
		c.writePos += n
		val = val[n:]
	}
	return nil
}

// SendInt sends a multi-precision integer as its sign byte followed
// by the big-endian magnitude.
func (c *Conn) SendInt(x mpint.Int) error {
	var sign byte
	if x.Sign() < 0 {
		sign = 1
	}
	if err := c.SendByte(sign); err != nil {
		return err
	}
	return c.SendData(x.Bytes())
}

// ReceiveByte receives a byte value.
func (c *Conn) ReceiveByte() (byte, error) {
	if c.readStart+1 > c.readEnd {
		if err := c.fill(1); err != nil {
			return 0, err
		}
	}
	val := c.readBuf[c.readStart]
	c.readStart++
	return val, nil
}

// ReceiveUint32 receives an uint32 value.
func (c *Conn) ReceiveUint32() (uint32, error) {
	if c.readStart+4 > c.readEnd {
		if err := c.fill(4); err != nil {
			return 0, err
		}
	}
	b := c.readBuf[c.readStart:]
	val := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 |
		uint32(b[3])
	c.readStart += 4

	return val, nil
}

// ReceiveData receives binary data.
func (c *Conn) ReceiveData() ([]byte, error) {
	l, err := c.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	if l > MaxDataLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, l)
	}
	result := make([]byte, l)

	// Consume buffered data and read the rest directly into the
	// result.
	n := copy(result, c.readBuf[c.readStart:c.readEnd])
	c.readStart += n
	if n < len(result) {
		got, err := io.ReadFull(c.conn, result[n:])
		c.Stats.Recvd.Add(uint64(got))
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ReceiveInt receives a multi-precision integer.
func (c *Conn) ReceiveInt() (mpint.Int, error) {
	sign, err := c.ReceiveByte()
	if err != nil {
		return mpint.Zero, err
	}
	if sign > 1 {
		return mpint.Zero, fmt.Errorf("p2p: invalid sign byte %d", sign)
	}
	data, err := c.ReceiveData()
	if err != nil {
		return mpint.Zero, err
	}
	x := mpint.FromBytes(data)
	if sign == 1 {
		x = x.Neg()
	}
	return x, nil
}
