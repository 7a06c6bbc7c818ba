//
// conv.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"fmt"
	"strings"

	"github.com/markkurossi/mpint/pkg/math"
)

// FromBytes creates a non-negative Int from the big-endian byte
// buffer data.
func FromBytes(data []byte) Int {
	z := makeNat((len(data) + math.WordBytes - 1) / math.WordBytes)
	var i int
	for end := len(data); end > 0; end -= math.WordBytes {
		start := end - math.WordBytes
		if start < 0 {
			start = 0
		}
		var d uint32
		for _, b := range data[start:end] {
			d = d<<8 | uint32(b)
		}
		z[i] = d
		i++
	}
	return makeInt(false, z)
}

// Bytes returns the magnitude of x as a big-endian byte buffer
// without leading zero bytes. The result for zero is an empty buffer.
func (x Int) Bytes() []byte {
	return x.AppendBytes(nil)
}

// AppendBytes appends the magnitude of x as big-endian bytes to dst
// and returns the extended buffer.
func (x Int) AppendBytes(dst []byte) []byte {
	abs := x.mag().norm()
	started := false
	for i := len(abs) - 1; i >= 0; i-- {
		d := abs[i]
		for shift := math.WordBits - 8; shift >= 0; shift -= 8 {
			b := byte(d >> uint(shift))
			if b == 0 && !started {
				continue
			}
			started = true
			dst = append(dst, b)
		}
	}
	return dst
}

// FillBytes sets buf to the magnitude of x as a zero-padded
// big-endian byte buffer and returns buf. The function returns
// ErrShortBuffer if the value does not fit into buf.
func (x Int) FillBytes(buf []byte) ([]byte, error) {
	n := x.ByteLen()
	if n > len(buf) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d",
			ErrShortBuffer, n, len(buf))
	}
	pad := len(buf) - n
	for i := 0; i < pad; i++ {
		buf[i] = 0
	}
	x.AppendBytes(buf[pad:pad])
	return buf, nil
}

// Parse parses the hexadecimal string s. The string can have an
// optional leading '-' and an optional "0x" or "0X" prefix, and it
// can mix upper and lower case digits.
func Parse(s string) (Int, error) {
	str := s
	var neg bool
	if strings.HasPrefix(str, "-") {
		neg = true
		str = str[1:]
	}
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		str = str[2:]
	}
	if len(str) == 0 {
		return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	const nibbles = math.WordBits / 4

	z := makeNat((len(str) + nibbles - 1) / nibbles)
	var i int
	for end := len(str); end > 0; end -= nibbles {
		start := end - nibbles
		if start < 0 {
			start = 0
		}
		var d uint32
		for _, ch := range []byte(str[start:end]) {
			v, ok := hexValue(ch)
			if !ok {
				return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
			}
			d = d<<4 | v
		}
		z[i] = d
		i++
	}
	return makeInt(neg, z), nil
}

// MustParse is like Parse but panics if the string can't be parsed.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

func hexValue(ch byte) (uint32, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return uint32(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return uint32(ch-'a') + 10, true
	case 'A' <= ch && ch <= 'F':
		return uint32(ch-'A') + 10, true
	default:
		return 0, false
	}
}

// Text returns the hexadecimal representation of x with upper or
// lower case digits. Negative values have a leading '-'. The result
// has no "0x" prefix.
func (x Int) Text(upper bool) string {
	format := "%08x"
	if upper {
		format = "%08X"
	}
	abs := x.mag().norm()

	var sb strings.Builder
	for i := len(abs) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, format, abs[i])
	}
	str := strings.TrimLeft(sb.String(), "0")
	if len(str) == 0 {
		return "0"
	}
	if x.neg {
		return "-" + str
	}
	return str
}

func (x Int) String() string {
	return x.Text(false)
}

// Decimal returns the decimal representation of x.
func (x Int) Decimal() string {
	const (
		chunk  = 1000000000
		digits = 9
	)
	abs := x.mag().norm()
	if abs.isZero() {
		return "0"
	}
	var parts []uint32
	for !abs.isZero() {
		var r uint32
		abs, r = divDigit(abs, chunk)
		parts = append(parts, r)
	}
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, "%d", parts[len(parts)-1])
	for i := len(parts) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%0*d", digits, parts[i])
	}
	return sb.String()
}

// Format implements fmt.Formatter. The verbs 'x', 'X', 's', and 'v'
// print hexadecimal and 'd' prints decimal. The '#' flag adds the
// "0x" prefix to hexadecimal output.
func (x Int) Format(f fmt.State, verb rune) {
	var str string
	switch verb {
	case 'x', 's', 'v':
		str = x.Text(false)
	case 'X':
		str = x.Text(true)
	case 'd':
		str = x.Decimal()
	default:
		fmt.Fprintf(f, "%%!%c(mpint.Int=%s)", verb, x.Text(false))
		return
	}
	if f.Flag('#') && verb != 'd' {
		if strings.HasPrefix(str, "-") {
			str = "-0x" + str[1:]
		} else {
			str = "0x" + str
		}
	}
	if width, ok := f.Width(); ok && len(str) < width {
		pad := strings.Repeat(" ", width-len(str))
		if f.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}
	f.Write([]byte(str))
}
