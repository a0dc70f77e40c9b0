// Package escpos builds raw ESC/POS command streams for thermal receipt
// printers. An Encoder is single-use: build the receipt with the chained
// methods, call Encode once, then discard it.
package escpos

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Alignment byte

const (
	AlignLeft   Alignment = 0x00
	AlignCenter Alignment = 0x01
	AlignRight  Alignment = 0x02
)

// stripMarks decomposes text and removes combining marks, so "pão" prints
// as "pao" on printers without a Latin code page. Lossy on purpose:
// diacritic-bearing input does not round-trip.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

type Encoder struct {
	buf []byte
}

// New returns an Encoder with the initialize command already emitted.
// ESC @ must be the first bytes the printer sees.
func New() *Encoder {
	e := &Encoder{}
	return e.Initialize()
}

// Initialize resets the printer state (ESC @) and restarts the buffer.
func (e *Encoder) Initialize() *Encoder {
	e.buf = []byte{0x1b, 0x40}
	return e
}

// Codepage selects CP860 (ESC t 3), the usual choice for Portuguese text on
// western-market printers.
func (e *Encoder) Codepage() *Encoder {
	e.buf = append(e.buf, 0x1b, 0x74, 0x03)
	return e
}

// Align sets the justification (ESC a n) for all following lines.
func (e *Encoder) Align(a Alignment) *Encoder {
	e.buf = append(e.buf, 0x1b, 0x61, byte(a))
	return e
}

// Bold toggles emphasis (ESC E n) for all following lines.
func (e *Encoder) Bold(on bool) *Encoder {
	n := byte(0x00)
	if on {
		n = 0x01
	}
	e.buf = append(e.buf, 0x1b, 0x45, n)
	return e
}

// Line appends one text line followed by a line feed. Combining marks are
// stripped and any rune still outside printable ASCII is replaced with '?'.
func (e *Encoder) Line(text string) *Encoder {
	clean, _, err := transform.String(stripMarks, text)
	if err != nil {
		clean = text
	}
	for _, r := range clean {
		if r < 0x20 || r > 0x7e {
			e.buf = append(e.buf, '?')
			continue
		}
		e.buf = append(e.buf, byte(r))
	}
	e.buf = append(e.buf, 0x0a)
	return e
}

// Encode appends the trailing paper feed and returns the finished stream.
func (e *Encoder) Encode() []byte {
	out := make([]byte, 0, len(e.buf)+3)
	out = append(out, e.buf...)
	out = append(out, 0x0a, 0x0a, 0x0a)
	return out
}
