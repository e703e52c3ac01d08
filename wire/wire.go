// Package wire frames keypad key events for a serial link between the board
// and a host.
//
// Frames are fixed size and delimited by a two-byte start marker:
//
//	[SOF0][SOF1][LEN][CMD][row][col][freq hi][freq lo][seq][crc hi][crc lo]
//
// LEN counts the CMD byte plus the payload. The CRC-16 (CCITT-FALSE) covers
// LEN, CMD and the payload. Everything multi-byte is big-endian.
package wire

import "github.com/sigurn/crc16"

const (
	SOF0 = 0xAA
	SOF1 = 0x55

	// CmdKeyEvent is the only frame type: one keypad press.
	CmdKeyEvent = 0x10
)

const (
	payloadLen = 5 // row, col, freq hi, freq lo, seq
	frameLen   = 2 + 1 + 1 + payloadLen + 2
)

var crcTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// KeyEvent is one reported keypad press.
type KeyEvent struct {
	Row  uint8
	Col  uint8
	Freq uint16 // note frequency in hertz
	Seq  uint8  // wraps around; lets the host spot dropped frames
}

// Encode builds the on-wire representation of the event.
func (e *KeyEvent) Encode() []byte {
	out := make([]byte, 0, frameLen)
	out = append(out, SOF0, SOF1, payloadLen+1, CmdKeyEvent)
	out = append(out, e.Row, e.Col, byte(e.Freq>>8), byte(e.Freq), e.Seq)
	crc := crc16.Checksum(out[2:], crcTable)
	out = append(out, byte(crc>>8), byte(crc))
	return out
}

// Decoder reassembles KeyEvents from a raw serial byte stream. It hunts for
// the start marker, so garbage between frames is skipped, and it drops
// frames whose header or CRC does not check out.
type Decoder struct {
	buf [frameLen]byte
	n   int

	// Dropped counts frames discarded for a bad header or CRC.
	Dropped int
}

// Feed consumes a chunk of bytes and returns the key events completed by it.
// Partial frames are kept across calls, so the chunking of the input does
// not matter.
func (d *Decoder) Feed(data []byte) []KeyEvent {
	var out []KeyEvent
	for _, b := range data {
		if ev, ok := d.feedByte(b); ok {
			out = append(out, ev)
		}
	}
	return out
}

func (d *Decoder) feedByte(b byte) (ev KeyEvent, ok bool) {
	switch d.n {
	case 0:
		if b != SOF0 {
			return ev, false
		}
	case 1:
		if b != SOF1 {
			d.resync(b)
			return ev, false
		}
	case 2:
		if b != payloadLen+1 {
			d.Dropped++
			d.resync(b)
			return ev, false
		}
	case 3:
		if b != CmdKeyEvent {
			d.Dropped++
			d.resync(b)
			return ev, false
		}
	}
	d.buf[d.n] = b
	d.n++
	if d.n < frameLen {
		return ev, false
	}
	d.n = 0
	want := uint16(d.buf[frameLen-2])<<8 | uint16(d.buf[frameLen-1])
	if crc16.Checksum(d.buf[2:frameLen-2], crcTable) != want {
		d.Dropped++
		return ev, false
	}
	return KeyEvent{
		Row:  d.buf[4],
		Col:  d.buf[5],
		Freq: uint16(d.buf[6])<<8 | uint16(d.buf[7]),
		Seq:  d.buf[8],
	}, true
}

// resync restarts the frame hunt, keeping lock if the offending byte could
// itself start a new frame.
func (d *Decoder) resync(b byte) {
	d.n = 0
	if b == SOF0 {
		d.n = 1
	}
}
