// Package keypad4x4 provides a driver for a 4x4 matrix keypad wired straight
// to GPIO pins.
//
// The matrix has four row (line) pins driven as outputs and four column pins
// read as inputs with pull-down resistors. Pressing a key connects the active
// row to its column, so the column reads high while the key is held.
package keypad4x4

import (
	"time"
)

// Rows and Cols give the fixed matrix dimensions.
const (
	Rows = 4
	Cols = 4
)

// releasePollInterval paces the level polls while waiting for a key release.
const releasePollInterval = time.Millisecond

// RowPin drives one matrix row line.
type RowPin interface {
	High()
	Low()
}

// ColPin senses one matrix column line.
type ColPin interface {
	Get() bool
}

// Device wraps the row and column pins of a 4x4 matrix keypad.
type Device struct {
	rows [Rows]RowPin
	cols [Cols]ColPin
}

// New creates a new keypad from its row and column pins. The pins must
// already be configured: rows as outputs driven low, columns as inputs with
// pull-down.
//
// This function only creates the Device object, it does not touch the
// hardware. On a TinyGo target, Configure does the pin setup and calls New.
func New(rows [Rows]RowPin, cols [Cols]ColPin) Device {
	return Device{
		rows: rows,
		cols: cols,
	}
}

// Scan walks the matrix once and reports the first pressed key in row-major
// order. Rows are driven high one at a time; the first column that reads
// high wins and the rest of the matrix is not visited. Before reporting,
// Scan blocks until that column reads low again (level-based release wait,
// the row still driven), so one physical press yields exactly one key. The
// active row is driven low again before returning.
//
// Scan returns ok == false if no key is pressed on any row.
func (d *Device) Scan() (row, col int, ok bool) {
	for r := 0; r < Rows; r++ {
		d.rows[r].High()
		for c := 0; c < Cols; c++ {
			if d.cols[c].Get() {
				d.waitRelease(c)
				d.rows[r].Low()
				return r, c, true
			}
		}
		d.rows[r].Low()
	}
	return 0, 0, false
}

// waitRelease polls the column until the key is let go. Assumes a single key
// is held; a different key pressed during the wait is not seen until the
// next scan.
func (d *Device) waitRelease(col int) {
	for d.cols[col].Get() {
		time.Sleep(releasePollInterval)
	}
}
