//go:build tinygo

package keypad4x4

import "machine"

// MatrixConfig binds a keypad to its physical pins.
type MatrixConfig struct {
	Rows [Rows]machine.Pin // driven high one at a time during a scan
	Cols [Cols]machine.Pin // read back; idle low through the internal pull-down
}

// Configure sets up the matrix pins (rows as outputs driven low, columns as
// pull-down inputs) and returns a ready scanner. Call it once before
// scanning; the machine pin API has no failure path.
func Configure(cfg MatrixConfig) Device {
	var rows [Rows]RowPin
	var cols [Cols]ColPin
	for i, p := range cfg.Rows {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
		rows[i] = p
	}
	for i, p := range cfg.Cols {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
		cols[i] = p
	}
	return New(rows, cols)
}
