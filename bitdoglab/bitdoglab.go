//go:build rp2040

// Package bitdoglab names the fixed wiring of the BitDogLab educational
// board, a Raspberry Pi Pico carrier with a 4x4 matrix keypad header, a
// passive buzzer and an RGB LED among its peripherals.
//
// Board: https://github.com/BitDogLab/BitDogLab
package bitdoglab

import "machine"

// Keypad matrix header. Rows are driven as outputs, columns are read as
// pulled-down inputs, ordered top to bottom and left to right as printed
// on the keypad.
var (
	KeypadRows = [4]machine.Pin{machine.GP4, machine.GP8, machine.GP9, machine.GP16}
	KeypadCols = [4]machine.Pin{machine.GP17, machine.GP18, machine.GP19, machine.GP20}
)

// Buzzer A. GP21 sits on PWM slice 2, channel B.
const Buzzer = machine.GP21

// BuzzerPWM is the PWM slice wired to Buzzer.
var BuzzerPWM = machine.PWM2

// RGB LED, one pin per color.
const (
	LEDRed   = machine.GP13
	LEDGreen = machine.GP11
	LEDBlue  = machine.GP12
)
