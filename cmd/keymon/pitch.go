package main

import (
	"fmt"
	"math"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// midiKey converts a frequency in hertz to the nearest MIDI key number,
// A4 = 440 Hz = key 69. The result is clamped to the 0..127 key range and a
// rest (0 Hz) maps to key 0.
func midiKey(freq uint16) uint8 {
	if freq == 0 {
		return 0
	}
	k := math.Round(69 + 12*math.Log2(float64(freq)/440))
	if k < 0 {
		return 0
	}
	if k > 127 {
		return 127
	}
	return uint8(k)
}

// pitchName renders a MIDI key as a note name, C4 for middle C.
func pitchName(key uint8) string {
	return fmt.Sprintf("%s%d", noteNames[key%12], int(key)/12-1)
}
