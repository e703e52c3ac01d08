// Package notes provides musical note frequencies for driving a buzzer.
//
// Values are equal-temperament frequencies rounded to the nearest whole
// hertz, matching the classic Arduino pitches.h table. Sharps are spelled
// with an S (CS4 is C#4).
package notes

// Rest is a silent "note" for pauses inside a melody.
const Rest = 0

// Octave 2.
const (
	C2  = 65
	CS2 = 69
	D2  = 73
	DS2 = 78
	E2  = 82
	F2  = 87
	FS2 = 93
	G2  = 98
	GS2 = 104
	A2  = 110
	AS2 = 117
	B2  = 123
)

// Octave 3.
const (
	C3  = 131
	CS3 = 139
	D3  = 147
	DS3 = 156
	E3  = 165
	F3  = 175
	FS3 = 185
	G3  = 196
	GS3 = 208
	A3  = 220
	AS3 = 233
	B3  = 247
)

// Octave 4. A4 is concert pitch.
const (
	C4  = 262
	CS4 = 277
	D4  = 294
	DS4 = 311
	E4  = 330
	F4  = 349
	FS4 = 370
	G4  = 392
	GS4 = 415
	A4  = 440
	AS4 = 466
	B4  = 494
)

// Octave 5.
const (
	C5  = 523
	CS5 = 554
	D5  = 587
	DS5 = 622
	E5  = 659
	F5  = 698
	FS5 = 740
	G5  = 784
	GS5 = 831
	A5  = 880
	AS5 = 932
	B5  = 988
)

// Octave 6.
const (
	C6  = 1047
	CS6 = 1109
	D6  = 1175
	DS6 = 1245
	E6  = 1319
	F6  = 1397
	FS6 = 1480
	G6  = 1568
	GS6 = 1661
	A6  = 1760
	AS6 = 1865
	B6  = 1976
)

// Octave 7.
const (
	C7  = 2093
	CS7 = 2217
	D7  = 2349
	DS7 = 2489
	E7  = 2637
	F7  = 2794
	FS7 = 2960
	G7  = 3136
	GS7 = 3322
	A7  = 3520
	AS7 = 3729
	B7  = 3951
)
