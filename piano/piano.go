// Package piano turns a 4x4 matrix keypad into a sixteen-key toy piano.
//
// Each key maps to a fixed note frequency (C4 up to D6) sounded on a buzzer.
// The Player ties a keypad scanner and a tone player together: play a welcome
// melody once, then poll the keypad forever and sound the matching note for
// every press.
package piano

import (
	"errors"
	"time"

	"github.com/luisfpatrocinio/bitdog-keyboard-piano/buzzer"
	"github.com/luisfpatrocinio/bitdog-keyboard-piano/notes"
)

// ErrBadKey is returned by Frequency for indices outside the 4x4 matrix.
var ErrBadKey = errors.New("piano: key out of range")

const (
	defaultToneDuration = 200 * time.Millisecond
	defaultPollInterval = 10 * time.Millisecond
)

// keyTones maps each (row, col) key to its note. Left to right, top to
// bottom: C4 D4 E4 F4 / G4 A4 B4 C5 / D5 E5 F5 G5 / A5 B5 C6 D6.
var keyTones = [4][4]uint16{
	{notes.C4, notes.D4, notes.E4, notes.F4},
	{notes.G4, notes.A4, notes.B4, notes.C5},
	{notes.D5, notes.E5, notes.F5, notes.G5},
	{notes.A5, notes.B5, notes.C6, notes.D6},
}

// Frequency returns the note frequency in hertz for one key of the matrix.
// Row and column must both be in [0,3]; anything else returns ErrBadKey.
func Frequency(row, col int) (uint16, error) {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return 0, ErrBadKey
	}
	return keyTones[row][col], nil
}

// Scanner reports the first pressed key of a keypad scan, if any.
type Scanner interface {
	Scan() (row, col int, ok bool)
}

// TonePlayer sounds a single blocking tone. A zero frequency is a rest.
type TonePlayer interface {
	Tone(freq uint16, duration time.Duration) error
}

// StatusLED is an optional indicator lit while a key's tone plays.
// machine.Pin satisfies it.
type StatusLED interface {
	High()
	Low()
}

// Config wires a Player to its devices. Keypad and Tone are required,
// everything else has a default.
type Config struct {
	Keypad Scanner
	Tone   TonePlayer

	// Status, when set, is lit for the duration of every key tone.
	Status StatusLED

	// OnKey, when set, is called with each handled key and its frequency
	// before the tone sounds. The serial example streams events to a host
	// from here; keep it quick, it runs on the polling loop.
	OnKey func(row, col int, freq uint16)

	// Welcome is played once before polling starts. Defaults to a single
	// 262 Hz tone of ToneDuration.
	Welcome buzzer.Melody

	// ToneDuration is how long each key's note sounds. Defaults to 200 ms.
	ToneDuration time.Duration

	// PollInterval is the idle sleep between scan passes. Defaults to 10 ms.
	PollInterval time.Duration
}

// Player runs the demo: welcome melody first, then scan and play forever.
type Player struct {
	keypad       Scanner
	tone         TonePlayer
	status       StatusLED
	onKey        func(row, col int, freq uint16)
	welcome      buzzer.Melody
	toneDuration time.Duration
	pollInterval time.Duration
}

// New builds a Player from the config, filling in defaults. The keypad pins
// and the buzzer PWM must already be configured.
func New(cfg Config) Player {
	if cfg.ToneDuration == 0 {
		cfg.ToneDuration = defaultToneDuration
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.Welcome == nil {
		cfg.Welcome = buzzer.Melody{{Freq: notes.C4, Duration: cfg.ToneDuration}}
	}
	return Player{
		keypad:       cfg.Keypad,
		tone:         cfg.Tone,
		status:       cfg.Status,
		onKey:        cfg.OnKey,
		welcome:      cfg.Welcome,
		toneDuration: cfg.ToneDuration,
		pollInterval: cfg.PollInterval,
	}
}

// Start plays the welcome melody. It runs once, before any key tone.
func (p *Player) Start() error {
	for _, n := range p.welcome {
		if err := p.tone.Tone(n.Freq, n.Duration); err != nil {
			return err
		}
	}
	return nil
}

// Poll runs one polling pass: scan the keypad once and, if a key is held,
// play its note, lighting the status LED for the duration when one is
// present. It reports whether a key was handled.
func (p *Player) Poll() (bool, error) {
	row, col, ok := p.keypad.Scan()
	if !ok {
		return false, nil
	}
	freq, err := Frequency(row, col)
	if err != nil {
		return false, err
	}
	if p.onKey != nil {
		p.onKey(row, col, freq)
	}
	if p.status != nil {
		p.status.High()
	}
	err = p.tone.Tone(freq, p.toneDuration)
	if p.status != nil {
		p.status.Low()
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Run plays the welcome melody, then polls forever with a fixed idle sleep
// between passes. On healthy hardware it never returns; an error from the
// tone player or the key lookup stops the loop so the caller can halt
// visibly instead of carrying on silent.
func (p *Player) Run() error {
	if err := p.Start(); err != nil {
		return err
	}
	for {
		if _, err := p.Poll(); err != nil {
			return err
		}
		time.Sleep(p.pollInterval)
	}
}
