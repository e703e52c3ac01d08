// Package buzzer provides a driver for a passive piezo buzzer on a PWM pin.
//
// A tone is produced by setting the PWM period to the note's wavelength and
// holding a 50% duty cycle for the note's duration.
package buzzer

import (
	"time"
)

// PWM is the slice of the machine PWM group API the driver needs. It is
// narrow on purpose so tests can supply a fake.
type PWM interface {
	SetPeriod(period uint64) error
	Top() uint32
	Set(channel uint8, value uint32)
}

// Note is one step of a melody. A zero frequency is a rest.
type Note struct {
	Freq     uint16 // hertz
	Duration time.Duration
}

// Melody is a fixed sequence of notes played back to back.
type Melody []Note

// Device wraps one channel of a PWM peripheral driving the buzzer.
type Device struct {
	pwm     PWM
	channel uint8
}

// New creates a new buzzer on the given PWM channel. The PWM peripheral must
// already be configured.
//
// This function only creates the Device object, it does not touch the
// hardware. On a TinyGo target, Configure does the PWM setup and calls New.
func New(pwm PWM, channel uint8) Device {
	return Device{
		pwm:     pwm,
		channel: channel,
	}
}

// Tone plays a single frequency for the given duration, blocking until it
// has finished, then silences the buzzer. A zero frequency rests for the
// duration instead.
func (d *Device) Tone(freq uint16, duration time.Duration) error {
	if freq == 0 {
		d.Stop()
		time.Sleep(duration)
		return nil
	}
	if err := d.pwm.SetPeriod(uint64(1e9) / uint64(freq)); err != nil {
		return err
	}
	d.pwm.Set(d.channel, d.pwm.Top()/2)
	time.Sleep(duration)
	d.Stop()
	return nil
}

// Play sounds each note of the melody in order, blocking until done.
func (d *Device) Play(m Melody) error {
	for _, n := range m {
		if err := d.Tone(n.Freq, n.Duration); err != nil {
			return err
		}
	}
	return nil
}

// Stop silences the buzzer immediately.
func (d *Device) Stop() {
	d.pwm.Set(d.channel, 0)
}
