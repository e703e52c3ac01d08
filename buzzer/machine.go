//go:build tinygo

package buzzer

import "machine"

// MachinePWM matches the machine package's PWM groups (machine.PWM0 and
// friends) so Configure can accept any of them.
type MachinePWM interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (channel uint8, err error)
	SetPeriod(period uint64) error
	Top() uint32
	Set(channel uint8, value uint32)
}

// Configure sets up the PWM group for the buzzer pin and returns a ready
// Device. The group must be the one covering the pin; on the RP2040, GPIO21
// belongs to PWM2.
func Configure(pwm MachinePWM, pin machine.Pin) (Device, error) {
	if err := pwm.Configure(machine.PWMConfig{}); err != nil {
		return Device{}, err
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return Device{}, err
	}
	return New(pwm, ch), nil
}
