package buzzer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pwmSet struct {
	channel uint8
	value   uint32
}

// fakePWM records every period and duty-cycle write.
type fakePWM struct {
	top       uint32
	periods   []uint64
	sets      []pwmSet
	periodErr error
}

func (p *fakePWM) SetPeriod(period uint64) error {
	if p.periodErr != nil {
		return p.periodErr
	}
	p.periods = append(p.periods, period)
	return nil
}

func (p *fakePWM) Top() uint32 {
	return p.top
}

func (p *fakePWM) Set(channel uint8, value uint32) {
	p.sets = append(p.sets, pwmSet{channel: channel, value: value})
}

func TestTone(t *testing.T) {
	pwm := &fakePWM{top: 1000}
	d := New(pwm, 5)

	err := d.Tone(262, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, []uint64{3816793}, pwm.periods, "period should be 1e9/262 ns")
	assert.Equal(t, []pwmSet{{5, 500}, {5, 0}}, pwm.sets, "half duty, then silence")
}

func TestToneRest(t *testing.T) {
	pwm := &fakePWM{top: 1000}
	d := New(pwm, 0)

	err := d.Tone(0, time.Millisecond)

	require.NoError(t, err)
	assert.Empty(t, pwm.periods, "a rest should not touch the period")
	assert.Equal(t, []pwmSet{{0, 0}}, pwm.sets)
}

func TestTonePropagatesPWMError(t *testing.T) {
	boom := errors.New("period out of range")
	pwm := &fakePWM{top: 1000, periodErr: boom}
	d := New(pwm, 0)

	err := d.Tone(440, time.Millisecond)

	require.ErrorIs(t, err, boom)
	assert.Empty(t, pwm.sets, "the channel should stay untouched after a period error")
}

func TestPlayKeepsMelodyOrder(t *testing.T) {
	pwm := &fakePWM{top: 2000}
	d := New(pwm, 1)
	m := Melody{
		{Freq: 262, Duration: time.Millisecond},
		{Freq: 0, Duration: time.Millisecond},
		{Freq: 330, Duration: time.Millisecond},
	}

	err := d.Play(m)

	require.NoError(t, err)
	assert.Equal(t, []uint64{3816793, 3030303}, pwm.periods)
	assert.Equal(t, []pwmSet{
		{1, 1000}, {1, 0}, // first note
		{1, 0},            // rest
		{1, 1000}, {1, 0}, // last note
	}, pwm.sets)
}

func TestStop(t *testing.T) {
	pwm := &fakePWM{top: 1000}
	d := New(pwm, 3)

	d.Stop()

	assert.Equal(t, []pwmSet{{3, 0}}, pwm.sets)
}
