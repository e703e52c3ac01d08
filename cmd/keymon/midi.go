package main

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// excludedPatterns: virtual/system ports that are never picked by default.
var excludedPatterns = []string{"Midi Through", "Through Port", "Dummy"}

// MIDIOut holds one open MIDI output port.
type MIDIOut struct {
	drv  *rtmididrv.Driver
	port drivers.Out
	send func(midi.Message) error
}

// OpenMIDIOut opens the first MIDI output whose name contains the given
// substring, case-insensitive. With an empty substring it picks the first
// port that is not a virtual through port.
func OpenMIDIOut(name string) (*MIDIOut, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}
	outs, err := drv.Outs()
	if err != nil {
		drv.Close()
		return nil, err
	}
	var found drivers.Out
	for _, out := range outs {
		if name != "" {
			if containsCI(out.String(), name) {
				found = out
				break
			}
			continue
		}
		if !excluded(out.String()) {
			found = out
			break
		}
	}
	if found == nil {
		drv.Close()
		return nil, fmt.Errorf("no MIDI output matching %q", name)
	}
	if err := found.Open(); err != nil {
		drv.Close()
		return nil, fmt.Errorf("open %q: %w", found.String(), err)
	}
	send, err := midi.SendTo(found)
	if err != nil {
		_ = found.Close()
		drv.Close()
		return nil, err
	}
	logger.Info("midi: connected", "device", found.String())
	return &MIDIOut{drv: drv, port: found, send: send}, nil
}

// Note sends one key as a note on / note off pair, holding it for the gate
// time. The firmware paces key events by its own blocking tone, so blocking
// here keeps the monitor in step without a scheduler.
func (m *MIDIOut) Note(key uint8, gate time.Duration) {
	if err := m.send(midi.NoteOn(0, key, 100)); err != nil {
		logger.Warn("midi: note on failed", "key", key, "err", err)
		return
	}
	time.Sleep(gate)
	if err := m.send(midi.NoteOff(0, key)); err != nil {
		logger.Warn("midi: note off failed", "key", key, "err", err)
	}
}

// Close shuts the port and the driver down.
func (m *MIDIOut) Close() {
	_ = m.port.Close()
	m.drv.Close()
}

func excluded(name string) bool {
	for _, pat := range excludedPatterns {
		if containsCI(name, pat) {
			return true
		}
	}
	return false
}

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
