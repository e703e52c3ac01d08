// Command keymon tails the key events a BitDogLab piano streams over its
// serial port (see examples/pianoserial). Each event is logged with its note
// name and can optionally be forwarded to a MIDI output, which turns the
// keypad into a sixteen-key controller.
//
// Usage:
//
//	keymon -serial /dev/ttyACM0 [-midi] [-port Synth] [-debug]
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/luisfpatrocinio/bitdog-keyboard-piano/wire"
)

// logger is the package-wide structured logger. Safe to use before initLogger
// is called; defaults to slog.Default().
var logger = slog.Default()

// initLogger configures the shared slog logger and calls slog.SetDefault so
// the stdlib log package also routes through the same handler.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug, // include file:line in debug mode
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

// noteGate is how long a forwarded MIDI note is held. It matches the tone
// duration the firmware plays per key.
const noteGate = 200 * time.Millisecond

func main() {
	debug := flag.Bool("debug", false, "enable debug logging (adds source location)")
	serialDev := flag.String("serial", "/dev/ttyACM0", "serial port device")
	baud := flag.Int("baud", 115200, "serial baud rate")
	forward := flag.Bool("midi", false, "forward key events to a MIDI output")
	midiPort := flag.String("port", "", "MIDI output name substring (empty picks the first real port)")
	flag.Parse()

	initLogger(*debug)
	logger.Info("keymon starting", "serial", *serialDev, "baud", *baud, "midi", *forward)

	sp := OpenSerial(*serialDev, *baud)
	defer sp.Close()

	var out *MIDIOut
	if *forward {
		o, err := OpenMIDIOut(*midiPort)
		if err != nil {
			logger.Warn("midi: output unavailable, logging only", "err", err)
		} else {
			out = o
			defer out.Close()
		}
	}

	var dec wire.Decoder
	dropped := 0
	buf := make([]byte, 64)
	for {
		n, err := sp.Read(buf)
		if err != nil {
			logger.Error("serial: read failed", "err", err)
			os.Exit(1)
		}
		if n == 0 {
			logger.Info("serial: port closed")
			return
		}
		for _, ev := range dec.Feed(buf[:n]) {
			key := midiKey(ev.Freq)
			logger.Info("key",
				"row", ev.Row,
				"col", ev.Col,
				"freq_hz", ev.Freq,
				"note", pitchName(key),
				"seq", ev.Seq,
			)
			if out != nil {
				out.Note(key, noteGate)
			}
		}
		if dec.Dropped > dropped {
			logger.Debug("serial: frames dropped", "count", dec.Dropped-dropped, "total", dec.Dropped)
			dropped = dec.Dropped
		}
	}
}
