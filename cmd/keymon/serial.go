package main

import (
	"os"

	"go.bug.st/serial"
)

// SerialPort wraps a go.bug.st/serial port opened for reading key events.
type SerialPort struct {
	port serial.Port
}

// OpenSerial opens the named serial device at the given baud rate.
// Exits the process on error.
func OpenSerial(name string, baud int) *SerialPort {
	mode := &serial.Mode{BaudRate: baud}
	p, err := serial.Open(name, mode)
	if err != nil {
		logger.Error("serial: failed to open port", "device", name, "baud", baud, "err", err)
		os.Exit(1)
	}
	logger.Info("serial: port opened", "device", name, "baud", baud)
	return &SerialPort{port: p}
}

// Read fills p with whatever bytes the port has, blocking until at least one
// arrives. A zero count with a nil error means the port is gone.
func (s *SerialPort) Read(p []byte) (int, error) {
	return s.port.Read(p)
}

// Close closes the underlying serial port.
func (s *SerialPort) Close() {
	logger.Info("serial: closing port")
	_ = s.port.Close()
}
