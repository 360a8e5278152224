// Package serial is the host-side serial port used to talk to a board
// running the loopback self-test firmware.
package serial

import (
	"io"
)

// Port is a byte stream to the device under test. The interface keeps the
// harness testable with an in-memory fake.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate. Ignored by USB CDC consoles.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig matches the console settings of the example firmware.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500,
	}
}
