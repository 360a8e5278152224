// Package softspi is a GPIO bit-banged SPI master for wirings the hardware
// block cannot reach. It is mode-complete (all CPOL/CPHA combinations) and
// slow; prefer the hardware driver whenever the pins allow it.
package softspi

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

const fillByte = 0xFF

// Pin is the one GPIO capability bit-banging needs. machine.Pin satisfies
// it directly; host tests use fakes.
type Pin interface {
	Set(high bool)
	Get() bool
}

// SPI bit-bangs the SPI protocol over three GPIO lines. Pins must already
// be configured (SCK, SDO as outputs, SDI as input) before Configure.
type SPI struct {
	SCK Pin
	SDI Pin // data in (MISO)
	SDO Pin // data out (MOSI)

	// CPOL is the idle clock level, CPHA selects the sampling edge,
	// matching the hardware driver's polarity/phase pair.
	CPOL bool
	CPHA bool

	// HalfPeriod is the time between clock edges; zero means flat out.
	HalfPeriod time.Duration
}

var _ drivers.SPI = (*SPI)(nil)

// Configure parks the bus in its idle state.
func (s *SPI) Configure() {
	s.SCK.Set(s.CPOL)
	s.SDO.Set(false)
}

// Transfer exchanges one byte, MSB first. The error is always nil.
func (s *SPI) Transfer(b byte) (byte, error) {
	return s.transfer(b), nil
}

// Tx mirrors the hardware driver's buffer semantics: equal-length duplex,
// write-only with r nil, read-only against the filler byte with w nil.
func (s *SPI) Tx(w, r []byte) error {
	switch {
	case len(w) == len(r):
		for i, b := range w {
			r[i] = s.transfer(b)
		}
	case len(r) == 0:
		for _, b := range w {
			s.transfer(b)
		}
	case len(w) == 0:
		for i := range r {
			r[i] = s.transfer(fillByte)
		}
	default:
		return errors.New("softspi: tx and rx buffer length mismatch")
	}
	return nil
}

func (s *SPI) transfer(b byte) byte {
	var in byte
	for bit := 7; bit >= 0; bit-- {
		s.SDO.Set(b&(1<<bit) != 0)
		s.delay()

		s.SCK.Set(!s.CPOL) // leading edge
		s.delay()
		if !s.CPHA {
			if s.SDI.Get() {
				in |= 1 << bit
			}
		}

		s.SCK.Set(s.CPOL) // trailing edge
		s.delay()
		if s.CPHA {
			if s.SDI.Get() {
				in |= 1 << bit
			}
		}
	}
	return in
}

func (s *SPI) delay() {
	if s.HalfPeriod > 0 {
		time.Sleep(s.HalfPeriod)
	}
}
