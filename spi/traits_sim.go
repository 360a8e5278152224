//go:build !stm32f103 && !stm32f4

package spi

import "sync"

// Simulation personality for builds without a supported chip family —
// host `go test` in particular. Register blocks live in RAM and the pin
// driver records requested modes instead of touching hardware. The wiring
// and conventions mirror the F1 tables so the same test expectations hold
// on real silicon.

var (
	sim1, sim2, sim3 spiRegs

	simRCC struct {
		apb2enr reg32
		apb1enr reg32
	}
	simAFIO struct {
		mapr reg32
	}
)

const (
	apb2enrSPI1EN = 1 << 12
	apb1enrSPI2EN = 1 << 14
	apb1enrSPI3EN = 1 << 15

	maprSPI1Remap = 1 << 0
	maprSPI3Remap = 1 << 28
)

func lookupTraits(inst Instance) (traitRow, bool) {
	switch inst {
	case SPI1:
		return traitRow{
			regs: &sim1, irq: 35, busFreq: 72_000_000,
			remapMask:    maprSPI1Remap,
			enableClock:  func() { simRCC.apb2enr.SetBits(apb2enrSPI1EN) },
			disableClock: func() { simRCC.apb2enr.ClearBits(apb2enrSPI1EN) },
		}, true
	case SPI2:
		return traitRow{
			regs: &sim2, irq: 36, busFreq: 36_000_000,
			enableClock:  func() { simRCC.apb1enr.SetBits(apb1enrSPI2EN) },
			disableClock: func() { simRCC.apb1enr.ClearBits(apb1enrSPI2EN) },
		}, true
	case SPI3:
		return traitRow{
			regs: &sim3, irq: 51, busFreq: 36_000_000,
			remapMask:    maprSPI3Remap,
			enableClock:  func() { simRCC.apb1enr.SetBits(apb1enrSPI3EN) },
			disableClock: func() { simRCC.apb1enr.ClearBits(apb1enrSPI3EN) },
		}, true
	}
	return traitRow{}, false
}

func lookupPins(inst Instance, remap Remap) (pinTriple, bool) {
	switch {
	case inst == SPI1 && remap == RemapNone:
		return pinTriple{sck: Pin{'A', 5}, miso: Pin{'A', 6}, mosi: Pin{'A', 7}}, true
	case inst == SPI1 && remap == RemapFull:
		return pinTriple{sck: Pin{'B', 3}, miso: Pin{'B', 4}, mosi: Pin{'B', 5}}, true
	case inst == SPI2 && remap == RemapNone:
		return pinTriple{sck: Pin{'B', 13}, miso: Pin{'B', 14}, mosi: Pin{'B', 15}}, true
	case inst == SPI3 && remap == RemapNone:
		return pinTriple{sck: Pin{'B', 3}, miso: Pin{'B', 4}, mosi: Pin{'B', 5}}, true
	case inst == SPI3 && remap == RemapFull:
		return pinTriple{sck: Pin{'C', 10}, miso: Pin{'C', 11}, mosi: Pin{'C', 12}}, true
	}
	return pinTriple{}, false
}

func setRemap(mask uint32, on bool) {
	if mask == 0 {
		return
	}
	if on {
		simAFIO.mapr.SetBits(mask)
	} else {
		simAFIO.mapr.ClearBits(mask)
	}
}

// simPinDriver records pin modes so tests can read them back.
type simPinDriver struct {
	mu    sync.Mutex
	modes map[Pin]PinMode
	afs   map[Pin]uint8
}

func (s *simPinDriver) SetMode(p Pin, mode PinMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes[p] = mode
}

func (s *simPinDriver) SetAltFunc(p Pin, af uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.afs[p] = af
}

func (s *simPinDriver) mode(p Pin) PinMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modes[p]
}

var simPins = &simPinDriver{
	modes: map[Pin]PinMode{},
	afs:   map[Pin]uint8{},
}

func init() {
	SetPinDriver(simPins)
}

// simReset returns the whole simulated chip to power-on state between tests.
func simReset() {
	for _, r := range []*spiRegs{&sim1, &sim2, &sim3} {
		*r = spiRegs{}
	}
	simRCC.apb2enr.Set(0)
	simRCC.apb1enr.Set(0)
	simAFIO.mapr.Set(0)
	simPins.mu.Lock()
	simPins.modes = map[Pin]PinMode{}
	simPins.afs = map[Pin]uint8{}
	simPins.mu.Unlock()
}
