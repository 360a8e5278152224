package spi

import "fmt"

// Instance selects which physical SPI block of the chip a Driver binds to.
// Which instances actually exist depends on the chip family file compiled
// into the build (see traits_*.go).
type Instance uint8

const (
	SPI1 Instance = iota + 1
	SPI2
	SPI3 // connectivity-line and F4 parts only
)

func (i Instance) String() string {
	switch i {
	case SPI1:
		return "SPI1"
	case SPI2:
		return "SPI2"
	case SPI3:
		return "SPI3"
	}
	return fmt.Sprintf("SPI?(%d)", uint8(i))
}

// Remap selects between an instance's default pin wiring and its alternate
// wiring. Not every instance has an alternate; resolving an unsupported
// (Instance, Remap) pair makes New panic.
type Remap uint8

const (
	RemapNone Remap = iota
	RemapFull
)

// Divisor is the bus-clock to SCK ratio. The constant values are the CR1 BR
// field bits, ready to OR into the control register.
type Divisor uint32

const (
	Div2   Divisor = 0 << 3
	Div4   Divisor = 1 << 3
	Div8   Divisor = 2 << 3
	Div16  Divisor = 3 << 3
	Div32  Divisor = 4 << 3
	Div64  Divisor = 5 << 3
	Div128 Divisor = 6 << 3
	Div256 Divisor = 7 << 3
)

// Ratio returns the divisor as a plain number (2..256).
func (d Divisor) Ratio() uint32 {
	return 2 << (uint32(d) >> 3)
}

// Polarity is the idle level of SCK. Must match the attached device.
type Polarity uint32

const (
	IdleLow  Polarity = 0
	IdleHigh Polarity = cr1CPOL
)

// Phase selects which SCK edge samples data. Must match the attached device.
type Phase uint32

const (
	FirstEdge  Phase = 0
	SecondEdge Phase = cr1CPHA
)

// Config is the compile-time configuration surface of a Driver. All fields
// are expected to be constants; New panics on an invalid combination rather
// than limping along with misconfigured electrical signaling.
type Config struct {
	Instance Instance
	Remap    Remap
	Divisor  Divisor
	Polarity Polarity
	Phase    Phase
}

// Validate reports whether the configuration resolves against the compiled-in
// chip family. New panics with exactly this error; callers that prefer an
// error value can check first.
func (c Config) Validate() error {
	if _, ok := lookupTraits(c.Instance); !ok {
		return fmt.Errorf("spi: %s not present on this chip family", c.Instance)
	}
	if _, ok := lookupPins(c.Instance, c.Remap); !ok {
		return fmt.Errorf("spi: %s has no pin set for remap %d", c.Instance, c.Remap)
	}
	if uint32(c.Divisor)&^cr1BRMask != 0 {
		return fmt.Errorf("spi: invalid divisor 0x%02x", uint32(c.Divisor))
	}
	if p := uint32(c.Polarity); p != 0 && p != cr1CPOL {
		return fmt.Errorf("spi: invalid polarity 0x%02x", p)
	}
	if p := uint32(c.Phase); p != 0 && p != cr1CPHA {
		return fmt.Errorf("spi: invalid phase 0x%02x", p)
	}
	return nil
}
