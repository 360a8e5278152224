//go:build stm32f103

package spi

import "unsafe"

// F1 family personality: SPI function selection goes through the shared
// AFIO remap register, MISO stays a pulled input, GPIO ports use the
// CRL/CRH 4-bit-per-pin scheme.

const (
	spi1Base uintptr = 0x4001_3000
	spi2Base uintptr = 0x4000_3800
	spi3Base uintptr = 0x4000_3C00

	rccBase   uintptr = 0x4002_1000
	afioBase  uintptr = 0x4001_0000
	gpioABase uintptr = 0x4001_0800
	gpioSize  uintptr = 0x400
)

// Default clock tree of an F103 running from the 72 MHz PLL: APB2 at full
// speed, APB1 halved. Boards running another tree get the right SCK rate
// regardless; only BusFrequency readers see these numbers.
const (
	apb2Freq = 72_000_000
	apb1Freq = 36_000_000
)

const (
	irqSPI1 = 35
	irqSPI2 = 36
	irqSPI3 = 51
)

type rccRegs struct {
	cr       reg32 // 0x00
	cfgr     reg32 // 0x04
	cir      reg32 // 0x08
	apb2rstr reg32 // 0x0C
	apb1rstr reg32 // 0x10
	ahbenr   reg32 // 0x14
	apb2enr  reg32 // 0x18
	apb1enr  reg32 // 0x1C
	bdcr     reg32 // 0x20
	csr      reg32 // 0x24
}

type afioRegs struct {
	evcr   reg32    // 0x00
	mapr   reg32    // 0x04
	exticr [4]reg32 // 0x08..0x14
	_      reg32    // 0x18 reserved
	mapr2  reg32    // 0x1C
}

type gpioRegs struct {
	crl  reg32 // 0x00
	crh  reg32 // 0x04
	idr  reg32 // 0x08
	odr  reg32 // 0x0C
	bsrr reg32 // 0x10
	brr  reg32 // 0x14
	lckr reg32 // 0x18
}

var (
	spi1 = (*spiRegs)(unsafe.Pointer(spi1Base))
	spi2 = (*spiRegs)(unsafe.Pointer(spi2Base))
	spi3 = (*spiRegs)(unsafe.Pointer(spi3Base))
	rcc  = (*rccRegs)(unsafe.Pointer(rccBase))
	afio = (*afioRegs)(unsafe.Pointer(afioBase))
)

const (
	apb2enrAFIOEN = 1 << 0
	apb2enrIOPAEN = 1 << 2 // IOPB, IOPC... follow in order
	apb2enrSPI1EN = 1 << 12
	apb1enrSPI2EN = 1 << 14
	apb1enrSPI3EN = 1 << 15

	maprSPI1Remap = 1 << 0
	maprSPI3Remap = 1 << 28 // connectivity line
)

func lookupTraits(inst Instance) (traitRow, bool) {
	switch inst {
	case SPI1:
		return traitRow{
			regs: spi1, irq: irqSPI1, busFreq: apb2Freq,
			remapMask:    maprSPI1Remap,
			enableClock:  func() { rcc.apb2enr.SetBits(apb2enrSPI1EN) },
			disableClock: func() { rcc.apb2enr.ClearBits(apb2enrSPI1EN) },
		}, true
	case SPI2:
		return traitRow{
			regs: spi2, irq: irqSPI2, busFreq: apb1Freq,
			enableClock:  func() { rcc.apb1enr.SetBits(apb1enrSPI2EN) },
			disableClock: func() { rcc.apb1enr.ClearBits(apb1enrSPI2EN) },
		}, true
	case SPI3:
		// Present on connectivity-line parts only.
		return traitRow{
			regs: spi3, irq: irqSPI3, busFreq: apb1Freq,
			remapMask:    maprSPI3Remap,
			enableClock:  func() { rcc.apb1enr.SetBits(apb1enrSPI3EN) },
			disableClock: func() { rcc.apb1enr.ClearBits(apb1enrSPI3EN) },
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
	// The mapper only works with its clock on. Must be committed before the
	// SPI block starts driving the lines.
	rcc.apb2enr.SetBits(apb2enrAFIOEN)
	if on {
		afio.mapr.SetBits(mask)
	} else {
		afio.mapr.ClearBits(mask)
	}
}

func gpioPort(port byte) *gpioRegs {
	return (*gpioRegs)(unsafe.Pointer(gpioABase + uintptr(port-'A')*gpioSize))
}

// f1PinDriver drives the F1 CRL/CRH pin configuration scheme.
type f1PinDriver struct{}

// CNF+MODE nibbles per pin mode.
const (
	f1ModeInput     = 0x4 // floating input
	f1ModeInputPull = 0x8 // input with pull, level set via ODR
	f1ModeAltOutput = 0xB // alternate function push-pull, 50 MHz
)

func (f1PinDriver) SetMode(p Pin, mode PinMode) {
	rcc.apb2enr.SetBits(apb2enrIOPAEN << (p.Port - 'A'))
	g := gpioPort(p.Port)

	var nibble uint32
	switch mode {
	case PinInput:
		nibble = f1ModeInput
	case PinInputPull:
		nibble = f1ModeInputPull
		g.bsrr.Set(1 << p.Num) // pull up
	case PinAltOutput:
		nibble = f1ModeAltOutput
	}

	cr := &g.crl
	shift := 4 * uint32(p.Num)
	if p.Num >= 8 {
		cr = &g.crh
		shift -= 32
	}
	cr.Set(cr.Get()&^(0xF<<shift) | nibble<<shift)
}

func (f1PinDriver) SetAltFunc(p Pin, af uint8) {
	// No per-pin mux on F1; remap is handled through AFIO.MAPR.
}

func init() {
	SetPinDriver(f1PinDriver{})
}
