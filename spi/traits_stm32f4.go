//go:build stm32f4

package spi

import "unsafe"

// F2/F4 family personality: per-pin alternate-function multiplexing, no
// shared remap register, and every SPI pin (MISO included) configured as an
// alternate-function output because the block multiplexes direction itself.

const (
	spi1Base uintptr = 0x4001_3000
	spi2Base uintptr = 0x4000_3800
	spi3Base uintptr = 0x4000_3C00

	rccBase   uintptr = 0x4002_3800
	gpioABase uintptr = 0x4002_0000
	gpioSize  uintptr = 0x400
)

// Default 168 MHz clock tree (F405/F407): APB2 at /2, APB1 at /4.
const (
	apb2Freq = 84_000_000
	apb1Freq = 42_000_000
)

const (
	irqSPI1 = 35
	irqSPI2 = 36
	irqSPI3 = 51
)

const (
	afSPI12 = 5 // AF5: SPI1/SPI2
	afSPI3  = 6 // AF6: SPI3
)

type rccRegs struct {
	cr       reg32 // 0x00
	pllcfgr  reg32 // 0x04
	cfgr     reg32 // 0x08
	cir      reg32 // 0x0C
	ahb1rstr reg32 // 0x10
	ahb2rstr reg32 // 0x14
	ahb3rstr reg32 // 0x18
	_        reg32 // 0x1C
	apb1rstr reg32 // 0x20
	apb2rstr reg32 // 0x24
	_        reg32 // 0x28
	_        reg32 // 0x2C
	ahb1enr  reg32 // 0x30
	ahb2enr  reg32 // 0x34
	ahb3enr  reg32 // 0x38
	_        reg32 // 0x3C
	apb1enr  reg32 // 0x40
	apb2enr  reg32 // 0x44
}

type gpioRegs struct {
	moder   reg32 // 0x00
	otyper  reg32 // 0x04
	ospeedr reg32 // 0x08
	pupdr   reg32 // 0x0C
	idr     reg32 // 0x10
	odr     reg32 // 0x14
	bsrr    reg32 // 0x18
	lckr    reg32 // 0x1C
	afrl    reg32 // 0x20
	afrh    reg32 // 0x24
}

var (
	spi1 = (*spiRegs)(unsafe.Pointer(spi1Base))
	spi2 = (*spiRegs)(unsafe.Pointer(spi2Base))
	spi3 = (*spiRegs)(unsafe.Pointer(spi3Base))
	rcc  = (*rccRegs)(unsafe.Pointer(rccBase))
)

const (
	ahb1enrGPIOAEN = 1 << 0 // GPIOB, GPIOC... follow in order
	apb2enrSPI1EN  = 1 << 12
	apb1enrSPI2EN  = 1 << 14
	apb1enrSPI3EN  = 1 << 15
)

func lookupTraits(inst Instance) (traitRow, bool) {
	switch inst {
	case SPI1:
		return traitRow{
			regs: spi1, irq: irqSPI1, busFreq: apb2Freq,
			perPinAF: true, altFunc: afSPI12,
			enableClock:  func() { rcc.apb2enr.SetBits(apb2enrSPI1EN) },
			disableClock: func() { rcc.apb2enr.ClearBits(apb2enrSPI1EN) },
		}, true
	case SPI2:
		return traitRow{
			regs: spi2, irq: irqSPI2, busFreq: apb1Freq,
			perPinAF: true, altFunc: afSPI12,
			enableClock:  func() { rcc.apb1enr.SetBits(apb1enrSPI2EN) },
			disableClock: func() { rcc.apb1enr.ClearBits(apb1enrSPI2EN) },
		}, true
	case SPI3:
		return traitRow{
			regs: spi3, irq: irqSPI3, busFreq: apb1Freq,
			perPinAF: true, altFunc: afSPI3,
			enableClock:  func() { rcc.apb1enr.SetBits(apb1enrSPI3EN) },
			disableClock: func() { rcc.apb1enr.ClearBits(apb1enrSPI3EN) },
		}, true
	}
	return traitRow{}, false
}

func lookupPins(inst Instance, remap Remap) (pinTriple, bool) {
	// Same wirings as the F1 parts; "remap" here is just the alternate pin
	// set, selected per pin through AFRL/AFRH.
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
	// Nothing shared to flip; pin routing is fully per-pin on this family.
}

func gpioPort(port byte) *gpioRegs {
	return (*gpioRegs)(unsafe.Pointer(gpioABase + uintptr(port-'A')*gpioSize))
}

// f4PinDriver drives the F2/F4 MODER/PUPDR/AFR pin configuration scheme.
type f4PinDriver struct{}

func (f4PinDriver) SetMode(p Pin, mode PinMode) {
	rcc.ahb1enr.SetBits(ahb1enrGPIOAEN << (p.Port - 'A'))
	g := gpioPort(p.Port)
	shift := 2 * uint32(p.Num)

	var moder, pupdr uint32
	switch mode {
	case PinInput:
		moder, pupdr = 0b00, 0b00
	case PinInputPull:
		moder, pupdr = 0b00, 0b01 // pull up
	case PinAltOutput:
		moder, pupdr = 0b10, 0b00
		g.otyper.ClearBits(1 << p.Num)                              // push-pull
		g.ospeedr.Set(g.ospeedr.Get()&^(0b11<<shift) | 0b10<<shift) // high speed
	}
	g.pupdr.Set(g.pupdr.Get()&^(0b11<<shift) | pupdr<<shift)
	g.moder.Set(g.moder.Get()&^(0b11<<shift) | moder<<shift)
}

func (f4PinDriver) SetAltFunc(p Pin, af uint8) {
	g := gpioPort(p.Port)
	afr := &g.afrl
	shift := 4 * uint32(p.Num)
	if p.Num >= 8 {
		afr = &g.afrh
		shift -= 32
	}
	afr.Set(afr.Get()&^(0xF<<shift) | uint32(af&0xF)<<shift)
}

func init() {
	SetPinDriver(f4PinDriver{})
}
