package spi

// traitRow is everything instance-specific the driver needs, resolved once
// at construction. The compiled-in chip family file (traits_*.go) owns the
// tables; rows are read-only after lookup.
type traitRow struct {
	regs    *spiRegs // register block
	irq     int      // NVIC interrupt number, exposed for higher layers
	busFreq uint32   // APB clock feeding this instance, in Hz

	// remapMask is the instance's bit in the shared AFIO remap register, or
	// zero when the instance has no remap bit (F1 only).
	remapMask uint32

	// perPinAF is true on families that select the SPI function per pin
	// (F2/F4). Those families also require every SPI pin, MISO included, to
	// be in alternate-function output mode; the peripheral multiplexes
	// direction internally.
	perPinAF bool
	altFunc  uint8 // alternate function number when perPinAF

	enableClock  func()
	disableClock func()
}

// pinTriple is the concrete wiring of one (Instance, Remap) combination.
type pinTriple struct {
	sck  Pin
	miso Pin
	mosi Pin
}

// The chip family file provides:
//
//	lookupTraits(Instance) (traitRow, bool)
//	lookupPins(Instance, Remap) (pinTriple, bool)
//	setRemap(mask uint32, on bool)
//
// Unsupported lookups report ok=false and make New panic, the closest Go
// analogue of the wiring tables failing to instantiate at compile time.
