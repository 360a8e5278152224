package spi

// Pin names one GPIO line as (port letter, pin number), matching the chip
// datasheet's PA5/PB13 style.
type Pin struct {
	Port byte  // 'A'..'G'
	Num  uint8 // 0..15
}

// PinMode is the subset of GPIO configurations this driver needs.
type PinMode uint8

const (
	// PinInput is a plain floating input, the driverless safe state pins are
	// parked in after teardown.
	PinInput PinMode = iota
	// PinInputPull is an input with the pull resistor enabled. Used for MISO
	// on families whose SPI block does not drive the input pin itself.
	PinInputPull
	// PinAltOutput hands the pin to the peripheral (alternate function,
	// push-pull, high speed).
	PinAltOutput
)

// PinDriver is the digital I/O capability the driver needs from the GPIO
// layer. The compiled-in chip family registers a default implementation;
// boards with unusual GPIO arrangements can replace it before constructing
// any Driver.
type PinDriver interface {
	// SetMode configures the pin's mode.
	SetMode(p Pin, mode PinMode)
	// SetAltFunc selects the pin's alternate function number. Only
	// meaningful on families with per-pin function multiplexing; the F1
	// implementation is a no-op because its mux is the shared AFIO mapper.
	SetAltFunc(p Pin, af uint8)
}

var pinDriver PinDriver

// SetPinDriver replaces the GPIO implementation used for SPI pin setup.
func SetPinDriver(d PinDriver) {
	pinDriver = d
}

func mustPinDriver() PinDriver {
	if pinDriver == nil {
		panic("spi: pin driver not configured")
	}
	return pinDriver
}
