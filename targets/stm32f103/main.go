//go:build stm32f103

// Demo firmware for F103 boards (blue pill and friends): SPI1 on the
// default PA5/PA6/PA7 wiring, polling a device once a second.
package main

import (
	"time"

	"stm32spi/spi"
)

var bus = spi.New(spi.Config{
	Instance: spi.SPI1,
	Remap:    spi.RemapNone,
	Divisor:  spi.Div32, // 72 MHz APB2 / 32 = 2.25 MHz SCK
	Polarity: spi.IdleLow,
	Phase:    spi.FirstEdge,
})

func main() {
	println("SPI1 up:", bus.BusFrequency()/bus.Divisor().Ratio(), "Hz SCK, IRQ", bus.IRQ())

	for {
		bus.Lock()
		bus.WriteByte(0x9F) // JEDEC read-ID, handy against any SPI flash
		id := bus.ReadByte()
		bus.WaitTxDone()
		bus.Unlock()

		println("response:", id)
		time.Sleep(time.Second)
	}
}
