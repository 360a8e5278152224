//go:build stm32f4

// Demo firmware for F405/F407 boards: SPI3 on its alternate PC10/PC11/PC12
// wiring (the default PB3/PB4/PB5 set collides with JTAG), plus a software
// SPI bus on spare pins for comparison.
package main

import (
	"machine"
	"time"

	"stm32spi/softspi"
	"stm32spi/spi"
)

var bus = spi.New(spi.Config{
	Instance: spi.SPI3,
	Remap:    spi.RemapFull,
	Divisor:  spi.Div16, // 42 MHz APB1 / 16 = 2.625 MHz SCK
	Polarity: spi.IdleLow,
	Phase:    spi.FirstEdge,
})

func main() {
	println("SPI3 up:", bus.BusFrequency()/bus.Divisor().Ratio(), "Hz SCK, IRQ", bus.IRQ())

	// Same protocol, no hardware block: handy for pins SPI3 cannot reach.
	machine.PE2.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.PE4.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.PE5.Configure(machine.PinConfig{Mode: machine.PinInput})
	soft := &softspi.SPI{
		SCK:        machine.PE2,
		SDO:        machine.PE4,
		SDI:        machine.PE5,
		HalfPeriod: 2 * time.Microsecond,
	}
	soft.Configure()

	for {
		bus.Lock()
		hw, _ := bus.Transfer(0xA5)
		bus.WaitTxDone()
		bus.Unlock()

		sw, _ := soft.Transfer(0xA5)

		println("hw:", hw, "sw:", sw)
		time.Sleep(time.Second)
	}
}
