//go:build stm32f103 || stm32f4

package spi

import "device/arm"

// dsb orders the clock-gate write against the register writes that follow;
// without it the first CR access can reach a still-unclocked block.
func dsb() {
	arm.Asm("dsb")
}

func nop() {
	arm.Asm("nop")
}
