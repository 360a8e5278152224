//go:build !stm32f103 && !stm32f4

package spi

// No bus to synchronize against the simulated registers.
func dsb() {}

func nop() {}
