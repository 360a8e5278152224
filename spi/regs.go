package spi

// spiRegs is the SPI register block layout shared by the F1 and F2/F4
// families (reference manual chapter "Serial peripheral interface").
// Field order must match the hardware offsets exactly.
type spiRegs struct {
	cr1     reg32 // 0x00 control register 1
	cr2     reg32 // 0x04 control register 2
	sr      reg32 // 0x08 status register
	dr      reg32 // 0x0C data register
	crcpr   reg32 // 0x10 CRC polynomial
	rxcrcr  reg32 // 0x14 RX CRC
	txcrcr  reg32 // 0x18 TX CRC
	i2scfgr reg32 // 0x1C I2S configuration
	i2spr   reg32 // 0x20 I2S prescaler
}

// CR1 bits
const (
	cr1CPHA   = 1 << 0
	cr1CPOL   = 1 << 1
	cr1MSTR   = 1 << 2
	cr1BRMask = 0x7 << 3
	cr1SPE    = 1 << 6
	cr1SSI    = 1 << 8
	cr1SSM    = 1 << 9
)

// SR bits
const (
	srRXNE = 1 << 0
	srTXE  = 1 << 1
	srBSY  = 1 << 7
)

// I2SCFGR bits
const (
	i2scfgrI2SMOD = 1 << 11
)
