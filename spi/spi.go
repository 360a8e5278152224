// Package spi drives the STM32 SPI hardware block in master mode.
//
// A Driver is bound at construction to one physical instance, one pin
// wiring and an initial clock configuration, and comes up ready to
// transfer. The transfer primitive is a blocking full-duplex single-byte
// exchange with no timeout: a stalled clock (disabled peripheral, broken
// wiring) blocks forever, which is the intended tradeoff for a
// latency-predictable driver. Callers sharing one bus across tasks must
// bracket their transactions with Lock/Unlock; the driver never locks on
// its own.
package spi

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"
)

// Filler clocked out by read-only transfers.
const fillByte = 0xFF

// Driver owns one SPI register block and the advisory lock serializing
// logical transactions on it. Create exactly one Driver per Instance; two
// drivers over the same block contend on the hardware unchecked.
type Driver struct {
	regs   *spiRegs
	pins   pinTriple
	traits traitRow
	cfg    Config

	mu sync.Mutex
}

// Ecosystem device drivers accept this driver as their bus.
var _ drivers.SPI = (*Driver)(nil)

// New resolves the instance's trait and pin tables and brings the hardware
// up, so the returned driver is immediately usable. It panics if the
// configuration does not resolve against the compiled-in chip family:
// wiring the wrong pins to a live bus is a hardware hazard, not something
// to report back and carry on from.
func New(cfg Config) *Driver {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	traits, _ := lookupTraits(cfg.Instance)
	pins, _ := lookupPins(cfg.Instance, cfg.Remap)
	d := &Driver{
		regs:   traits.regs,
		pins:   pins,
		traits: traits,
		cfg:    cfg,
	}
	d.hwInit()
	return d
}

// SetActive toggles the peripheral between fully operating and fully off.
// There are no intermediate states. Re-activation restores the exact
// control-register pattern the driver was constructed with.
func (d *Driver) SetActive(active bool) {
	if active {
		d.hwInit()
	} else {
		d.hwDeinit()
	}
}

// hwInit drives the block from unknown/disabled to operating state.
// Order matters: pin routing must be committed before the block can drive
// the lines, and the clock gate must be synchronized before the first
// register write. Idempotent; re-running re-applies the same state.
func (d *Driver) hwInit() {
	if d.cfg.Remap == RemapFull {
		setRemap(d.traits.remapMask, true)
	}

	d.traits.enableClock()
	dsb()

	pd := mustPinDriver()
	if d.traits.perPinAF {
		pd.SetAltFunc(d.pins.sck, d.traits.altFunc)
		pd.SetAltFunc(d.pins.mosi, d.traits.altFunc)
		pd.SetAltFunc(d.pins.miso, d.traits.altFunc)
		pd.SetMode(d.pins.sck, PinAltOutput)
		pd.SetMode(d.pins.mosi, PinAltOutput)
		pd.SetMode(d.pins.miso, PinAltOutput)
	} else {
		pd.SetMode(d.pins.sck, PinAltOutput)
		pd.SetMode(d.pins.mosi, PinAltOutput)
		pd.SetMode(d.pins.miso, PinInputPull)
	}

	d.regs.i2scfgr.ClearBits(i2scfgrI2SMOD)
	d.regs.cr2.Set(0)
	d.regs.cr1.Set(cr1MSTR | cr1SSM | cr1SSI | cr1SPE |
		uint32(d.cfg.Divisor) | uint32(d.cfg.Phase) | uint32(d.cfg.Polarity))
}

// hwDeinit is the inverse: stop the block before anything else, then
// release the pin routing, gate the clock and park the pins as inputs so
// the unpowered block cannot float them into a live bus.
func (d *Driver) hwDeinit() {
	d.regs.cr2.Set(0)
	d.regs.cr1.Set(0)

	if d.cfg.Remap == RemapFull {
		setRemap(d.traits.remapMask, false)
	}

	d.traits.disableClock()

	pd := mustPinDriver()
	pd.SetMode(d.pins.sck, PinInput)
	pd.SetMode(d.pins.mosi, PinInput)
	pd.SetMode(d.pins.miso, PinInput)
}

// Transfer exchanges one byte, full duplex: b starts shifting out while the
// incoming byte shifts in, and the call busy-waits until the exchange
// completes. No timeout, no yielding. The error is always nil; the
// signature exists to satisfy drivers.SPI.
func (d *Driver) Transfer(b byte) (byte, error) {
	d.regs.dr.Set(uint32(b))
	for !d.regs.sr.HasBits(srRXNE) {
	}
	return byte(d.regs.dr.Get()), nil
}

// WriteByte sends b and discards the byte shifted in.
func (d *Driver) WriteByte(b byte) {
	d.Transfer(b)
}

// ReadByte clocks in one byte, sending the 0xFF filler.
func (d *Driver) ReadByte() byte {
	b, _ := d.Transfer(fillByte)
	return b
}

// Tx exchanges len(w) bytes when both buffers are given (lengths must
// match), sends without storing when r is nil, and receives against the
// filler byte when w is nil.
func (d *Driver) Tx(w, r []byte) error {
	switch {
	case len(w) == len(r):
		for i, b := range w {
			r[i], _ = d.Transfer(b)
		}
	case len(r) == 0:
		for _, b := range w {
			d.Transfer(b)
		}
	case len(w) == 0:
		for i := range r {
			r[i], _ = d.Transfer(fillByte)
		}
	default:
		return errors.New("spi: tx and rx buffer length mismatch")
	}
	return nil
}

// WaitTxDone spins long enough for the final bit to leave the shift
// register at the current divisor, for callers about to deassert a chip
// select. A timing margin only; poll the BSY flag for a hardware guarantee.
func (d *Driver) WaitTxDone() {
	for n := uint32(d.Divisor()) >> 3; n != 0; n >>= 1 {
		nop()
	}
}

// The bitfield accessors below touch only their own CR1 field. None of
// them serialize against an in-flight transfer; changing timing mid-byte
// yields garbage on the wire, so hold the lock around reconfiguration.

func (d *Driver) SetDivisor(div Divisor) {
	d.regs.cr1.Set(d.regs.cr1.Get()&^uint32(cr1BRMask) | uint32(div))
}

func (d *Driver) Divisor() Divisor {
	return Divisor(d.regs.cr1.Get() & cr1BRMask)
}

func (d *Driver) SetPolarity(pol Polarity) {
	d.regs.cr1.Set(d.regs.cr1.Get()&^uint32(cr1CPOL) | uint32(pol))
}

func (d *Driver) Polarity() Polarity {
	return Polarity(d.regs.cr1.Get() & cr1CPOL)
}

func (d *Driver) SetPhase(pha Phase) {
	d.regs.cr1.Set(d.regs.cr1.Get()&^uint32(cr1CPHA) | uint32(pha))
}

func (d *Driver) Phase() Phase {
	return Phase(d.regs.cr1.Get() & cr1CPHA)
}

// Enable sets the peripheral-enable bit without touching the rest of CR1.
func (d *Driver) Enable() {
	d.regs.cr1.SetBits(cr1SPE)
}

// Disable clears the peripheral-enable bit.
func (d *Driver) Disable() {
	d.regs.cr1.ClearBits(cr1SPE)
}

func (d *Driver) Enabled() bool {
	return d.regs.cr1.HasBits(cr1SPE)
}

// Lock acquires exclusive use of the bus, blocking until available. The
// lock is advisory: Transfer does not take it, so every caller of a
// multi-step transaction must bracket it with Lock/Unlock (or bail out via
// TryLock) to keep transactions from interleaving.
func (d *Driver) Lock() {
	d.mu.Lock()
}

// Unlock releases the bus.
func (d *Driver) Unlock() {
	d.mu.Unlock()
}

// TryLock acquires the bus only if it is free and reports whether it did.
func (d *Driver) TryLock() bool {
	return d.mu.TryLock()
}

// IRQ returns the instance's NVIC interrupt number. The driver never
// enables it; interrupt-driven layers built on top need the number to
// register their own handler.
func (d *Driver) IRQ() int {
	return d.traits.irq
}

// BusFrequency returns the APB clock feeding the instance, in Hz. SCK runs
// at BusFrequency / Divisor.Ratio().
func (d *Driver) BusFrequency() uint32 {
	return d.traits.busFreq
}
