package spi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wiring expectations straight from the datasheet pinout table.
func TestPinTableResolution(t *testing.T) {
	tests := []struct {
		name  string
		inst  Instance
		remap Remap
		want  pinTriple
	}{
		{"spi1 default", SPI1, RemapNone,
			pinTriple{sck: Pin{'A', 5}, miso: Pin{'A', 6}, mosi: Pin{'A', 7}}},
		{"spi1 remapped", SPI1, RemapFull,
			pinTriple{sck: Pin{'B', 3}, miso: Pin{'B', 4}, mosi: Pin{'B', 5}}},
		{"spi2 default", SPI2, RemapNone,
			pinTriple{sck: Pin{'B', 13}, miso: Pin{'B', 14}, mosi: Pin{'B', 15}}},
		{"spi3 default", SPI3, RemapNone,
			pinTriple{sck: Pin{'B', 3}, miso: Pin{'B', 4}, mosi: Pin{'B', 5}}},
		{"spi3 remapped", SPI3, RemapFull,
			pinTriple{sck: Pin{'C', 10}, miso: Pin{'C', 11}, mosi: Pin{'C', 12}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := lookupPins(tc.inst, tc.remap)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnsupportedCombinationsDoNotResolve(t *testing.T) {
	tests := []struct {
		name  string
		inst  Instance
		remap Remap
	}{
		{"spi2 remapped", SPI2, RemapFull},
		{"zero instance", Instance(0), RemapNone},
		{"instance past table", Instance(4), RemapNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := lookupPins(tc.inst, tc.remap)
			assert.False(t, ok)
		})
	}
}

func TestTraitTable(t *testing.T) {
	for _, inst := range []Instance{SPI1, SPI2, SPI3} {
		tr, ok := lookupTraits(inst)
		require.True(t, ok, inst.String())
		assert.NotNil(t, tr.regs, inst.String())
		assert.NotZero(t, tr.irq, inst.String())
		assert.NotZero(t, tr.busFreq, inst.String())
		assert.NotNil(t, tr.enableClock, inst.String())
		assert.NotNil(t, tr.disableClock, inst.String())
	}

	_, ok := lookupTraits(Instance(9))
	assert.False(t, ok)
}

// Each instance must resolve to its own register block.
func TestTraitRegisterBlocksDistinct(t *testing.T) {
	seen := map[*spiRegs]Instance{}
	for _, inst := range []Instance{SPI1, SPI2, SPI3} {
		tr, ok := lookupTraits(inst)
		require.True(t, ok)
		if prev, dup := seen[tr.regs]; dup {
			t.Fatalf("%s and %s share a register block", prev, inst)
		}
		seen[tr.regs] = inst
	}
}
