package softspi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePin is a GPIO line held in memory.
type fakePin struct {
	level   bool
	toggles int
}

func (p *fakePin) Set(high bool) {
	if p.level != high {
		p.toggles++
	}
	p.level = high
}

func (p *fakePin) Get() bool {
	return p.level
}

// loopback wires SDO to SDI through a single shared line.
func loopback(cpol, cpha bool) (*SPI, *fakePin) {
	data := &fakePin{}
	sck := &fakePin{}
	s := &SPI{SCK: sck, SDI: data, SDO: data, CPOL: cpol, CPHA: cpha}
	s.Configure()
	return s, sck
}

func TestConfigureIdleState(t *testing.T) {
	s, sck := loopback(false, false)
	assert.False(t, sck.Get(), "CPOL=0 idles low")
	assert.False(t, s.SDO.Get())

	_, sck2 := loopback(true, false)
	assert.True(t, sck2.Get(), "CPOL=1 idles high")
}

func TestTransferLoopbackAllModes(t *testing.T) {
	bytes := []byte{0x00, 0x01, 0x80, 0x5A, 0xA5, 0xFF}
	for mode := 0; mode < 4; mode++ {
		cpol := mode&2 != 0
		cpha := mode&1 != 0
		s, _ := loopback(cpol, cpha)
		for _, b := range bytes {
			got, err := s.Transfer(b)
			require.NoError(t, err)
			assert.Equal(t, b, got, "mode %d byte %#02x", mode, b)
		}
	}
}

func TestClockEdgesPerByte(t *testing.T) {
	s, sck := loopback(false, false)
	s.Transfer(0xC3)
	assert.Equal(t, 16, sck.toggles, "two edges per bit")
	assert.False(t, sck.Get(), "clock back at idle")
}

func TestTxBufferSemantics(t *testing.T) {
	s, _ := loopback(false, false)

	w := []byte{9, 8, 7}
	r := make([]byte, 3)
	require.NoError(t, s.Tx(w, r))
	assert.Equal(t, w, r)

	require.NoError(t, s.Tx(w, nil))

	r2 := make([]byte, 2)
	require.NoError(t, s.Tx(nil, r2))
	assert.Equal(t, []byte{fillByte, fillByte}, r2)

	assert.Error(t, s.Tx(w, r2))
}
