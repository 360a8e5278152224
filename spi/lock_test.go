package spi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTryLock(t *testing.T) {
	d := newTestDriver(t, testConfig())

	assert.True(t, d.TryLock(), "free lock")
	assert.False(t, d.TryLock(), "already held")
	d.Unlock()
	assert.True(t, d.TryLock(), "free again after release")
	d.Unlock()
}

func TestLockBlocksUntilRelease(t *testing.T) {
	d := newTestDriver(t, testConfig())
	d.Lock()

	acquired := make(chan struct{})
	go func() {
		d.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired while lock was held")
	case <-time.After(20 * time.Millisecond):
	}

	d.Unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock never handed over")
	}
	d.Unlock()
}

// The lock is advisory: a transaction spanning several transfers and a
// reconfiguration stays whole only when both parties use it.
func TestLockedTransaction(t *testing.T) {
	d := newTestDriver(t, testConfig())
	d.regs.sr.SetBits(srRXNE)

	d.Lock()
	d.SetDivisor(Div64)
	d.WriteByte(0x9F)
	got := d.ReadByte()
	d.WaitTxDone()
	d.Unlock()

	assert.Equal(t, byte(fillByte), got)
	assert.Equal(t, Div64, d.Divisor())
	assert.True(t, d.TryLock(), "lock released after transaction")
	d.Unlock()
}
