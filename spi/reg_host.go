//go:build !tinygo

package spi

import "sync/atomic"

// reg32 is a 32-bit hardware register image for host builds. Accesses are
// atomic so tests can drive a simulated register block from another
// goroutine without racing the driver's busy-waits. The method set mirrors
// runtime/volatile.Register32, which replaces this type on TinyGo builds.
type reg32 struct {
	v uint32
}

func (r *reg32) Get() uint32 {
	return atomic.LoadUint32(&r.v)
}

func (r *reg32) Set(v uint32) {
	atomic.StoreUint32(&r.v, v)
}

func (r *reg32) SetBits(mask uint32) {
	for {
		old := atomic.LoadUint32(&r.v)
		if atomic.CompareAndSwapUint32(&r.v, old, old|mask) {
			return
		}
	}
}

func (r *reg32) ClearBits(mask uint32) {
	for {
		old := atomic.LoadUint32(&r.v)
		if atomic.CompareAndSwapUint32(&r.v, old, old&^mask) {
			return
		}
	}
}

func (r *reg32) HasBits(mask uint32) bool {
	return r.Get()&mask != 0
}
