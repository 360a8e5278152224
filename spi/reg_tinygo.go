//go:build tinygo

package spi

import "runtime/volatile"

// reg32 is a 32-bit hardware register. On TinyGo builds every access goes
// through runtime/volatile so the compiler cannot elide or reorder it.
type reg32 = volatile.Register32
