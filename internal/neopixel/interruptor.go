package neopixel

import "runtime"

// Unlocker ends a critical section. It must be called exactly once.
type Unlocker func()

// Interrupts keeps anything from preempting the encoder while it emits the 8 bits of one byte. A section
// never spans more than one byte.
type Interrupts interface {
	Disable() Unlocker
}

// ThreadLock wires the transmitting goroutine to its OS thread for the section so the scheduler cannot
// migrate it mid-byte.
type ThreadLock struct{}

func (ThreadLock) Disable() Unlocker {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}

// critical runs f inside a section of i. The section is released even if f panics.
func critical(i Interrupts, f func()) {
	unlock := i.Disable()
	defer unlock()
	f()
}
