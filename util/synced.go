package util

import "sync/atomic"

// SafeCounter is an int counter safe for concurrent use.
type SafeCounter struct {
	value atomic.Int64
}

// NewSafeInt creates a counter starting at zero.
func NewSafeInt() *SafeCounter {
	return &SafeCounter{}
}

// Increment adds one and returns the new value.
func (c *SafeCounter) Increment() int {
	return int(c.value.Add(1))
}

// Value returns the current value.
func (c *SafeCounter) Value() int {
	return int(c.value.Load())
}

// SafeFlag is a bool safe for concurrent use.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeBool creates a flag set to false.
func NewSafeBool() *SafeFlag {
	return &SafeFlag{}
}

// Set stores v and returns it.
func (f *SafeFlag) Set(v bool) bool {
	f.value.Store(v)
	return v
}

// Value returns the current value.
func (f *SafeFlag) Value() bool {
	return f.value.Load()
}

// TrySet sets the flag if it was clear and reports whether it did.
func (f *SafeFlag) TrySet() bool {
	return f.value.CompareAndSwap(false, true)
}
