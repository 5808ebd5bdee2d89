// Package clock abstracts the host timer facility used for delayed, fire-once callbacks.
//
// Production code uses Real, which is backed by time.AfterFunc. Tests use Manual, a virtual
// clock that only moves when Advance is called, so time-based behaviour such as toast expiry
// can be asserted deterministically:
//
//	clk := clock.NewManual(time.Unix(0, 0))
//	clk.AfterFunc(5*time.Second, func() { fmt.Println("fired") })
//	clk.Advance(5 * time.Second) // prints "fired"
//
// Timing is a lower bound only: a callback never runs before its delay has elapsed.
package clock
