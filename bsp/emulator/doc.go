// Package emulator is the in-process bsp.Substrate used by cmd/bspmatch
// and by this module's tests: one goroutine per logical process, a
// shared reusable barrier, and one-sided puts implemented as direct
// writes into the target process's registered buffer under that
// process's own mutex. It trades real network transport for an honest
// rendering of the BSP access pattern: a process never reads another
// process's state directly, and the only cross-process interaction is a
// Put into a pre-registered, pre-offset destination buffer.
package emulator
