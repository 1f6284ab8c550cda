// Package instruction defines the wire format exchanged between BSP
// processes: a tagged, fixed-width message carrying up to four vertex ids.
// Each tag's payload semantics are documented on its constant below.
package instruction
