// Package snake implements the snake engine's per-process chain state:
// the local fragment of a multi-process "snake" chain this process
// currently holds, and the three structural operations peers
// use to grow one — Concatenate, Reverse, and Inherit. A Registry never
// reaches across a process boundary itself; phase2 drives the actual
// wire exchange via bsp.ExchangeRound and applies received instructions
// through interpreter.ApplyPhase2.
package snake
