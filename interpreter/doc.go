// Package interpreter applies a received batch of instructions to local
// state. ApplyPhase1 and
// ApplyPhase2 are the two phases' entry points; SortForApplication
// orders a batch per the evaluation-order tie-break before either is
// called instruction by instruction.
package interpreter
