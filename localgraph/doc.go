// Package localgraph implements the local graph store G_p: each process's
// own slice of the global graph. A Graph holds exactly the vertices this
// process owns, under whichever
// partition.Strategy the run was configured with, plus this process's
// share of the final matching. Every mutation that would otherwise leave
// a dangling cross-partition reference instead enqueues an
// instruction.Instruction on the caller-supplied outbox.Outbox for
// delivery at the next BSP exchange.
package localgraph
