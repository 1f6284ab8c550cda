// Package partition implements the pure vertex-ownership function used by
// every other package in bspmatch to decide whether a vertex id is local
// or remote. It has no dependencies on the rest of the engine and carries
// no state: every call is a deterministic function of its arguments.
package partition
