// Package outbox implements the per-destination instruction queue (the
// "todo list") each BSP process accumulates during local computation and
// drains during the next exchange.
package outbox
