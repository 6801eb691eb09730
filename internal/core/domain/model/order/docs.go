// Package order contains the order aggregate and its status state machine.
//
// An Order owns its append-only status history and enforces the fixed linear
// progression pending -> confirmed -> preparing -> out_for_delivery ->
// delivered. Progression is pull-based: callers reconcile an order against
// the elapsed time since creation before reading or mutating it, so no
// in-process timer state exists and the computation survives restarts.
package order
