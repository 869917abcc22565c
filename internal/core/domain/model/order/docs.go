// Package order implements the pickup order aggregate and its lifecycle
// state machine.
//
// An order advances through a fixed chain of states
// (Pending → Assigned → InProgress → Completed → Verified → Paid) with
// no backward edges. Each transition is guarded three ways, checked in a
// fixed sequence: source state, actor role (plus courier ownership where
// applicable), and required payload. Rejections carry which check failed
// so callers can distinguish a retryable race (state mismatch) from an
// authorization or input problem.
//
// The role authorization table is a static, total lookup keyed by
// (transition, role) rather than branching logic, so totality is
// verifiable in tests.
package order
