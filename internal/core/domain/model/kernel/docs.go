// Package kernel provides core domain primitives shared across the
// pickup-coordination domain model. It implements fundamental building
// blocks following Domain-Driven Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Role: The actor role taxonomy (Admin, Courier, Warehouse, Customer)
//   - Actor: The authenticated identity plus role applying an operation
//
// These primitives enforce domain invariants and validation rules,
// ensuring that domain objects are always in a valid state. They are
// designed to be immutable and thread-safe.
package kernel
