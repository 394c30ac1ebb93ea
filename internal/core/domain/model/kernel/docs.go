// Package kernel provides core domain primitives shared across the
// point-of-sale domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A fixed-point currency amount with three decimal places and exact arithmetic
//   - VatRate: An enumerated value-added-tax percentage with bucket-level rounding
//   - TableNumber: The user-assigned, unique number of a physical table
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
