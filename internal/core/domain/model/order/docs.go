// Package order provides the Order aggregate: an immutable point-in-time
// snapshot of a cart bound to a table, moving through the pending -> paid
// lifecycle.
//
// The package includes:
//   - Order: The aggregate root freezing cart lines, total and VAT breakdown at creation time
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, table number, non-empty line snapshot and server
//   - The frozen snapshot is never recomputed, even if the catalog changes later
//   - pending -> paid is the only transition; it happens exactly once and stamps paidAt
//   - preparing and ready are valid, restorable statuses that no operation transitions into
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
