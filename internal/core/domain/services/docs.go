// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the point-of-sale system. It implements
// read-side workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - SalesReporter: A domain service deriving sales figures and the daily report
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
