// Package kernel holds the value objects shared by every aggregate of the
// order service.
//
// The package includes:
//   - UUID: identifier for users, orders and order items
//   - Money: a non-negative decimal amount used for item prices and order totals
//
// Both are immutable. Their zero values fail Validate and must be produced by
// the constructors.
package kernel
