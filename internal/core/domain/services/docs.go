// Package services provides domain services that make decisions spanning
// more than one aggregate.
//
// The package includes:
//   - AccessPolicy: the owner-or-admin authorization rule applied to every
//     order operation, and the admin-only rule for listing all orders
package services
