// Package user provides the User entity: the identity a bearer token
// resolves to and the subject of every authorization decision.
//
// Business rules:
//   - Email is trimmed, lower-cased and must be a single address
//   - Name is required
//   - The secret is never stored, only its opaque hash
//   - Active and admin flags are part of the model; the access guard does not
//     consult active
package user
