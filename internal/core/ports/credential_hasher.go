package ports

// CredentialHasher is a one-way password hash with verification.
type CredentialHasher interface {
	Hash(secret string) (string, error)

	// Verify reports whether secret matches hash. A malformed hash never matches.
	Verify(secret, hash string) bool
}
