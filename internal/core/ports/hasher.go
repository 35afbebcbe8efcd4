package ports

// PasswordHasher produces and checks one-way salted password digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A malformed
	// digest is a plain mismatch, never an error.
	Verify(plaintext, digest string) bool
}
