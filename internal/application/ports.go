package application

// Hasher is the one-way credential hashing port. Hash produces a salted
// digest; Compare checks a plaintext against a digest using the
// library's constant-time comparison.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(plain, digest string) bool
}

// TokenIssuer creates a signed bearer token asserting the given subject.
// Expiry and key policy live with the implementation.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}
