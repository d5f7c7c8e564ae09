// Package entity defines the domain entities for the auth feature.
package entity

// Credential is one row of the credential table consulted by login.
// Exactly one of Password and PasswordHash is set.
type Credential struct {
	// Username is the lookup key. It is matched case-sensitively.
	Username string

	// Password is a plaintext password compared byte for byte.
	Password string

	// PasswordHash is a bcrypt hash. When set, Password is ignored.
	PasswordHash string

	// DisplayName is returned to the client on successful login.
	DisplayName string
}

// IsHashed reports whether the credential is verified with bcrypt.
func (c Credential) IsHashed() bool {
	return c.PasswordHash != ""
}
