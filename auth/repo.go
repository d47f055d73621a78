package auth

// Credentials is the persisted mirror of a session: the bearer token and the
// serialized user, always written and cleared together.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CredentialsRepo is the durable store for Credentials. Implementations must
// write both fields in one operation so a reader never observes a token
// without its user or vice versa.
type CredentialsRepo interface {
	// Write persists the credentials, replacing any previous ones.
	Write(creds Credentials) error
	// Read returns the stored credentials. ok is false when nothing usable is
	// stored; a corrupt store reads as absent, never as an error the caller
	// must handle.
	Read() (creds Credentials, ok bool)
	// Clear removes the stored credentials. Clearing an empty store is a no-op.
	Clear() error
	// Token returns the stored bearer token, or "" when absent. This is what
	// the transport consults on every outgoing request.
	Token() string
}
