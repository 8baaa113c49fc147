package domain

import "time"

// TokenIssuer issues service tokens (e.g. JWT) for callers of the send endpoints.
type TokenIssuer interface {
	Issue(subject string, scopes []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
