package ports

import "context"

// TokenSource supplies the bearer credential attached to every outbound
// store request. A missing or empty credential is a fatal precondition:
// the caller must abort rather than issue unauthenticated requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
