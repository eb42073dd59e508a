package storeapi

import (
	"context"

	"orderboard/internal/pkg/errs"
)

// StaticTokenSource serves one fixed bearer credential, typically loaded
// from configuration at startup. Rotation requires a restart.
type StaticTokenSource string

// NewStaticTokenSource creates a token source from a fixed credential.
// An empty credential is a configuration error, not a valid anonymous mode.
func NewStaticTokenSource(token string) (StaticTokenSource, error) {
	if token == "" {
		return "", errs.NewValueIsRequiredError("token")
	}
	return StaticTokenSource(token), nil
}

// Token returns the configured credential.
func (s StaticTokenSource) Token(_ context.Context) (string, error) {
	return string(s), nil
}
