package auth

import "context"

var _ Checker = (*LoginChecker)(nil)

type Checker interface {
	// IsLogged returns the id of the user the token belongs to, and whether the session is still valid.
	IsLogged(ctx context.Context, token string) (int, bool, error)
}
