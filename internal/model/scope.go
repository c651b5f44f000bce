package model

import "context"

// Actor roles as supplied by the identity collaborator.
const (
	RoleAdmin     = "admin"
	RoleLibrarian = "librarian"
	RoleMember    = "member"
)

// Scope is the authenticated actor attached to each request by the identity
// middleware. The core trusts the upstream identity service for both fields.
type Scope struct {
	ActorID string
	Role    string
}

// CanManageLoans reports whether the actor may call borrow/return and other
// administrative flows.
func (s Scope) CanManageLoans() bool {
	return s.Role == RoleAdmin || s.Role == RoleLibrarian
}

type scopeKey struct{}

// SetScopeToContext attaches the actor scope to the request context.
func SetScopeToContext(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// GetScopeFromContext returns the actor scope attached by the identity
// middleware, if any.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	return s, ok
}
