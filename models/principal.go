package models

// ScopeAll grants unrestricted access. It is the scope attached by the
// accept-all verifier, which performs no verification at all.
const ScopeAll = "all"

// Principal is the identity produced by a successful token verification.
//
// The accept-all verifier returns an empty Subject because it never inspects
// the token; the JWT verifier fills Subject from the token's "sub" claim.
type Principal struct {
	// Subject identifies the authenticated party. Empty when the verifier
	// does not establish identity.
	Subject string `json:"subject,omitempty"`

	// Scope is the authorization scope granted to the principal.
	Scope string `json:"scope"`
}
