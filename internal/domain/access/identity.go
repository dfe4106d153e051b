package access

import "koperasi-backend/internal/domain/member"

// CtxKey is where the auth middleware stores the caller's identity.
const CtxKey = "identity"

// Identity is the authenticated caller as the visibility filter sees it.
type Identity struct {
	Name string
	Role member.Role
}

// Admin reports whether the identity bypasses scoping.
func (i Identity) Admin() bool { return i.Role == member.RoleAdministrator }
