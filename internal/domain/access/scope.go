package access

import "koperasi-backend/internal/domain/member"

// Scope is the only place visibility is decided. Administrators see the
// collection unchanged; member-role callers see only the elements whose key
// equals their own name. Comparison is exact and case-sensitive, and the
// relative order of the input is preserved.
func Scope[T any](role member.Role, identityName string, items []T, keyOf func(T) string) []T {
	if role == member.RoleAdministrator {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keyOf(it) == identityName {
			out = append(out, it)
		}
	}
	return out
}
