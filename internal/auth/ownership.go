package auth

// Authorize reports whether the acting partner may mutate a resource owned by
// owner. Ownership equality is the only authorization rule: a partner edits
// its own record and the plants it registered, nothing else. There is no
// admin role.
func Authorize(acting, owner int64) bool {
	return acting == owner
}
