package authorization

// UserRole is the role claim carried in a JWT. The service has a single
// configured operator credential, so admin is the only role ever issued;
// anything else in a token is rejected by RequireAdmin.
type UserRole string

const RoleAdmin UserRole = "admin"

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}
