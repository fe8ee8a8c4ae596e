// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of an account, stored in the "nivel"
// field of the user document.
type Role string

const (
	// RoleAdmin can manage every user and pet record.
	RoleAdmin Role = "admin"
	// RoleUser is a regular pet owner, the default when the field is absent.
	RoleUser Role = "user"
	// RoleDemo is a read-mostly role: mutating calls are rejected at the
	// service boundary, not just hidden in the presentation layer.
	RoleDemo Role = "demo"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleDemo:
		return true
	default:
		return false
	}
}

// CanWrite reports whether the role is allowed to perform mutating calls.
func (r Role) CanWrite() bool {
	return r != RoleDemo
}

// SeesAllPets reports whether the role lists every pet rather than only the
// caller's own records.
func (r Role) SeesAllPets() bool {
	return r == RoleAdmin || r == RoleDemo
}
