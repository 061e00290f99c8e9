package models

// Role gates write access to the console. Comparisons are exact string
// matches against the three seeded roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAnalyst Role = "analyst"
	RoleViewer  Role = "viewer"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAnalyst, RoleViewer:
		return true
	}
	return false
}

// User is the stored account record. Password is plain text prototype seed
// data and must never be serialized or returned by any accessor other than
// FindByEmail (login path).
type User struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Role     Role   `json:"role" yaml:"role"`
	Password string `json:"-" yaml:"password"`
}

// Profile is the credential-stripped view of a User. Sessions snapshot a
// Profile at login time; the snapshot is not refreshed on later role edits.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Sanitize strips the credential from a stored record.
func (u User) Sanitize() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
