package models

// Role names for the three flat platform roles.
const (
	RoleStudent    = "student"
	RoleEmployer   = "employer"
	RoleUniversity = "university"
)

// User is an authenticated platform account. The platform ships with a fixed
// set of demo users; there is no registration flow.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"-"`
	Role         string `json:"role"`
}
