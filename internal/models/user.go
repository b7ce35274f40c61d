package models

// UserRole represents the role assigned to an account.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// User represents an application user stored in the users table. The
// password hash never leaves the server.
type User struct {
	ID       int      `db:"id" json:"id"`
	Username string   `db:"username" json:"username"`
	Password string   `db:"password" json:"-"`
	FullName string   `db:"full_name" json:"fullName"`
	Email    string   `db:"email" json:"email"`
	Role     UserRole `db:"role" json:"role"`
}

// FirstName returns the leading word of the user's full name, used to
// personalise assistant replies.
func (u *User) FirstName() string {
	if u == nil || u.FullName == "" {
		return ""
	}
	for i, r := range u.FullName {
		if r == ' ' {
			return u.FullName[:i]
		}
	}
	return u.FullName
}
