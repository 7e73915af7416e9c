package models

// Role gates which board operations an account may perform.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

// RoleFromChoice maps the registration menu choice to a role.
func RoleFromChoice(choice int) (Role, bool) {
	switch choice {
	case 1:
		return RoleJobSeeker, true
	case 2:
		return RoleEmployer, true
	default:
		return "", false
	}
}

// User is a registered account. Passwords are stored as entered.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
	Role     Role   `json:"user_type"`
}
