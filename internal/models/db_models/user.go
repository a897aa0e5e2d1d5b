package db_models

type Role string

const (
	RoleFounder    Role = "founder"
	RoleFreelancer Role = "freelancer"
)

func (r Role) Valid() bool {
	return r == RoleFounder || r == RoleFreelancer
}

// User is a staff account. Accounts are never deleted, only toggled
// inactive; inactive users cannot log in but stay attached to their
// historical logs, allocations and tasks.
type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         Role `gorm:"default:freelancer"`
	Active       bool
}
