package domain

type Role string

const (
	RoleLearner  Role = "LEARNER"
	RoleEducator Role = "EDUCATOR"
)

func ValidRole(r Role) bool {
	return r == RoleLearner || r == RoleEducator
}

type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Name         string
	Role         Role
}
