package entities

// Role роль, которую админ может выдать пользователю. Каждой роли соответствует
// своя таблица, поэтому набор значений закрыт.
type Role string

const (
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, bool) {
	role := Role(s)
	switch role {
	case RoleDriver, RoleAdmin:
		return role, true
	default:
		return "", false
	}
}

type User struct {
	ID       int64
	Name     string
	Email    string
	Phone    *string
	Location *string
	IsDriver bool
	IsAdmin  bool
}
