package user

type UserDB struct {
	ID       int64
	Name     string
	Email    string
	Phone    *string
	Location *string
	IsDriver bool
	IsAdmin  bool
}
