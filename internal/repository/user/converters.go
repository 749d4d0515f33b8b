package user

import "brokerage/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Location: u.Location,
		IsDriver: u.IsDriver,
		IsAdmin:  u.IsAdmin,
	}
}
