package user

import "errors"

var (
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidRole   = errors.New("invalid role")

	ErrUserNotFound = errors.New("user not found")

	ErrRoleAlreadyAssigned = errors.New("user already has this role")
	ErrUserHasOrders       = errors.New("user has orders and cannot be deleted")
)
