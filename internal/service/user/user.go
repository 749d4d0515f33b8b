package user

import (
	"context"
	"fmt"
	"strings"

	"brokerage/internal/entities"
)

const searchLimit = 50

type User struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *User {
	return &User{
		repository: repository,
		txManager:  txManager,
	}
}

// SearchUsers поиск по вхождению в имя или email.
func (u *User) SearchUsers(ctx context.Context, query string) ([]entities.User, error) {
	users, err := u.repository.Search(ctx, strings.TrimSpace(query), searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (u *User) AssignRole(ctx context.Context, userID int64, rawRole string) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}

	role, ok := entities.ParseRole(strings.ToLower(strings.TrimSpace(rawRole)))
	if !ok {
		return ErrInvalidRole
	}

	err := u.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := u.repository.UserExists(ctx, userID)
		if err != nil {
			return fmt.Errorf("check user: %w", err)
		}
		if !exists {
			return ErrUserNotFound
		}

		hasRole, err := u.repository.HasRole(ctx, userID, role)
		if err != nil {
			return fmt.Errorf("check role: %w", err)
		}
		if hasRole {
			return ErrRoleAlreadyAssigned
		}

		if err := u.repository.AssignRole(ctx, userID, role); err != nil {
			return fmt.Errorf("assign role: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (u *User) DeleteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}

	if err := u.repository.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
