package user

import (
	"context"
	"fmt"

	"brokerage/internal/entities"
	"brokerage/internal/repository"
	"brokerage/internal/service/user"

	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// запросы на каждую роль фиксированы, имя таблицы не подставляется из входных данных
var (
	hasRoleQueries = map[entities.Role]string{
		entities.RoleDriver: `SELECT EXISTS (SELECT 1 FROM drivers WHERE user_id = $1)`,
		entities.RoleAdmin:  `SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`,
	}
	assignRoleQueries = map[entities.Role]string{
		entities.RoleDriver: `INSERT INTO drivers (user_id) VALUES ($1)`,
		entities.RoleAdmin:  `INSERT INTO admins (user_id) VALUES ($1)`,
	}
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Search(ctx context.Context, query string, limit uint64) ([]entities.User, error) {
	builder := qb.
		Select(
			"u.id", "u.name", "u.email", "u.phone", "u.location",
			"EXISTS (SELECT 1 FROM drivers d WHERE d.user_id = u.id)",
			"EXISTS (SELECT 1 FROM admins a WHERE a.user_id = u.id)",
		).
		From("users u")

	if query != "" {
		pattern := repository.ContainsPattern(query)
		builder = builder.Where(sq.Or{
			sq.ILike{"u.name": pattern},
			sq.ILike{"u.email": pattern},
		})
	}

	builder = builder.OrderBy("u.id").Limit(limit)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}

	rows, err := r.querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Email,
			&userModel.Phone,
			&userModel.Location,
			&userModel.IsDriver,
			&userModel.IsAdmin,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository search error: %w", err)
		}
		users = append(users, *ToDomain(&userModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}

	return users, nil
}

// UserExists используется и как источник идентичности клиентов по умолчанию.
func (r *Repository) UserExists(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected user repository exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) HasRole(ctx context.Context, userID int64, role entities.Role) (bool, error) {
	query, ok := hasRoleQueries[role]
	if !ok {
		return false, user.ErrInvalidRole
	}

	var hasRole bool
	err := r.querier.QueryRow(ctx, query, userID).Scan(&hasRole)
	if err != nil {
		return false, fmt.Errorf("unexpected user repository has role error: %w", err)
	}

	return hasRole, nil
}

func (r *Repository) AssignRole(ctx context.Context, userID int64, role entities.Role) error {
	query, ok := assignRoleQueries[role]
	if !ok {
		return user.ErrInvalidRole
	}

	_, err := r.querier.Exec(ctx, query, userID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return user.ErrRoleAlreadyAssigned
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("unexpected user repository assign role error: %w", err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, userID int64) error {
	query := `DELETE FROM users WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, userID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return user.ErrUserHasOrders
		}
		return fmt.Errorf("unexpected user repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
