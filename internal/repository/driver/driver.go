package driver

import (
	"context"
	"fmt"

	"brokerage/internal/entities"
	"brokerage/internal/repository"

	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListAvailableWithPosition свободные водители с известными координатами в порядке id.
func (r *Repository) ListAvailableWithPosition(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error) {
	filter.WithPositionOnly = true

	builder := availableDrivers(filter).
		OrderBy("d.id")

	drivers, err := r.list(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list with position error: %w", err)
	}
	return drivers, nil
}

// SearchAvailableByArea свободные водители по зоне обслуживания, лучшие по рейтингу первыми.
func (r *Repository) SearchAvailableByArea(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error) {
	builder := availableDrivers(filter).
		OrderBy("d.rating DESC", "d.id")

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	drivers, err := r.list(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository search by area error: %w", err)
	}
	return drivers, nil
}

func availableDrivers(filter entities.DriverFilter) sq.SelectBuilder {
	builder := qb.
		Select(
			"d.id", "d.user_id", "u.name", "u.phone", "d.vehicle_type", "d.is_available",
			"d.latitude", "d.longitude", "d.service_area", "d.rating",
		).
		From("drivers d").
		Join("users u ON u.id = d.user_id").
		Where(sq.Eq{"d.is_available": true})

	// опционные условия
	if filter.WithPositionOnly {
		builder = builder.Where(sq.NotEq{"d.latitude": nil, "d.longitude": nil})
	}
	if filter.ServiceArea != nil {
		builder = builder.Where(sq.ILike{"d.service_area": repository.ContainsPattern(*filter.ServiceArea)})
	}
	if filter.VehicleType != nil && !filter.VehicleType.IsWildcard() {
		builder = builder.Where(sq.Eq{"d.vehicle_type": filter.VehicleType.String()})
	}
	if filter.MaxActiveDeliveries > 0 {
		builder = builder.Where(
			sq.Expr(
				"(SELECT COUNT(*) FROM delivery a WHERE a.driver_id = d.id AND a.status IN (?, ?)) < ?",
				entities.DeliveryAssigned.String(),
				entities.DeliveryInTransit.String(),
				filter.MaxActiveDeliveries,
			),
		)
	}

	return builder
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder) ([]entities.Driver, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		err := rows.Scan(
			&driverModel.ID,
			&driverModel.UserID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.VehicleType,
			&driverModel.IsAvailable,
			&driverModel.Latitude,
			&driverModel.Longitude,
			&driverModel.ServiceArea,
			&driverModel.Rating,
		)
		if err != nil {
			return nil, err
		}
		driverModels = append(driverModels, driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return ToDomainList(driverModels), nil
}
