package driver

import "brokerage/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:          d.ID,
		UserID:      d.UserID,
		Name:        d.Name,
		Phone:       d.Phone,
		VehicleType: entities.VehicleType(d.VehicleType),
		IsAvailable: d.IsAvailable,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
		ServiceArea: d.ServiceArea,
		Rating:      d.Rating,
	}
}

func ToDomainList(drivers []DriverDB) []entities.Driver {
	result := make([]entities.Driver, 0, len(drivers))
	for i := range drivers {
		result = append(result, *ToDomain(&drivers[i]))
	}
	return result
}
