package report

import "brokerage/internal/entities"

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ToDomainOrderSummary(o *OrderSummaryDB) entities.OrderSummary {
	return entities.OrderSummary{
		OrderID:        o.OrderID,
		Date:           o.Date,
		OrderStatus:    entities.OrderStatusType(o.OrderStatus),
		Total:          o.Total,
		Source:         o.Source,
		Destination:    o.Destination,
		ObjectType:     deref(o.ObjectType),
		Description:    o.Description,
		ImagePath:      o.ImagePath,
		DeliveryID:     o.DeliveryID,
		DeliveryStatus: entities.DeliveryStatusType(o.DeliveryStatus),
		ShippingDate:   o.ShippingDate.UTC(),
		DriverID:       o.DriverID,
		PaymentStatus:  entities.PaymentStatusType(o.PaymentStatus),
	}
}

func ToDomainPendingJob(j *PendingJobDB) entities.PendingJob {
	return entities.PendingJob{
		OrderID:     j.OrderID,
		ObjectType:  deref(j.ObjectType),
		ImagePath:   j.ImagePath,
		Source:      j.Source,
		Destination: j.Destination,
		Date:        j.Date,
	}
}

func ToDomainRecentDelivery(d *RecentDeliveryDB) entities.RecentDelivery {
	return entities.RecentDelivery{
		OrderID:      d.OrderID,
		Status:       entities.DeliveryStatusType(d.Status),
		CreatedAt:    d.CreatedAt,
		CustomerName: d.CustomerName,
	}
}

func ToDomainTopDriver(d *TopDriverDB) entities.TopDriver {
	return entities.TopDriver{
		Name:        d.Name,
		VehicleType: entities.VehicleType(d.VehicleType),
		Rating:      d.Rating,
	}
}
