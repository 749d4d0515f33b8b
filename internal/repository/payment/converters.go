package payment

import "brokerage/internal/entities"

func ToDomain(p *PaymentOrderDB) *entities.PaymentOrder {
	if p == nil {
		return nil
	}
	return &entities.PaymentOrder{
		OrderID:            p.OrderID,
		CustomerID:         p.CustomerID,
		CustomerName:       p.CustomerName,
		CustomerEmail:      p.CustomerEmail,
		Total:              p.Total,
		PaymentRef:         p.PaymentRef,
		PaymentStatus:      entities.PaymentStatusType(p.PaymentStatus),
		PaymentInitiatedAt: p.PaymentInitiatedAt,
		DeliveryStatus:     entities.DeliveryStatusType(p.DeliveryStatus),
	}
}
