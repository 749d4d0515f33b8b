package response

import (
	"brokerage/internal/entities"
	"brokerage/internal/generated/dto"
)

func PaymentStatus(order *entities.PaymentOrder) dto.PaymentStatusResponse {
	return dto.PaymentStatusResponse{
		OrderID:        order.OrderID,
		PaymentID:      order.PaymentRef,
		PaymentStatus:  order.PaymentStatus.String(),
		DeliveryStatus: order.DeliveryStatus.String(),
		Total:          order.Total.StringFixed(3),
		InitiatedAt:    order.PaymentInitiatedAt,
	}
}

// PaymentOutcome для промежуточных статусов шлюза заказ может отсутствовать.
func PaymentOutcome(outcome *entities.PaymentOutcome) dto.PaymentOutcomeResponse {
	resp := dto.PaymentOutcomeResponse{
		PaymentRef:    outcome.PaymentRef,
		GatewayStatus: outcome.GatewayStatus.String(),
	}
	if outcome.Order != nil {
		orderID := outcome.Order.OrderID
		paymentStatus := outcome.Order.PaymentStatus.String()
		deliveryStatus := outcome.Order.DeliveryStatus.String()
		resp.OrderID = &orderID
		resp.PaymentStatus = &paymentStatus
		resp.DeliveryStatus = &deliveryStatus
	}
	return resp
}
