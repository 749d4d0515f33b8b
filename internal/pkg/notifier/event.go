package notifier

import (
	"time"

	"brokerage/internal/entities"

	"github.com/google/uuid"
)

const EventTypeDeliveryStatusChanged = "delivery.status_changed"

// Event сериализованное представление перехода, одинаковое для Kafka и websocket.
type Event struct {
	EventID     string    `json:"eventId"`
	Type        string    `json:"type"`
	OrderID     int64     `json:"orderId"`
	DeliveryID  int64     `json:"deliveryId"`
	Status      string    `json:"status"`
	OrderStatus string    `json:"orderStatus"`
	DriverID    *int64    `json:"driverId"`
	UpdatedAt   time.Time `json:"updatedAt"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func newEvent(change entities.DeliveryStatusChange, now time.Time) Event {
	return Event{
		EventID:     uuid.NewString(),
		Type:        EventTypeDeliveryStatusChanged,
		OrderID:     change.OrderID,
		DeliveryID:  change.DeliveryID,
		Status:      change.Status.String(),
		OrderStatus: change.OrderStatus.String(),
		DriverID:    change.DriverID,
		UpdatedAt:   change.UpdatedAt.UTC(),
		OccurredAt:  now.UTC(),
	}
}
