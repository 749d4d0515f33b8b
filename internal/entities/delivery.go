package entities

import (
	"slices"
	"time"
)

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryAssigned  DeliveryStatusType = "assigned"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryFailed    DeliveryStatusType = "failed"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// deliveryTransitions допустимые переходы: только вперед по цепочке
// pending -> assigned -> in_transit -> delivered и из любого нетерминального в failed.
var deliveryTransitions = map[DeliveryStatusType][]DeliveryStatusType{
	DeliveryPending:   {DeliveryAssigned, DeliveryFailed},
	DeliveryAssigned:  {DeliveryInTransit, DeliveryFailed},
	DeliveryInTransit: {DeliveryDelivered, DeliveryFailed},
}

func ParseDeliveryStatus(s string) (DeliveryStatusType, bool) {
	status := DeliveryStatusType(s)
	switch status {
	case DeliveryPending, DeliveryAssigned, DeliveryInTransit, DeliveryDelivered, DeliveryFailed:
		return status, true
	default:
		return "", false
	}
}

func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed
}

func (s DeliveryStatusType) CanTransitionTo(next DeliveryStatusType) bool {
	return slices.Contains(deliveryTransitions[s], next)
}

type StatusEntry struct {
	Status    DeliveryStatusType `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}

// StatusHistory журнал статусов доставки, только дописывается.
type StatusHistory []StatusEntry

// DefaultStatusHistory история для доставки, у которой журнал еще не записан.
func DefaultStatusHistory(shippingDate time.Time) StatusHistory {
	return StatusHistory{{Status: DeliveryPending, Timestamp: shippingDate.UTC()}}
}

func (h StatusHistory) Last() (StatusEntry, bool) {
	if len(h) == 0 {
		return StatusEntry{}, false
	}
	return h[len(h)-1], true
}

// Append возвращает новую историю с записью в конце. Время записи не может быть
// раньше предыдущей, так журнал остается упорядоченным даже при сдвиге часов.
func (h StatusHistory) Append(status DeliveryStatusType, at time.Time) StatusHistory {
	at = at.UTC()
	if last, ok := h.Last(); ok && last.Timestamp.After(at) {
		at = last.Timestamp
	}

	result := make(StatusHistory, len(h), len(h)+1)
	copy(result, h)
	return append(result, StatusEntry{Status: status, Timestamp: at})
}

type Delivery struct {
	ID            int64
	OrderID       int64
	Status        DeliveryStatusType
	ShippingDate  time.Time
	DriverID      *int64
	StatusHistory StatusHistory
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HistoryForTransition журнал, к которому дописывается переход в момент at.
// Пустой журнал получает запись pending не позже at: дата отгрузки обычно в
// будущем, и переход до нее не должен сдвигаться вперед по времени.
func (d *Delivery) HistoryForTransition(at time.Time) StatusHistory {
	if len(d.StatusHistory) > 0 {
		return d.StatusHistory
	}

	seed := d.ShippingDate.UTC()
	if seed.After(at) {
		seed = at.UTC()
	}
	return StatusHistory{{Status: DeliveryPending, Timestamp: seed}}
}

// DeliveryState доставка вместе со статусом заказа, заблокированные в транзакции.
type DeliveryState struct {
	Delivery
	OrderStatus OrderStatusType
}

type DeliveryModify struct {
	ID            *int64
	OrderID       *int64
	Status        *DeliveryStatusType
	ShippingDate  *time.Time
	DriverID      *int64
	StatusHistory StatusHistory
	UpdatedAt     *time.Time
}

// DeliveryView проекция для отслеживания доставки.
type DeliveryView struct {
	DeliveryID    int64
	OrderID       int64
	CustomerID    int64
	ObjectType    string
	Description   *string
	ImagePath     *string
	Source        string
	Destination   string
	CurrentStatus DeliveryStatusType
	OrderStatus   OrderStatusType
	PaymentStatus PaymentStatusType
	DriverID      *int64
	ShippingDate  time.Time
	StatusHistory StatusHistory
	LastUpdated   time.Time
}

// DeliveryStatusChange результат закоммиченного перехода, он же событие для подписчиков.
type DeliveryStatusChange struct {
	OrderID     int64
	DeliveryID  int64
	Status      DeliveryStatusType
	OrderStatus OrderStatusType
	DriverID    *int64
	UpdatedAt   time.Time
}
