package order

import (
	"encoding/json"
	"fmt"

	"brokerage/internal/entities"
)

func FromDomainOrderModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{
		CustomerID:  orderModify.CustomerID,
		Total:       orderModify.Total,
		Source:      orderModify.Source,
		Destination: orderModify.Destination,
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}

	return orderDB
}

func FromDomainProductModify(productModify *entities.ProductModify) *ProductModifyDB {
	if productModify == nil {
		return nil
	}
	return &ProductModifyDB{
		OrderID:     productModify.OrderID,
		ObjectType:  productModify.ObjectType,
		Price:       productModify.Price,
		Description: productModify.Description,
		ImagePath:   productModify.ImagePath,
	}
}

func FromDomainDeliveryModify(deliveryModify *entities.DeliveryModify) (*DeliveryModifyDB, error) {
	if deliveryModify == nil {
		return nil, nil
	}
	deliveryDB := &DeliveryModifyDB{
		ID:           deliveryModify.ID,
		OrderID:      deliveryModify.OrderID,
		ShippingDate: deliveryModify.ShippingDate,
		DriverID:     deliveryModify.DriverID,
		UpdatedAt:    deliveryModify.UpdatedAt,
	}

	if deliveryModify.Status != nil {
		status := deliveryModify.Status.String()
		deliveryDB.Status = &status
	}
	if deliveryModify.StatusHistory != nil {
		history, err := EncodeStatusHistory(deliveryModify.StatusHistory)
		if err != nil {
			return nil, err
		}
		deliveryDB.StatusHistory = &history
	}

	return deliveryDB, nil
}

func ToDomainDeliveryState(d *DeliveryStateDB) (*entities.DeliveryState, error) {
	if d == nil {
		return nil, nil
	}

	history, err := DecodeStatusHistory(d.StatusHistory)
	if err != nil {
		return nil, err
	}

	return &entities.DeliveryState{
		Delivery: entities.Delivery{
			ID:            d.ID,
			OrderID:       d.OrderID,
			Status:        entities.DeliveryStatusType(d.Status),
			ShippingDate:  d.ShippingDate.UTC(),
			DriverID:      d.DriverID,
			StatusHistory: history,
			CreatedAt:     d.CreatedAt,
			UpdatedAt:     d.UpdatedAt,
		},
		OrderStatus: entities.OrderStatusType(d.OrderStatus),
	}, nil
}

func ToDomainDeliveryView(v *DeliveryViewDB) (*entities.DeliveryView, error) {
	if v == nil {
		return nil, nil
	}

	history, err := DecodeStatusHistory(v.StatusHistory)
	if err != nil {
		return nil, err
	}

	var objectType string
	if v.ObjectType != nil {
		objectType = *v.ObjectType
	}

	return &entities.DeliveryView{
		DeliveryID:    v.DeliveryID,
		OrderID:       v.OrderID,
		CustomerID:    v.CustomerID,
		ObjectType:    objectType,
		Description:   v.Description,
		ImagePath:     v.ImagePath,
		Source:        v.Source,
		Destination:   v.Destination,
		CurrentStatus: entities.DeliveryStatusType(v.Status),
		OrderStatus:   entities.OrderStatusType(v.OrderStatus),
		PaymentStatus: entities.PaymentStatusType(v.PaymentStatus),
		DriverID:      v.DriverID,
		ShippingDate:  v.ShippingDate.UTC(),
		StatusHistory: history,
		LastUpdated:   v.UpdatedAt,
	}, nil
}

// EncodeStatusHistory сериализует журнал в JSON массив, который хранится в TEXT как есть.
func EncodeStatusHistory(history entities.StatusHistory) (string, error) {
	data, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("encode status history: %w", err)
	}
	return string(data), nil
}

// DecodeStatusHistory пустое или NULL значение дает пустой журнал.
func DecodeStatusHistory(raw *string) (entities.StatusHistory, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	var history entities.StatusHistory
	err := json.Unmarshal([]byte(*raw), &history)
	if err != nil {
		return nil, fmt.Errorf("decode status history: %w", err)
	}
	return history, nil
}
