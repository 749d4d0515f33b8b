package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"brokerage/internal/entities"

	"github.com/shopspring/decimal"
)

type Order struct {
	repository Repository
	identity   IdentityGateway
	storage    FileStorage
	notifier   Notifier
	txManager  TxManager
}

func New(
	repository Repository,
	identity IdentityGateway,
	storage FileStorage,
	notifier Notifier,
	txManager TxManager,
) *Order {
	return &Order{
		repository: repository,
		identity:   identity,
		storage:    storage,
		notifier:   notifier,
		txManager:  txManager,
	}
}

func (s *Order) CreateOrder(ctx context.Context, newOrder entities.NewOrder) (*entities.CreatedOrder, error) {
	if missing := missingFields(newOrder); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}
	if !isValidID(newOrder.CustomerID) {
		return nil, ErrInvalidCustomerID
	}

	shippingDate, ok := parseShippingDate(newOrder.ShippingDate)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShippingDate, newOrder.ShippingDate)
	}

	exists, err := s.identity.UserExists(ctx, newOrder.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	var imagePath *string
	if newOrder.Image != nil {
		path, err := s.storage.Save(ctx, *newOrder.Image)
		if err != nil {
			return nil, fmt.Errorf("%w: store image: %w", ErrOrderCreationFailed, err)
		}
		imagePath = &path
	}

	created := entities.CreatedOrder{ImagePath: imagePath}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		orderStatus := entities.OrderPending
		total := decimal.Zero
		orderID, err := s.repository.CreateOrder(ctx, entities.OrderModify{
			CustomerID:  &newOrder.CustomerID,
			Status:      &orderStatus,
			Total:       &total,
			Source:      &newOrder.Source,
			Destination: &newOrder.Destination,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		price := decimal.Zero
		_, err = s.repository.CreateProduct(ctx, entities.ProductModify{
			OrderID:     &orderID,
			ObjectType:  &newOrder.ObjectType,
			Price:       &price,
			Description: newOrder.Description,
			ImagePath:   imagePath,
		})
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}

		deliveryStatus := entities.DeliveryPending
		deliveryID, err := s.repository.CreateDelivery(ctx, entities.DeliveryModify{
			OrderID:      &orderID,
			Status:       &deliveryStatus,
			ShippingDate: &shippingDate,
		})
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		created.OrderID = orderID
		created.DeliveryID = deliveryID
		return nil
	})
	if err != nil {
		if imagePath != nil {
			if rmErr := s.storage.Remove(ctx, *imagePath); rmErr != nil {
				err = fmt.Errorf("%w (failed to remove image: %w)", err, rmErr)
			}
		}
		if errors.Is(err, ErrCustomerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrOrderCreationFailed, err)
	}

	s.notifier.Notify(ctx, entities.DeliveryStatusChange{
		OrderID:     created.OrderID,
		DeliveryID:  created.DeliveryID,
		Status:      entities.DeliveryPending,
		OrderStatus: entities.OrderPending,
		UpdatedAt:   now(),
	})

	return &created, nil
}

// CancelOrder переводит заказ в cancelled, а доставку в failed. Повторная отмена
// ничего не меняет и не дописывает историю.
func (s *Order) CancelOrder(ctx context.Context, orderID int64) error {
	if !isValidID(orderID) {
		return ErrInvalidOrderID
	}

	var change *entities.DeliveryStatusChange
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		state, err := s.repository.GetDeliveryForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if state.Status == entities.DeliveryFailed {
			if state.OrderStatus == entities.OrderCancelled {
				return nil
			}
			// доставка уже провалена, отменяем только заказ
			err = s.repository.UpdateOrderStatus(ctx, orderID, entities.OrderCancelled)
			if err != nil {
				return fmt.Errorf("update order status: %w", err)
			}
			return nil
		}

		change, err = s.applyTransition(ctx, state, entities.DeliveryFailed, nil)
		if err != nil {
			return err
		}

		err = s.repository.UpdateOrderStatus(ctx, orderID, entities.OrderCancelled)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		change.OrderStatus = entities.OrderCancelled
		return nil
	})
	if err != nil {
		return err
	}

	if change != nil {
		s.notifier.Notify(ctx, *change)
	}
	return nil
}

func (s *Order) UpdateDeliveryStatus(ctx context.Context, orderID int64, newStatus string) (*entities.DeliveryStatusChange, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	status, ok := entities.ParseDeliveryStatus(newStatus)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	change, err := s.TransitionDelivery(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, *change)
	return change, nil
}

// TransitionDelivery переход без уведомления. Вызывающий отвечает за Notify
// после коммита, если внешняя транзакция уже открыта.
func (s *Order) TransitionDelivery(ctx context.Context, orderID int64, status entities.DeliveryStatusType) (*entities.DeliveryStatusChange, error) {
	var change *entities.DeliveryStatusChange
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		state, err := s.repository.GetDeliveryForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		change, err = s.applyTransition(ctx, state, status, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

func (s *Order) AssignDriver(ctx context.Context, orderID, driverID int64) (*entities.DeliveryStatusChange, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	var change *entities.DeliveryStatusChange
	var changed bool
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.repository.DriverExists(ctx, driverID)
		if err != nil {
			return fmt.Errorf("check driver: %w", err)
		}
		if !exists {
			return ErrDriverNotFound
		}

		state, err := s.repository.GetDeliveryForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		switch state.Status {
		case entities.DeliveryPending:
			change, err = s.applyTransition(ctx, state, entities.DeliveryAssigned, &driverID)
			changed = true
			return err

		case entities.DeliveryAssigned:
			if state.DriverID != nil {
				if *state.DriverID != driverID {
					return fmt.Errorf("%w: driver %d", ErrDriverAlreadyAssigned, *state.DriverID)
				}
				change = stateChange(state)
				return nil
			}

			// назначено после оплаты, но без водителя: история не меняется
			updatedAt := now()
			err = s.repository.UpdateDelivery(ctx, entities.DeliveryModify{
				ID:        &state.ID,
				DriverID:  &driverID,
				UpdatedAt: &updatedAt,
			})
			if err != nil {
				return fmt.Errorf("update delivery driver: %w", err)
			}
			state.DriverID = &driverID
			state.UpdatedAt = updatedAt
			change = stateChange(state)
			changed = true
			return nil

		default:
			return fmt.Errorf("%w: cannot assign driver in status %s", ErrInvalidTransition, state.Status)
		}
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.notifier.Notify(ctx, *change)
	}
	return change, nil
}

func (s *Order) TrackDelivery(ctx context.Context, orderID int64) (*entities.DeliveryView, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	view, err := s.repository.GetDeliveryView(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get delivery view: %w", err)
	}

	if len(view.StatusHistory) == 0 {
		view.StatusHistory = entities.DefaultStatusHistory(view.ShippingDate)
	}
	return view, nil
}

// applyTransition проверяет переход по графу и пишет статус с историей.
// Должен вызываться внутри транзакции с заблокированной строкой доставки.
func (s *Order) applyTransition(
	ctx context.Context,
	state *entities.DeliveryState,
	next entities.DeliveryStatusType,
	driverID *int64,
) (*entities.DeliveryStatusChange, error) {
	if !state.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, state.Status, next)
	}

	// updated_at всегда реальное время перехода, выравнивается только запись журнала
	updatedAt := now()
	history := state.HistoryForTransition(updatedAt).Append(next, updatedAt)

	err := s.repository.UpdateDelivery(ctx, entities.DeliveryModify{
		ID:            &state.ID,
		Status:        &next,
		DriverID:      driverID,
		StatusHistory: history,
		UpdatedAt:     &updatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("update delivery: %w", err)
	}

	orderStatus := state.OrderStatus
	if next == entities.DeliveryDelivered {
		err = s.repository.UpdateOrderStatus(ctx, state.OrderID, entities.OrderDelivered)
		if err != nil {
			return nil, fmt.Errorf("update order status: %w", err)
		}
		orderStatus = entities.OrderDelivered
	}

	if driverID == nil {
		driverID = state.DriverID
	}

	return &entities.DeliveryStatusChange{
		OrderID:     state.OrderID,
		DeliveryID:  state.ID,
		Status:      next,
		OrderStatus: orderStatus,
		DriverID:    driverID,
		UpdatedAt:   updatedAt,
	}, nil
}

func stateChange(state *entities.DeliveryState) *entities.DeliveryStatusChange {
	return &entities.DeliveryStatusChange{
		OrderID:     state.OrderID,
		DeliveryID:  state.ID,
		Status:      state.Status,
		OrderStatus: state.OrderStatus,
		DriverID:    state.DriverID,
		UpdatedAt:   state.UpdatedAt,
	}
}
