package payment

import (
	"fmt"
	"time"

	"brokerage/internal/entities"

	"github.com/shopspring/decimal"
)

var millimesPerDinar = decimal.NewFromInt(1000)

// amountMillimes сумма заказа в миллимах, дробная часть миллима отбрасывается.
func amountMillimes(total decimal.Decimal) (int64, error) {
	if !total.IsPositive() {
		return 0, ErrInvalidAmount
	}

	amount := total.Mul(millimesPerDinar).Truncate(0)
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}
	return amount.IntPart(), nil
}

func checkPayable(order *entities.PaymentOrder) error {
	if order.PaymentStatus == entities.PaymentPaid {
		return ErrOrderAlreadyPaid
	}
	if order.DeliveryStatus.IsTerminal() {
		return fmt.Errorf("%w: delivery is %s", ErrOrderNotPayable, order.DeliveryStatus)
	}
	return nil
}

func paymentDescription(orderID int64) string {
	return fmt.Sprintf("Order #%d", orderID)
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
