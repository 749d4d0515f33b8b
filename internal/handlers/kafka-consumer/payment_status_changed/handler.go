package payment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"brokerage/internal/entities"
	"brokerage/internal/service/payment"
	"brokerage/internal/service/payment_status"
	"brokerage/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	paymentStatusService     Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentStatusService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		paymentStatusService:     paymentStatusService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payment.status_changed: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}
		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("payment.status_changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без
// коммита оффсета, чтобы сообщение обработали повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event paymentStatusEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("payment.status_changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("payment_ref", event.PaymentRef),
		logger.NewField("event_status", event.Status),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("payment.status_changed processing")

	outcome, err := h.paymentStatusService.ProcessPaymentStatusChange(ctx, entities.PaymentStatusEvent{
		PaymentRef: event.PaymentRef,
		Status:     entities.GatewayPaymentStatus(strings.ToLower(event.Status)),
	})
	if err != nil {
		errLog := msgLog.With(logger.NewField("error", err))
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			errLog.Warn("payment.status_changed handler context cancelled, message will be reprocessed")
			return true
		case errors.Is(err, payment_status.ErrMissingPaymentRef):
			errLog.Warn("payment.status_changed handler message without payment reference")
		case errors.Is(err, payment.ErrPaymentNotFound):
			errLog.Warn("payment.status_changed handler unknown payment reference")
		default:
			// заказ остается в pending, его подберет задача сверки
			errLog.Error("payment.status_changed handler failed to process payment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	fields := []logger.Field{
		logger.NewField("payment_ref", outcome.PaymentRef),
		logger.NewField("gateway_status", outcome.GatewayStatus.String()),
		logger.NewField("offset", message.Offset),
	}
	if outcome.Order != nil {
		fields = append(fields,
			logger.NewField("order", outcome.Order.OrderID),
			logger.NewField("payment_status", outcome.Order.PaymentStatus.String()),
		)
	}
	h.log.With(fields...).Info("payment.status_changed: processed")

	sess.MarkMessage(message, "")
	return false
}
