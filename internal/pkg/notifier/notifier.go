package notifier

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"brokerage/internal/entities"
	"brokerage/internal/pkg/metrics"
	"brokerage/pkg/logger"
)

const (
	sinkKafka     = "kafka"
	sinkWebsocket = "websocket"
)

// Notifier рассылает закоммиченные переходы статуса. Ошибки доставки только логируются:
// источник истины база, а подписчик всегда может перечитать состояние.
type Notifier struct {
	log       notifierLogger
	publisher publisher
	hub       broadcaster
}

// New publisher может быть nil, тогда события уходят только в websocket.
func New(log notifierLogger, publisher publisher, hub broadcaster) *Notifier {
	return &Notifier{
		log:       log,
		publisher: publisher,
		hub:       hub,
	}
}

func (n *Notifier) Notify(ctx context.Context, change entities.DeliveryStatusChange) {
	// переход уже закоммичен, отмена запроса не должна терять событие
	ctx = context.WithoutCancel(ctx)

	event := newEvent(change, time.Now())
	fields := []logger.Field{
		logger.NewField("event_id", event.EventID),
		logger.NewField("order_id", event.OrderID),
		logger.NewField("status", event.Status),
	}

	if n.publisher != nil {
		payload, err := json.Marshal(event)
		if err != nil {
			n.fail(sinkKafka, err, fields)
		} else if err := n.publisher.Publish(ctx, strconv.FormatInt(event.OrderID, 10), payload); err != nil {
			n.fail(sinkKafka, err, fields)
		}
	}

	if n.hub != nil && !n.hub.Broadcast(event.OrderID, event.Type, event) {
		metrics.NotifierSinkFailuresTotal.WithLabelValues(sinkWebsocket).Inc()
		n.log.Warn("status event dropped by websocket hub", fields...)
	}
}

func (n *Notifier) fail(sink string, err error, fields []logger.Field) {
	metrics.NotifierSinkFailuresTotal.WithLabelValues(sink).Inc()
	n.log.Error("failed to deliver status event",
		append(fields, logger.NewField("sink", sink), logger.NewField("error", err))...,
	)
}
