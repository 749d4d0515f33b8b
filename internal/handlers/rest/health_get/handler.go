package health_get

import (
	"context"
	"net/http"
	"time"

	"brokerage/internal/generated/dto"
	"brokerage/internal/handlers/rest/response"
	"brokerage/pkg/logger"
)

const (
	pingTimeout = 2 * time.Second

	statusOK       = "ok"
	statusDegraded = "degraded"

	databaseConnected    = "connected"
	databaseDisconnected = "disconnected"
)

type Handler struct {
	log handlerLogger
	db  pinger
}

func New(log handlerLogger, db pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		db:  db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	err := h.db.Ping(ctx)
	if err != nil {
		h.log.Warn("database ping failed", logger.NewField("error", err))
		response.JSON(h.log, w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   statusDegraded,
			Database: databaseDisconnected,
		})
		return
	}

	response.JSON(h.log, w, http.StatusOK, dto.HealthResponse{
		Status:   statusOK,
		Database: databaseConnected,
	})
}
