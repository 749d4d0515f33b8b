package response

import (
	"encoding/json"
	"net/http"

	"brokerage/internal/generated/dto"
	"brokerage/internal/pkg/middlewares/error_details"
	"brokerage/pkg/logger"
)

type responseLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(log responseLogger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error пишет {"error": message}. Причина попадает в details, если это разрешено
// middleware error_details. 5xx логируются вместе с причиной.
func Error(log responseLogger, w http.ResponseWriter, r *http.Request, status int, message string, cause error) {
	body := dto.ErrorResponse{Error: message}
	if cause != nil && error_details.Expose(r.Context()) {
		details := cause.Error()
		body.Details = &details
	}

	if status >= http.StatusInternalServerError {
		log.Error(message,
			logger.NewField("error", cause),
			logger.NewField("method", r.Method),
			logger.NewField("path", r.URL.Path),
		)
	}

	JSON(log, w, status, body)
}

// ImageURL публичный адрес загруженного файла.
func ImageURL(imagePath *string) *string {
	if imagePath == nil || *imagePath == "" {
		return nil
	}
	url := "/" + *imagePath
	return &url
}
