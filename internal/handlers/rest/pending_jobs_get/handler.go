package pending_jobs_get

import (
	"net/http"

	"brokerage/internal/generated/dto"
	"brokerage/internal/handlers/rest/response"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var source *string
	if raw := r.URL.Query().Get("source"); raw != "" {
		source = &raw
	}

	jobs, err := h.service.ListPendingJobs(r.Context(), source)
	if err != nil {
		response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}

	jobsDTO := make([]dto.PendingJob, 0, len(jobs))
	for _, job := range jobs {
		jobsDTO = append(jobsDTO, dto.PendingJob{
			ID:          job.OrderID,
			ObjectType:  job.ObjectType,
			ImageURL:    response.ImageURL(job.ImagePath),
			Source:      job.Source,
			Destination: job.Destination,
			Date:        job.Date,
		})
	}

	response.JSON(h.log, w, http.StatusOK, jobsDTO)
}
