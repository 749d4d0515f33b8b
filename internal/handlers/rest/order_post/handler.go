package order_post

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"brokerage/internal/entities"
	"brokerage/internal/generated/dto"
	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/pkg/storage/local"
	"brokerage/internal/service/order"
)

const (
	imageField = "image"

	// запас на текстовые поля формы поверх размера файла
	formOverhead = 1 << 20
)

type Handler struct {
	log           handlerLogger
	service       Service
	maxUploadSize int64
}

func New(log handlerLogger, service Service, maxUploadSize int64) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:           handlerLog,
		service:       service,
		maxUploadSize: maxUploadSize,
	}
}

// ServeHTTP принимает multipart/form-data с файлом image или JSON без файла.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+formOverhead)

	newOrder, err := h.decode(r)
	// форма могла разобраться до ошибки в полях, временные файлы удаляются всегда
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.Error(h.log, w, r, http.StatusRequestEntityTooLarge, "Image is too large", err)
			return
		}
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if newOrder.Image != nil {
		if closer, ok := newOrder.Image.Content.(io.Closer); ok {
			defer closer.Close()
		}
	}

	created, err := h.service.CreateOrder(r.Context(), newOrder)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			response.Error(h.log, w, r, http.StatusBadRequest, "Missing required fields", err)
		case errors.Is(err, order.ErrInvalidCustomerID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid customer ID", err)
		case errors.Is(err, order.ErrInvalidShippingDate):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid shipping date, expected YYYY-MM-DD", err)
		case errors.Is(err, local.ErrUnsupportedFile):
			response.Error(h.log, w, r, http.StatusBadRequest, "Unsupported image type", err)
		case errors.Is(err, local.ErrFileTooLarge):
			response.Error(h.log, w, r, http.StatusRequestEntityTooLarge, "Image is too large", err)
		case errors.Is(err, order.ErrCustomerNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "Customer not found", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to create order", err)
		}
		return
	}

	response.JSON(h.log, w, http.StatusCreated, dto.OrderCreateResponse{
		Message:    "Order created successfully",
		OrderID:    created.OrderID,
		DeliveryID: created.DeliveryID,
		ImagePath:  created.ImagePath,
	})
}

func (h *Handler) decode(r *http.Request) (entities.NewOrder, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return h.decodeMultipart(r)
	}

	var orderDTO dto.OrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&orderDTO); err != nil {
		return entities.NewOrder{}, err
	}

	return entities.NewOrder{
		CustomerID:   orderDTO.CustomerID,
		ObjectType:   orderDTO.ObjectType,
		Source:       orderDTO.Source,
		Destination:  orderDTO.Destination,
		ShippingDate: orderDTO.ShippingDate,
		Description:  orderDTO.Description,
	}, nil
}

func (h *Handler) decodeMultipart(r *http.Request) (entities.NewOrder, error) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return entities.NewOrder{}, err
	}

	var customerID int64
	if raw := strings.TrimSpace(r.FormValue("customerId")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.NewOrder{}, err
		}
		customerID = id
	}

	newOrder := entities.NewOrder{
		CustomerID:   customerID,
		ObjectType:   r.FormValue("objectType"),
		Source:       r.FormValue("source"),
		Destination:  r.FormValue("destination"),
		ShippingDate: r.FormValue("shippingDate"),
	}
	if description := r.FormValue("description"); description != "" {
		newOrder.Description = &description
	}

	file, header, err := r.FormFile(imageField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return newOrder, nil
	case err != nil:
		return entities.NewOrder{}, err
	}

	newOrder.Image = &entities.Image{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}
	return newOrder, nil
}
