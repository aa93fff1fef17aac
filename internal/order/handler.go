// AngelaMos | 2026
// handler.go

package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/petal-commerce/internal/core"
	"github.com/carterperez-dev/petal-commerce/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Checkout)
		r.Get("/", h.ListOwnOrders)
		r.Get("/{orderID}", h.GetOrder)
		r.Post("/{orderID}/pay", h.PayOrder)
		r.Post("/{orderID}/cancel", h.CancelOrder)
	})
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/orders", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListOrders)
		r.Put("/{orderID}/status", h.UpdateOrderStatus)
	})
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	order, details, err := h.service.Checkout(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "cart")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "cart is empty or stock is insufficient")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToOrderResponse(order, details))
}

func (h *Handler) ListOwnOrders(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	orders, err := h.service.ListOwn(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToOrderResponseList(orders))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	orderID := chi.URLParam(r, "orderID")

	order, details, err := h.service.Get(r.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "order")
		case errors.Is(err, core.ErrForbidden):
			core.Forbidden(w, "order belongs to another user")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToOrderResponse(order, details))
}

func (h *Handler) PayOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	orderID := chi.URLParam(r, "orderID")

	order, err := h.service.Pay(r.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "order")
		case errors.Is(err, core.ErrForbidden):
			core.Forbidden(w, "order belongs to another user")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "order cannot be paid in its current status")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToOrderResponse(order, nil))
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	orderID := chi.URLParam(r, "orderID")

	order, err := h.service.Cancel(r.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "order")
		case errors.Is(err, core.ErrForbidden):
			core.Forbidden(w, "order belongs to another user")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "order cannot be cancelled in its current status")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToOrderResponse(order, nil))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	params := ListOrdersParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Status:   r.URL.Query().Get("status"),
	}

	orders, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToOrderResponseList(orders),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "order")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid status transition")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToOrderResponse(order, nil))
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
