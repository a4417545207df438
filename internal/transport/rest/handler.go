// Package rest provides the HTTP handlers of the inventory API.
package rest

import (
	"log/slog"
	"net/http"

	perrors "github.com/abgdnv/bakery-inventory/internal/errors"
	"github.com/abgdnv/bakery-inventory/internal/service"
	"github.com/abgdnv/bakery-inventory/internal/store"
	"github.com/abgdnv/bakery-inventory/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new inventory Handler backed by the given service.
func NewHandler(svc service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  svc,
		validate: service.NewValidator(),
		logger:   logger.With("component", "rest"),
	}
}

// errorResponse is the body of NotFound and InvalidOperation responses.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type stockResponse struct {
	ID       uint64 `json:"id"`
	Quantity uint32 `json:"quantity"`
}

// RegisterRoutes registers the HTTP routes of the inventory API.
// middlewares wrap the product routes only, the health check stays open.
func (h *Handler) RegisterRoutes(r chi.Router, middlewares ...func(http.Handler) http.Handler) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Use(middlewares...)

		r.Get("/", h.List)
		r.Post("/", h.Add)
		r.Delete("/", h.Clear)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Update)
			r.Delete("/", h.Remove)
			r.Get("/stock", h.GetStock)
			r.Post("/stock/add", h.AddStock)
			r.Post("/stock/offload", h.OffloadStock)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// Add creates a new product.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var payload service.ProductPayload
	if !web.DecodeAndValidate(w, r, h.logger, h.validate, &payload) {
		return
	}
	h.logger.DebugContext(r.Context(), "Received request to add product", "name", payload.Name, "category", payload.Category)

	created, err := h.service.AddProduct(r.Context(), payload)
	if err != nil {
		h.respondServiceError(w, r, err, "add product")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusCreated, created)
}

// List returns all products, or the products of one category when ?category= is set.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("category") {
		h.logger.DebugContext(r.Context(), "Received request to list all products")
		web.RespondJSON(w, h.logger, http.StatusOK, h.service.ListAllProducts(r.Context()))
		return
	}

	category, err := store.ParseCategory(query.Get("category"))
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid category filter", "category", query.Get("category"))
		web.RespondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.DebugContext(r.Context(), "Received request to search products", "category", category)
	web.RespondJSON(w, h.logger, http.StatusOK, h.service.SearchByCategory(r.Context(), category))
}

// Clear removes every product.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearAllProducts(r.Context()); err != nil {
		h.respondServiceError(w, r, err, "clear products")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get returns a product by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	found, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "retrieve product")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// Update replaces name, quantity and category of a product.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var payload service.ProductPayload
	if !web.DecodeAndValidate(w, r, h.logger, h.validate, &payload) {
		return
	}
	h.logger.DebugContext(r.Context(), "Received request to update product", "id", id)

	updated, err := h.service.UpdateProduct(r.Context(), id, payload)
	if err != nil {
		h.respondServiceError(w, r, err, "update product")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

// Remove deletes a product and returns the removed record.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	removed, err := h.service.RemoveProduct(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "remove product")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, removed)
}

// GetStock returns the quantity of a product.
func (h *Handler) GetStock(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	quantity, err := h.service.GetStock(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "retrieve stock")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, stockResponse{ID: id, Quantity: quantity})
}

// AddStock increases the quantity of a product.
func (h *Handler) AddStock(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var payload service.StockPayload
	if !web.DecodeAndValidate(w, r, h.logger, h.validate, &payload) {
		return
	}
	updated, err := h.service.AddQuantity(r.Context(), id, payload)
	if err != nil {
		h.respondServiceError(w, r, err, "add stock")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

// OffloadStock decreases the quantity of a product.
func (h *Handler) OffloadStock(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var payload service.StockPayload
	if !web.DecodeAndValidate(w, r, h.logger, h.validate, &payload) {
		return
	}
	updated, err := h.service.OffloadQuantity(r.Context(), id, payload)
	if err != nil {
		h.respondServiceError(w, r, err, "offload stock")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondServiceError maps inventory errors to 404 and 409 and anything else to 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	kind, ok := perrors.KindOf(err)
	if !ok {
		h.logger.ErrorContext(r.Context(), "Failed to "+action, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to "+action)
		return
	}

	var status int
	switch kind {
	case perrors.KindNotFound:
		status = http.StatusNotFound
	case perrors.KindInvalidOperation:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}
	h.logger.WarnContext(r.Context(), "Request rejected", "action", action, "kind", kind.String(), "error", err)
	web.RespondJSON(w, h.logger, status, errorResponse{Error: perrors.Message(err), Kind: kind.String()})
}
