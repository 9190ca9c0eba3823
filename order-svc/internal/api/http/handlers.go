package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"repartoya/order-svc/internal/domain"
	"repartoya/order-svc/internal/lifecycle"
	"repartoya/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders service.OrderServiceInterface
}

func NewHandler(orders service.OrderServiceInterface) *Handler {
	return &Handler{Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/pool", h.pickupPool).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/transition", h.transition).Methods("POST")
	r.HandleFunc("/api/orders/{id}/accept", h.accept).Methods("POST")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancel).Methods("POST")
	r.HandleFunc("/api/orders/{id}/prep-time", h.setPrepTime).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/payment-qr", h.paymentQR).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// actorFrom reads the identity headers stamped by the gateway.
func actorFrom(r *http.Request) (domain.Actor, bool) {
	id := r.Header.Get("X-User-Id")
	role, ok := domain.ParseRole(r.Header.Get("X-User-Role"))
	if id == "" || !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: id, Role: role}, true
}

// orderView decorates an order with its progress-bar percentage.
type orderView struct {
	domain.Order
	Progress int `json:"progress"`
}

func view(order domain.Order) orderView {
	return orderView{Order: order, Progress: lifecycle.Progress(order.Status)}
}

func writeOrder(w http.ResponseWriter, status int, order *domain.Order) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(view(*order))
}

func writeError(w http.ResponseWriter, err error) {
	var code int
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrUnauthorizedActor):
		code = http.StatusForbidden
	case errors.Is(err, service.ErrOrderTaken),
		errors.Is(err, service.ErrStatusConflict),
		errors.Is(err, service.ErrOrderFinal):
		code = http.StatusConflict
	case errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrMissingAddress),
		errors.Is(err, service.ErrBadLineItem),
		errors.Is(err, service.ErrBadPrepTime),
		errors.Is(err, service.ErrNoPaymentLink):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}
	http.Error(w, err.Error(), code)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var input service.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Create(r.Context(), actor, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrder(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrder(w, http.StatusOK, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	orders, err := h.Orders.ListForActor(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrderList(w, orders)
}

func (h *Handler) pickupPool(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok || actor.Role != domain.RoleCourier {
		http.Error(w, "courier role required", http.StatusForbidden)
		return
	}

	orders, err := h.Orders.PickupPool(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrderList(w, orders)
}

func writeOrderList(w http.ResponseWriter, orders []domain.Order) {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, view(order))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var payload struct {
		To string `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, ok := domain.ParseStatus(payload.To)
	if !ok {
		http.Error(w, "unknown status: "+payload.To, http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Transition(r.Context(), actor, mux.Vars(r)["id"], to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrder(w, http.StatusOK, order)
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Fee float64 `json:"fee"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Accept(r.Context(), actor, mux.Vars(r)["id"], payload.Fee)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrder(w, http.StatusOK, order)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	order, err := h.Orders.Cancel(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrder(w, http.StatusOK, order)
}

func (h *Handler) setPrepTime(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Minutes int `json:"minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.SetPrepTime(r.Context(), actor, mux.Vars(r)["id"], payload.Minutes); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"prep_time": payload.Minutes})
}

func (h *Handler) paymentQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.PaymentQR(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
