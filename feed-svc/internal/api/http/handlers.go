package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"repartoya/feed-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Feed service.FeedServiceInterface
}

func NewHandler(feed service.FeedServiceInterface) *Handler {
	return &Handler{Feed: feed}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/feed/pool", h.getPool).Methods("GET")
	r.HandleFunc("/api/feed/restaurants/{id}/buckets", h.getBuckets).Methods("GET")
	r.HandleFunc("/api/feed/restaurants/{id}/earnings/today", h.getEarningsToday).Methods("GET")
	r.HandleFunc("/api/feed/clients/{id}/active", h.getActiveOrders).Methods("GET")
	r.HandleFunc("/api/feed/couriers/{id}/deliveries", h.getDeliveries).Methods("GET")
	r.HandleFunc("/api/feed/earnings/top", h.getTopEarners).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "feed-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) getPool(w http.ResponseWriter, r *http.Request) {
	pool, err := h.Feed.Pool()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, pool)
}

func (h *Handler) getBuckets(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.Feed.Buckets(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, buckets)
}

func (h *Handler) getEarningsToday(w http.ResponseWriter, r *http.Request) {
	earnings, err := h.Feed.EarningsToday(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, earnings)
}

func (h *Handler) getActiveOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Feed.ActiveOrders(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, orders)
}

func (h *Handler) getTopEarners(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ranking, err := h.Feed.TopEarnersToday(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, ranking)
}

func (h *Handler) getDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.Feed.Deliveries(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, deliveries)
}
