package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL string
	StoreSvcURL string
	FeedSvcURL  string
}

// knownRoles is the closed set every caller must resolve into. Admin is
// a role claim like any other; nothing downstream matches emails or
// other identifying data to decide who is an admin.
var knownRoles = map[string]bool{
	"client":     true,
	"restaurant": true,
	"delivery":   true,
	"admin":      true,
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequest(r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

// resolveRole validates the caller's claim headers once, at the edge.
// Services behind the gateway trust the headers as-is.
func (g *Gateway) resolveRole(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get("X-User-Id")
	role := r.Header.Get("X-User-Role")

	if userID == "" && role == "" {
		// anonymous; fine for public reads
		return "", true
	}
	if userID == "" || !knownRoles[role] {
		log.Printf("[GATEWAY] rejected identity: id=%q role=%q", userID, role)
		http.Error(w, "unknown role", http.StatusUnauthorized)
		return "", false
	}
	return role, true
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	role, ok := g.resolveRole(w, r)
	if !ok {
		return
	}

	if strings.HasPrefix(path, "/api/admin/") {
		if role != "admin" {
			http.Error(w, "admin role required", http.StatusForbidden)
			return
		}
		g.ProxyRequest(w, r, g.config.StoreSvcURL)
		return
	}

	if path == "/api/orders" || strings.HasPrefix(path, "/api/orders/") {
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/feed/") {
		g.ProxyRequest(w, r, g.config.FeedSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/restaurants") ||
		strings.HasPrefix(path, "/api/profiles/") ||
		strings.HasPrefix(path, "/uploads/") {
		g.ProxyRequest(w, r, g.config.StoreSvcURL)
		return
	}

	log.Printf("[GATEWAY] Unmatched API route: %s", path)
	http.Error(w, "API route not found", http.StatusNotFound)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/uploads/").HandlerFunc(g.RouteHandler)
	return r
}
