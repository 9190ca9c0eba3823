package main

import (
	"log"
	"net/http"

	"repartoya/api-gateway/internal/gateway"
	"repartoya/config"

	"github.com/rs/cors"
)

func main() {
	cfg := gateway.Config{
		OrderSvcURL: config.Getenv("ORDER_SVC_URL", "http://localhost:8081"),
		StoreSvcURL: config.Getenv("STORE_SVC_URL", "http://localhost:8082"),
		FeedSvcURL:  config.Getenv("FEED_SVC_URL", "http://localhost:8083"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	addr := ":" + config.Getenv("PORT", "8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
