package main

import (
	"log"
	"time"

	"repartoya/config"
	httpapi "repartoya/order-svc/internal/api/http"
	"repartoya/order-svc/internal/service"
	"repartoya/order-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.OrdersTopic)
	defer writer.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	claims := storage.NewClaimStore(rdb, 30*time.Second)
	publisher := storage.NewKafkaPublisher(writer)

	orders := service.NewOrderService(repository, repository, repository, repository, claims, publisher)
	handler := httpapi.NewHandler(orders)

	httpapi.StartServer(":"+config.Getenv("PORT", "8081"), httpapi.NewRouter(handler))
}
