package main

import (
	"context"

	"repartoya/config"
	httpapi "repartoya/feed-svc/internal/api/http"
	"repartoya/feed-svc/internal/service"
	"repartoya/feed-svc/internal/storage"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic, "feed-svc")
	defer reader.Close()

	store := storage.NewProjectionStore(rdb)
	state := service.NewState()

	consumer := service.NewConsumer(reader, state, store)
	go consumer.Start(context.Background())

	feed := service.NewFeedService(store)
	handler := httpapi.NewHandler(feed)

	httpapi.StartServer(":"+config.Getenv("PORT", "8083"), httpapi.NewRouter(handler))
}
