package main

import (
	"log"

	"repartoya/config"
	httpapi "repartoya/store-svc/internal/api/http"
	"repartoya/store-svc/internal/service"
	"repartoya/store-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	restaurants := service.NewRestaurantService(repository)
	menu := service.NewMenuService(repository)
	admin := service.NewAdminService(repository)
	profiles := service.NewProfileService(repository)

	handler := httpapi.NewHandler(restaurants, menu, admin, profiles)

	httpapi.StartServer(":"+config.Getenv("PORT", "8082"), httpapi.NewRouter(handler))
}
