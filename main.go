package main

import (
	"fmt"
	"log"

	"github.com/nguyendat030805/FinalProjectMobile/configs"
	"github.com/nguyendat030805/FinalProjectMobile/middlewares"
	"github.com/nguyendat030805/FinalProjectMobile/repository"
	"github.com/nguyendat030805/FinalProjectMobile/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// Catalog store. An init failure leaves an empty catalog, which the
	// storefront treats as a valid degraded state, so keep serving.
	db := configs.NewDatabase(cfg.DBSource)
	if err := db.Initialize(); err != nil {
		log.Printf("catalog init failed: %v", err)
	}

	// Order log store
	orderRepo, err := repository.OpenOrderRepository(cfg.OrdersSource)
	if err != nil {
		log.Fatalf("open order log: %v", err)
	}
	defer orderRepo.Close()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve the bundled product images
	r.Static("/assets", "./assets")

	routes.RegisterRoutes(r, cfg, db, orderRepo)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
