package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Ishan007-bot/Food-Delivery-Backend/configs"
	"github.com/Ishan007-bot/Food-Delivery-Backend/middlewares"
	"github.com/Ishan007-bot/Food-Delivery-Backend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
