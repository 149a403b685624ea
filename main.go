package main

import (
	"fmt"
	"log"

	"github.com/bayoffindiaofficial/bengal-biz-finder/configs"
	"github.com/bayoffindiaofficial/bengal-biz-finder/middlewares"
	"github.com/bayoffindiaofficial/bengal-biz-finder/routes"
	"github.com/bayoffindiaofficial/bengal-biz-finder/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemoBusinesses(); err != nil {
			log.Fatalf("seed demo businesses failed: %v", err)
		}
	}

	// Image storage, served statically below
	store, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatalf("init upload storage failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded business photos
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, store)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
