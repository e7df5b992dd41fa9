package main

import (
	"fmt"
	"log"

	"github.com/Saaaaaad3/Plattera/configs"
	"github.com/Saaaaaad3/Plattera/middlewares"
	"github.com/Saaaaaad3/Plattera/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed demo data failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
