package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/thoughtsblog/internal/config"
	"github.com/thoughtsblog/internal/db"
	"github.com/thoughtsblog/internal/handler"
	"github.com/thoughtsblog/internal/router"
	"github.com/thoughtsblog/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabaseURL, cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("thoughts_session", store))

	r.HTMLRender = web.Renderer()
	r.Static("/static", "./web/static")

	api := handler.NewAPI(db.DB, cfg.UploadDir, cfg.UploadURLPath)
	router.RegisterRoutes(r, api)

	log.Printf("Thoughts server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
