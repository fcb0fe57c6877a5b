package main

import (
	"log"
	"os"
	"repboard/internal/db"
	"repboard/internal/ledger"
	"repboard/internal/middleware"
	"repboard/internal/router"
	"repboard/internal/services"
	"repboard/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// 部署者身份即 owner，初始化时自动获得版主身份
	owner := ledger.Identity(utils.StringToUint64(os.Getenv("OWNER_ID")))
	if owner == 0 {
		log.Fatal("OWNER_ID must be set to a non-zero integer")
	}

	core, err := ledger.New(owner, services.NewRecorder())
	if err != nil {
		log.Fatalf("Failed to initialize ledger: %v", err)
	}
	log.Printf("Ledger initialized, owner %d", owner)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("repboard_session", store))

	// Middleware
	r.Use(middleware.LoadIdentity())

	// Routes
	router.RegisterRoutes(r, core)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("repboard server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
