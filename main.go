package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/config"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/auth_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/category_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/download_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/product_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/sale_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/user_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/routes"
	"github.com/neonstore-ecommerce/neonstore-admin/session"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	settings := config.Load()
	log.Printf("[startup] store API at %s", settings.APIBaseURL)

	redisEnabled := config.ConnectRedis()

	// The one token slot, Redis-backed when available.
	var store session.TokenStore
	if redisEnabled {
		store = session.NewRedisStore(config.RedisClient)
	} else {
		store = session.NewFileStore(settings.TokenFile)
	}
	gate := session.NewGate(store, settings.APIBaseURL, settings.RequestTimeout)

	apiClient := client.New(settings.APIBaseURL, gate, settings.RequestTimeout)

	userManager := client.NewUserManager(apiClient)
	productManager := client.NewProductManager(apiClient)

	auth_controller.Init(gate)
	category_controller.Init(client.NewCategoryManager(apiClient))
	product_controller.Init(productManager)
	user_controller.Init(userManager)
	sale_controller.Init(client.NewSaleManager(apiClient), userManager, productManager.Manager)
	download_controller.Init(client.NewDownloadManager(apiClient))

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	routes.Setup(router, gate, redisEnabled)

	log.Printf("[startup] dashboard listening on %s", settings.ListenAddr)
	if err := router.Run(settings.ListenAddr); err != nil {
		log.Fatalf("[startup] server stopped: %v", err)
	}
}
