package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/neonstore-ecommerce/neonstore-admin/controllers/auth_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/category_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/download_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/product_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/sale_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/user_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/middleware"
	"github.com/neonstore-ecommerce/neonstore-admin/session"
)

// Setup mounts the dashboard surface. Session routes are open; every
// resource route sits behind the session gate. The login rate limiter
// is only mounted when Redis is configured.
func Setup(router *gin.Engine, gate *session.Gate, redisEnabled bool) {
	api := router.Group("/api")
	api.Use(middleware.RequestLogger())

	sessionGroup := api.Group("/session")
	{
		sessionGroup.GET("", auth_controller.CheckSession)
		if redisEnabled {
			sessionGroup.POST("/login", middleware.RateLimiter(10, time.Minute), auth_controller.Login)
		} else {
			sessionGroup.POST("/login", auth_controller.Login)
		}
		sessionGroup.POST("/logout", auth_controller.Logout)
	}

	protected := api.Group("")
	protected.Use(middleware.SessionGate(gate))
	{
		categories := protected.Group("/categories")
		categories.GET("", category_controller.GetCategories)
		categories.POST("", category_controller.CreateCategory)
		categories.PUT("/:id", category_controller.UpdateCategory)
		categories.DELETE("/:id", category_controller.DeleteCategory)

		products := protected.Group("/products")
		products.GET("", product_controller.GetProducts)
		products.POST("", product_controller.CreateProduct)
		products.PUT("/:id", product_controller.UpdateProduct)
		products.DELETE("/:id", product_controller.DeleteProduct)

		usersGroup := protected.Group("/users")
		usersGroup.GET("", user_controller.GetUsers)
		usersGroup.POST("", user_controller.CreateUser)
		usersGroup.PUT("/:id", user_controller.UpdateUser)
		usersGroup.DELETE("/:id", user_controller.DeleteUser)

		sales := protected.Group("/sales")
		sales.GET("", sale_controller.GetSales)
		sales.GET("/page", sale_controller.GetSalesPage)
		sales.POST("/preview", sale_controller.PreviewTotal)
		sales.GET("/:id", sale_controller.GetSaleDetails)
		sales.GET("/:id/invoice", sale_controller.ExportInvoice)
		sales.POST("", sale_controller.CreateSale)
		sales.PUT("/:id", sale_controller.UpdateSale)
		sales.DELETE("/:id", sale_controller.DeleteSale)

		downloads := protected.Group("/downloads")
		downloads.GET("", download_controller.GetDownloads)
		downloads.GET("/:id/file", download_controller.DownloadFile)
	}
}
