package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"restobook-backend/config"
	"restobook-backend/controllers"
	"restobook-backend/models"
	"restobook-backend/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public site endpoints
	api := r.Group("/api")
	{
		api.GET("/categories", controllers.GetCategories)
		api.GET("/menu", controllers.GetMenu)
		api.GET("/menu/featured", controllers.GetFeaturedItems)

		api.GET("/reservations/availability", controllers.GetAvailability)
		api.POST("/reservations", controllers.CreateReservation)
		api.GET("/reservations/:code", controllers.GetReservationByCode)

		api.POST("/orders", controllers.CreateOrder)
		api.GET("/orders/:number", controllers.GetOrderByNumber)
	}

	// Back-office endpoints
	admin := r.Group("/api/admin")
	admin.Use(utils.AuthMiddleware())
	admin.Use(utils.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleStaff))
	{
		categories := admin.Group("/categories")
		{
			categories.GET("", controllers.GetAllCategories)
			categories.POST("", utils.RequireRole(models.RoleAdmin, models.RoleManager), controllers.CreateCategory)
			categories.PUT("/:id", utils.RequireRole(models.RoleAdmin, models.RoleManager), controllers.UpdateCategory)
			categories.DELETE("/:id", utils.RequireRole(models.RoleAdmin), controllers.DeleteCategory)
		}

		menu := admin.Group("/menu-items")
		{
			menu.GET("", controllers.GetMenuItems)
			menu.POST("", utils.RequireRole(models.RoleAdmin, models.RoleManager), controllers.CreateMenuItem)
			menu.PUT("/:id", utils.RequireRole(models.RoleAdmin, models.RoleManager), controllers.UpdateMenuItem)
			menu.DELETE("/:id", utils.RequireRole(models.RoleAdmin), controllers.DeleteMenuItem)
		}

		reservations := admin.Group("/reservations")
		{
			reservations.GET("", controllers.GetReservations)
			reservations.PATCH("/:id/status", controllers.UpdateReservationStatus)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", controllers.GetOrders)
			orders.PATCH("/:id/status", controllers.UpdateOrderStatus)
		}

		customers := admin.Group("/customers")
		{
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:email", controllers.GetCustomer)
		}

		admin.GET("/dashboard", controllers.GetDashboardStats)
	}

	return r
}

func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			return origins
		}
	}
	return []string{"http://localhost:3000"}
}
