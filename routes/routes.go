package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonbook-backend/config"
	"salonbook-backend/controllers"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.Cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Category and subcategory images are served straight from disk
	r.Static("/uploads", config.Cfg.UploadDir)

	api := r.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)

		salons := api.Group("/salons")
		{
			salons.GET("", controllers.GetSalons)
			salons.POST("", controllers.CreateSalon)
			salons.GET("/:id", controllers.GetSalon)
			salons.PUT("/:id", controllers.UpdateSalon)
			salons.DELETE("/:id", controllers.DeleteSalon)
			salons.GET("/:id/dashboard", controllers.GetDashboardOverview)
		}

		services := api.Group("/services")
		{
			services.GET("", controllers.SearchServices) // ?service= substring filter
			services.GET("/:id", controllers.GetServicesBySalon)
			services.POST("", controllers.CreateService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		staffs := api.Group("/staffs/:salonId")
		{
			staffs.GET("", controllers.GetStaffBySalon)
			staffs.POST("", controllers.CreateStaff)
			staffs.PUT("/:staffId", controllers.UpdateStaff)
			staffs.DELETE("/:staffId", controllers.DeleteStaff)
		}

		categories := api.Group("/categories/:salonId")
		{
			categories.GET("", controllers.GetCategories)
			categories.POST("", controllers.CreateCategory)
			categories.PUT("/:categoryId", controllers.UpdateCategory)
			categories.DELETE("/:categoryId", controllers.DeleteCategory)
			categories.DELETE("/:categoryId/permanent", controllers.PermanentDeleteCategory)
			categories.POST("/:categoryId/subcategories", controllers.AddSubcategory)
			categories.PUT("/:categoryId/subcategories/:subId", controllers.UpdateSubcategory)
			categories.DELETE("/:categoryId/subcategories/:subId", controllers.DeleteSubcategory)
		}

		orders := api.Group("/orders/:salonId")
		{
			orders.GET("", controllers.GetOrders)
			orders.POST("", controllers.CreateOrder)
			orders.GET("/:orderId", controllers.GetOrder)
			orders.PUT("/:orderId", controllers.UpdateOrder)
			orders.DELETE("/:orderId", controllers.DeleteOrder)
		}

		payments := api.Group("/payments")
		{
			payments.GET("/:orderId", controllers.GetPayments)
			payments.POST("/card/:orderId", controllers.PayByCard)
			// gin cannot register both /qpay/:orderId and /qpay/confirm/:orderId
			// (static segment vs wildcard), so the two share a catch-all.
			payments.POST("/qpay/*action", controllers.QPayDispatch)
		}

		users := api.Group("/users")
		{
			users.POST("/register", controllers.RegisterUser)
			users.POST("/login", controllers.LoginUser)
			users.GET("/:id", controllers.GetUser)
			users.PUT("/:id", controllers.UpdateUser)
		}
	}

	return r
}
