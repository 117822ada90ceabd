package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/controllers"
	"github.com/yeremiapane/restaurant-reservation/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	locationCtrl := controllers.NewLocationController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	reservationCtrl := controllers.NewReservationController(db)
	tableCtrl := controllers.NewTableController(db)
	blockCtrl := controllers.NewTableBlockController(db)
	adminCtrl := controllers.NewAdminController(db)
	messageCtrl := controllers.NewMessageController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/locations", locationCtrl.GetAllLocations)
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	r.GET("/restaurants/:restaurant_id/tables", restaurantCtrl.GetRestaurantTables)
	r.GET("/restaurants/:restaurant_id/availability", restaurantCtrl.GetAvailability)
	r.GET("/restaurants/:restaurant_id/changes", restaurantCtrl.GetChanges)

	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations/:code", reservationCtrl.GetReservationByCode)

	r.POST("/messages", messageCtrl.CreateMessage)

	// Rate limiter ketat untuk login admin
	r.POST("/admin/login", middlewares.NewStrictRateLimiter(), adminCtrl.Login)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES (JWT)
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.GET("/reservations", reservationCtrl.ListReservations)
		admin.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservationStatus)

		admin.POST("/table-blocks", blockCtrl.CreateTableBlock)
		admin.GET("/table-blocks", blockCtrl.ListTableBlocks)
		admin.DELETE("/table-blocks/:block_id", blockCtrl.DeleteTableBlock)

		admin.POST("/tables", tableCtrl.CreateTable)
		admin.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
		admin.PATCH("/tables/:table_id/status", tableCtrl.SetTableStatus)

		admin.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateFloorShape)

		admin.GET("/messages", messageCtrl.ListMessages)
		admin.PATCH("/messages/:message_id/read", messageCtrl.MarkMessageRead)
		admin.DELETE("/messages/:message_id", messageCtrl.DeleteMessage)

		admin.GET("/stats", adminCtrl.GetStats)

		// Hanya superadmin yang boleh membuat akun admin baru
		admin.POST("/register", middlewares.RequireSuperAdmin(), adminCtrl.Register)
	}

	return r
}
