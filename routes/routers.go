package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelsvc/constants"
	"hotelsvc/controllers"
	middlewares "hotelsvc/middleware"
	"hotelsvc/services"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, locks *services.CategoryLocks) {

	policy := services.NewAuthPolicy()

	inventoryController := controllers.NewInventoryController(
		services.NewInventoryService(db, redisCli, locks), policy)
	holdController := controllers.NewHoldController(
		services.NewHoldService(db, locks), policy)
	availabilityController := controllers.NewAvailabilityController(
		services.NewAvailabilityService(db),
		services.NewCalendarService(db, redisCli), policy)

	hotels := router.Group("/hotels")
	hotels.Use(middlewares.SessionMiddleware())

	hotels.PUT("/inventory/:hotelId",
		middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager),
		inventoryController.UpsertInventory)
	hotels.GET("/inventory/:hotelId", inventoryController.GetInventory)
	hotels.POST("/inventory/:hotelId/:categoryId/out-of-service/increment",
		middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager, constants.RoleSystem),
		inventoryController.IncrementOutOfService)
	hotels.POST("/inventory/:hotelId/:categoryId/out-of-service/decrement",
		middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager, constants.RoleSystem),
		inventoryController.DecrementOutOfService)

	hotels.GET("/availability", availabilityController.GetAvailability)
	hotels.GET("/availability/search", availabilityController.SearchAvailability)
	hotels.POST("/availability/block",
		middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager),
		availabilityController.BlockRoom)
	hotels.POST("/availability/unblock",
		middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager),
		availabilityController.UnblockRoom)
	hotels.POST("/availability/reserve",
		middlewares.AuthMiddleware(constants.RoleSystem),
		availabilityController.ReserveRooms)
	hotels.POST("/availability/rooms",
		middlewares.AuthMiddleware(constants.RoleSystem),
		availabilityController.SeedRoomCalendar)

	hotels.POST("/holds",
		middlewares.AuthMiddleware(constants.RoleSystem),
		holdController.CreateHold)
	hotels.POST("/holds/:holdId/release",
		middlewares.AuthMiddleware(constants.RoleSystem),
		holdController.ReleaseHold)
}
