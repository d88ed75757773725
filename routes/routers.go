package routes

import (
	"github.com/gin-gonic/gin"

	"hotelcart/controllers"
	middlewares "hotelcart/middleware"
	"hotelcart/response"
)

func SetupRoutes(router *gin.Engine, cartController *controllers.CartController, notificationController *controllers.NotificationController) {
	router.GET("/ping", controllers.Ping)
	router.NoRoute(response.NotFound)

	router.GET("/ws", middlewares.SessionMiddleware(), notificationController.Connect)

	v1 := router.Group("/api/v1", middlewares.SessionMiddleware())
	v1.POST("/cart/session", cartController.OpenSession)
	v1.PUT("/cart/stay", cartController.SelectStay)
	v1.GET("/cart", cartController.GetCart)
	v1.GET("/cart/rooms", cartController.GetRooms)
	v1.PUT("/cart/items", cartController.SetQuantity)
	v1.DELETE("/cart/items/:roomId/:tier", cartController.RemoveItem)
	v1.DELETE("/cart/items", cartController.ClearCart)
	v1.POST("/cart/checkout", cartController.Checkout)
}
