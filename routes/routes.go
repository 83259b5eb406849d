package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/inwakeofquake/shareit/app"
	"github.com/inwakeofquake/shareit/controllers"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	Register(r, controllers.GetSrv(a))
}

// Register wires the handlers onto the engine; split out so tests can mount
// the same route table over a mocked store.
func Register(r *gin.Engine, s *controllers.Srv) {
	uc := controllers.NewUserController(s)
	ic := controllers.NewItemController(s)
	bc := controllers.NewBookingController(s)
	rc := controllers.NewRequestController(s)

	requireUser := app.RequireUser()

	// ------------------------------
	// Users (no identity header; the user endpoints are the signup surface)
	// ------------------------------
	users := r.Group("/users")
	{
		users.POST("", uc.Create)
		users.GET("", uc.List)
		users.GET("/:userId", uc.Get)
		users.PATCH("/:userId", uc.Update)
		users.DELETE("/:userId", uc.Delete)
	}

	// ------------------------------
	// Items
	// ------------------------------
	items := r.Group("/items")
	{
		items.POST("", requireUser, ic.Add)
		items.GET("", requireUser, ic.GetAll)
		items.GET("/search", ic.Search)
		items.GET("/:itemId", app.OptionalUser(), ic.Get)
		items.PATCH("/:itemId", requireUser, ic.Update)
		items.DELETE("/:itemId", requireUser, ic.Delete)
		items.POST("/:itemId/comment", requireUser, ic.AddComment)
		items.GET("/:itemId/comments", ic.GetComments)
	}

	// ------------------------------
	// Bookings
	// ------------------------------
	bookings := r.Group("/bookings", requireUser)
	{
		bookings.POST("", bc.Create)
		bookings.GET("", bc.ListForBooker)
		bookings.GET("/owner", bc.ListForOwner)
		bookings.GET("/:bookingId", bc.Get)
		bookings.PATCH("/:bookingId", bc.Approve)
	}

	// ------------------------------
	// Item requests
	// ------------------------------
	requests := r.Group("/requests", requireUser)
	{
		requests.POST("", rc.Create)
		requests.GET("", rc.GetOwn)
		requests.GET("/all", rc.GetAll)
		requests.GET("/:requestId", rc.Get)
	}
}
