package gateway

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/inwakeofquake/shareit/config"
)

// Gateway is the thin validating tier: it never touches storage, it only
// rejects malformed requests before they reach the server.
type Gateway struct{ client *Client }

func NewRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()
	g := &Gateway{client: NewClient(cfg.ServerURL)}

	users := r.Group("/users")
	{
		users.POST("", g.createUser)
		users.GET("", g.passthrough)
		users.GET("/:userId", g.passthrough)
		users.PATCH("/:userId", g.passthrough)
		users.DELETE("/:userId", g.passthrough)
	}

	items := r.Group("/items")
	{
		items.POST("", g.createItem)
		items.GET("", g.pagedWithHeader)
		items.GET("/search", g.paged)
		items.GET("/:itemId", g.passthrough)
		items.PATCH("/:itemId", g.withHeader)
		items.DELETE("/:itemId", g.withHeader)
		items.POST("/:itemId/comment", g.addComment)
		items.GET("/:itemId/comments", g.passthrough)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", g.createBooking)
		bookings.GET("", g.listBookings)
		bookings.GET("/owner", g.listBookings)
		bookings.GET("/:bookingId", g.withHeader)
		bookings.PATCH("/:bookingId", g.withHeader)
	}

	requests := r.Group("/requests")
	{
		requests.POST("", g.createRequest)
		requests.GET("", g.withHeader)
		requests.GET("/all", g.pagedWithHeader)
		requests.GET("/:requestId", g.withHeader)
	}

	return r
}

func (g *Gateway) passthrough(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	g.client.Forward(c, body)
}

func (g *Gateway) withHeader(c *gin.Context) {
	if !requireHeader(c) {
		return
	}
	g.passthrough(c)
}

func (g *Gateway) paged(c *gin.Context) {
	if !checkPage(c) {
		return
	}
	g.passthrough(c)
}

func (g *Gateway) pagedWithHeader(c *gin.Context) {
	if !requireHeader(c) || !checkPage(c) {
		return
	}
	g.passthrough(c)
}

func (g *Gateway) createUser(c *gin.Context) {
	var dto UserDto
	body, ok := bindBody(c, &dto)
	if !ok {
		return
	}
	g.client.Forward(c, body)
}

func (g *Gateway) createItem(c *gin.Context) {
	if !requireHeader(c) {
		return
	}
	var dto ItemDto
	body, ok := bindBody(c, &dto)
	if !ok {
		return
	}
	g.client.Forward(c, body)
}

func (g *Gateway) createBooking(c *gin.Context) {
	if !requireHeader(c) {
		return
	}
	var dto BookingDto
	body, ok := bindBody(c, &dto)
	if !ok {
		return
	}
	g.client.Forward(c, body)
}

func (g *Gateway) listBookings(c *gin.Context) {
	if !requireHeader(c) || !checkState(c) || !checkPage(c) {
		return
	}
	g.passthrough(c)
}

func (g *Gateway) addComment(c *gin.Context) {
	if !requireHeader(c) {
		return
	}
	var dto CommentDto
	body, ok := bindBody(c, &dto)
	if !ok {
		return
	}
	g.client.Forward(c, body)
}

func (g *Gateway) createRequest(c *gin.Context) {
	if !requireHeader(c) {
		return
	}
	var dto RequestDto
	body, ok := bindBody(c, &dto)
	if !ok {
		return
	}
	g.client.Forward(c, body)
}
