package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inwakeofquake/shareit/app"
	"github.com/inwakeofquake/shareit/db"
)

type BookingController struct{ *Srv }

func NewBookingController(s *Srv) *BookingController { return &BookingController{Srv: s} }

func (bc *BookingController) Create(c *gin.Context) {
	userID, _ := app.UserID(c)
	var in struct {
		ItemID int64      `json:"itemId" binding:"required"`
		Start  *time.Time `json:"start" binding:"required"`
		End    *time.Time `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	b, err := bc.Repo.CreateBooking(c.Request.Context(), userID, in.ItemID, *in.Start, *in.End)
	if err != nil {
		writeError(c, err)
		return
	}
	_ = bc.Cache.Invalidate(c.Request.Context(), in.ItemID)
	log.Printf("booking %d created by user %d for item %d", b.ID, userID, in.ItemID)
	c.JSON(http.StatusCreated, b)
}

func (bc *BookingController) Approve(c *gin.Context) {
	userID, _ := app.UserID(c)
	id, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "approved must be true or false"})
		return
	}
	b, err := bc.Repo.ApproveBooking(c.Request.Context(), id, approved, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	_ = bc.Cache.Invalidate(c.Request.Context(), b.ItemID)
	log.Printf("booking %d set to %s by user %d", b.ID, b.Status, userID)
	c.JSON(http.StatusOK, b)
}

func (bc *BookingController) Get(c *gin.Context) {
	userID, _ := app.UserID(c)
	id, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	b, err := bc.Repo.GetBookingFor(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (bc *BookingController) listParams(c *gin.Context) (db.RequestState, int, int, bool) {
	from, size, err := pageParams(c)
	if err != nil {
		writeError(c, err)
		return "", 0, 0, false
	}
	state, err := db.ParseRequestState(c.DefaultQuery("state", "ALL"))
	if err != nil {
		writeError(c, err)
		return "", 0, 0, false
	}
	return state, from, size, true
}

// ListForBooker returns the caller's bookings, start-descending.
func (bc *BookingController) ListForBooker(c *gin.Context) {
	userID, _ := app.UserID(c)
	state, from, size, ok := bc.listParams(c)
	if !ok {
		return
	}
	bookings, err := bc.Repo.ListBookerBookings(c.Request.Context(), userID, state, time.Now(), from, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListForOwner returns bookings on the caller's items, start-descending.
func (bc *BookingController) ListForOwner(c *gin.Context) {
	userID, _ := app.UserID(c)
	state, from, size, ok := bc.listParams(c)
	if !ok {
		return
	}
	bookings, err := bc.Repo.ListOwnerBookings(c.Request.Context(), userID, state, time.Now(), from, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
