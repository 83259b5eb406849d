package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inwakeofquake/shareit/app"
	"github.com/inwakeofquake/shareit/cache"
	"github.com/inwakeofquake/shareit/config"
	"github.com/inwakeofquake/shareit/db"
	"github.com/inwakeofquake/shareit/models"
)

// Store is what the handlers need from the persistence layer; *db.Repo is the
// real implementation, tests plug in mocks.
type Store interface {
	CreateUser(ctx context.Context, name, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, name, email *string) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, ownerID int64, in db.ItemInput) (*models.Item, error)
	UpdateItem(ctx context.Context, id, userID int64, in db.ItemInput) (*models.Item, error)
	FindItemByID(ctx context.Context, id int64) (*models.Item, error)
	ListItemsByOwner(ctx context.Context, ownerID int64, from, size int) ([]models.Item, error)
	SearchItems(ctx context.Context, text string, from, size int) ([]models.Item, error)
	DeleteItem(ctx context.Context, id, userID int64) error

	CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error)
	ApproveBooking(ctx context.Context, bookingID int64, approve bool, userID int64) (*models.Booking, error)
	GetBookingFor(ctx context.Context, id, userID int64) (*models.Booking, error)
	ListBookerBookings(ctx context.Context, userID int64, state db.RequestState, now time.Time, from, size int) ([]models.Booking, error)
	ListOwnerBookings(ctx context.Context, userID int64, state db.RequestState, now time.Time, from, size int) ([]models.Booking, error)
	LastBooking(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error)
	NextBooking(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error)

	AddComment(ctx context.Context, itemID, authorID int64, text string, now time.Time) (*models.Comment, error)
	ListComments(ctx context.Context, itemID int64) ([]models.Comment, error)

	CreateRequest(ctx context.Context, userID int64, description string, now time.Time) (*models.ItemRequest, error)
	ListOwnRequests(ctx context.Context, userID int64) ([]models.ItemRequest, error)
	ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error)
	FindRequestByID(ctx context.Context, id, userID int64) (*models.ItemRequest, error)
	ItemsByRequest(ctx context.Context, requestID int64) ([]models.Item, error)
}

type Srv struct {
	Repo  Store
	Cache *cache.ItemViewCache
	Cfg   config.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:  db.NewRepo(a.DB),
		Cache: cache.NewItemViewCache(a.RDB, a.Config.CacheTTL),
		Cfg:   a.Config,
	}
}

// writeError translates the store's sentinel errors into HTTP statuses.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, db.ErrNotFound), errors.Is(err, db.ErrOwnItemBooking):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrBookingConflict), errors.Is(err, db.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, db.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, db.ErrNotAvailable),
		errors.Is(err, db.ErrInvalidRange),
		errors.Is(err, db.ErrInvalidTransition),
		errors.Is(err, db.ErrUnsupportedState),
		errors.Is(err, db.ErrBadPageParams),
		errors.Is(err, db.ErrBlankComment),
		errors.Is(err, db.ErrNoFinishedBooking):
		status = http.StatusBadRequest
	}
	c.JSON(status, app.H{"error": err.Error()})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// pageParams reads from/size with the defaults every listing shares.
func pageParams(c *gin.Context) (int, int, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return 0, 0, db.ErrBadPageParams
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		return 0, 0, db.ErrBadPageParams
	}
	if err := db.ValidatePage(from, size); err != nil {
		return 0, 0, err
	}
	return from, size, nil
}
