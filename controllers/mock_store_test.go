package controllers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inwakeofquake/shareit/controllers"
	"github.com/inwakeofquake/shareit/db"
	"github.com/inwakeofquake/shareit/models"
	"github.com/inwakeofquake/shareit/routes"
)

// mockStore implements controllers.Store with per-test function fields; an
// unset method panics so a test cannot silently hit the wrong path.
type mockStore struct {
	createUserFn func(ctx context.Context, name, email string) (*models.User, error)
	findUserFn   func(ctx context.Context, id int64) (*models.User, error)
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	updateUserFn func(ctx context.Context, id int64, name, email *string) (*models.User, error)
	deleteUserFn func(ctx context.Context, id int64) error

	createItemFn func(ctx context.Context, ownerID int64, in db.ItemInput) (*models.Item, error)
	updateItemFn func(ctx context.Context, id, userID int64, in db.ItemInput) (*models.Item, error)
	findItemFn   func(ctx context.Context, id int64) (*models.Item, error)
	listItemsFn  func(ctx context.Context, ownerID int64, from, size int) ([]models.Item, error)
	searchFn     func(ctx context.Context, text string, from, size int) ([]models.Item, error)
	deleteItemFn func(ctx context.Context, id, userID int64) error

	createBookingFn func(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error)
	approveFn       func(ctx context.Context, bookingID int64, approve bool, userID int64) (*models.Booking, error)
	getBookingFn    func(ctx context.Context, id, userID int64) (*models.Booking, error)
	listBookerFn    func(ctx context.Context, userID int64, state db.RequestState, now time.Time, from, size int) ([]models.Booking, error)
	listOwnerFn     func(ctx context.Context, userID int64, state db.RequestState, now time.Time, from, size int) ([]models.Booking, error)
	lastBookingFn   func(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error)
	nextBookingFn   func(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error)

	addCommentFn   func(ctx context.Context, itemID, authorID int64, text string, now time.Time) (*models.Comment, error)
	listCommentsFn func(ctx context.Context, itemID int64) ([]models.Comment, error)

	createRequestFn func(ctx context.Context, userID int64, description string, now time.Time) (*models.ItemRequest, error)
	listOwnReqFn    func(ctx context.Context, userID int64) ([]models.ItemRequest, error)
	listOtherReqFn  func(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error)
	findRequestFn   func(ctx context.Context, id, userID int64) (*models.ItemRequest, error)
	itemsByReqFn    func(ctx context.Context, requestID int64) ([]models.Item, error)
}

func (m *mockStore) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	return m.createUserFn(ctx, name, email)
}

func (m *mockStore) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	return m.findUserFn(ctx, id)
}

func (m *mockStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockStore) UpdateUser(ctx context.Context, id int64, name, email *string) (*models.User, error) {
	return m.updateUserFn(ctx, id, name, email)
}

func (m *mockStore) DeleteUser(ctx context.Context, id int64) error {
	return m.deleteUserFn(ctx, id)
}

func (m *mockStore) CreateItem(ctx context.Context, ownerID int64, in db.ItemInput) (*models.Item, error) {
	return m.createItemFn(ctx, ownerID, in)
}

func (m *mockStore) UpdateItem(ctx context.Context, id, userID int64, in db.ItemInput) (*models.Item, error) {
	return m.updateItemFn(ctx, id, userID, in)
}

func (m *mockStore) FindItemByID(ctx context.Context, id int64) (*models.Item, error) {
	return m.findItemFn(ctx, id)
}

func (m *mockStore) ListItemsByOwner(ctx context.Context, ownerID int64, from, size int) ([]models.Item, error) {
	return m.listItemsFn(ctx, ownerID, from, size)
}

func (m *mockStore) SearchItems(ctx context.Context, text string, from, size int) ([]models.Item, error) {
	return m.searchFn(ctx, text, from, size)
}

func (m *mockStore) DeleteItem(ctx context.Context, id, userID int64) error {
	return m.deleteItemFn(ctx, id, userID)
}

func (m *mockStore) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error) {
	return m.createBookingFn(ctx, bookerID, itemID, start, end)
}

func (m *mockStore) ApproveBooking(ctx context.Context, bookingID int64, approve bool, userID int64) (*models.Booking, error) {
	return m.approveFn(ctx, bookingID, approve, userID)
}

func (m *mockStore) GetBookingFor(ctx context.Context, id, userID int64) (*models.Booking, error) {
	return m.getBookingFn(ctx, id, userID)
}

func (m *mockStore) ListBookerBookings(ctx context.Context, userID int64, state db.RequestState, now time.Time, from, size int) ([]models.Booking, error) {
	return m.listBookerFn(ctx, userID, state, now, from, size)
}

func (m *mockStore) ListOwnerBookings(ctx context.Context, userID int64, state db.RequestState, now time.Time, from, size int) ([]models.Booking, error) {
	return m.listOwnerFn(ctx, userID, state, now, from, size)
}

func (m *mockStore) LastBooking(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	return m.lastBookingFn(ctx, itemID, now)
}

func (m *mockStore) NextBooking(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	return m.nextBookingFn(ctx, itemID, now)
}

func (m *mockStore) AddComment(ctx context.Context, itemID, authorID int64, text string, now time.Time) (*models.Comment, error) {
	return m.addCommentFn(ctx, itemID, authorID, text, now)
}

func (m *mockStore) ListComments(ctx context.Context, itemID int64) ([]models.Comment, error) {
	return m.listCommentsFn(ctx, itemID)
}

func (m *mockStore) CreateRequest(ctx context.Context, userID int64, description string, now time.Time) (*models.ItemRequest, error) {
	return m.createRequestFn(ctx, userID, description, now)
}

func (m *mockStore) ListOwnRequests(ctx context.Context, userID int64) ([]models.ItemRequest, error) {
	return m.listOwnReqFn(ctx, userID)
}

func (m *mockStore) ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error) {
	return m.listOtherReqFn(ctx, userID, from, size)
}

func (m *mockStore) FindRequestByID(ctx context.Context, id, userID int64) (*models.ItemRequest, error) {
	return m.findRequestFn(ctx, id, userID)
}

func (m *mockStore) ItemsByRequest(ctx context.Context, requestID int64) ([]models.Item, error) {
	return m.itemsByReqFn(ctx, requestID)
}

// newServer mounts the real route table over the mock; the item-view cache is
// left nil, which is a no-op.
func newServer(st controllers.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.Register(r, &controllers.Srv{Repo: st})
	return r
}

func doJSON(r *gin.Engine, method, path, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-Sharer-User-Id", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder, dest any) error {
	return json.NewDecoder(w.Body).Decode(dest)
}
