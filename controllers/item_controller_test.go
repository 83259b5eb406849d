package controllers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inwakeofquake/shareit/controllers"
	"github.com/inwakeofquake/shareit/db"
	"github.com/inwakeofquake/shareit/models"
)

func TestAddItem(t *testing.T) {
	st := &mockStore{
		createItemFn: func(ctx context.Context, ownerID int64, in db.ItemInput) (*models.Item, error) {
			assert.Equal(t, int64(1), ownerID)
			require.NotNil(t, in.Name)
			assert.Equal(t, "drill", *in.Name)
			require.NotNil(t, in.Available)
			assert.True(t, *in.Available)
			return &models.Item{ID: 5, Name: *in.Name, Description: *in.Description, Available: true, OwnerID: ownerID}, nil
		},
	}
	r := newServer(st)

	w := doJSON(r, http.MethodPost, "/items", "1",
		`{"name":"drill","description":"cordless","available":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Item
	require.NoError(t, decode(w, &got))
	assert.Equal(t, int64(5), got.ID)
}

func TestAddItem_Validation(t *testing.T) {
	r := newServer(&mockStore{})

	// available is required and must be explicit
	w := doJSON(r, http.MethodPost, "/items", "1", `{"name":"drill","description":"cordless"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// identity header is required
	w = doJSON(r, http.MethodPost, "/items", "", `{"name":"drill","description":"cordless","available":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItem_UnknownOwner(t *testing.T) {
	st := &mockStore{
		createItemFn: func(context.Context, int64, db.ItemInput) (*models.Item, error) {
			return nil, db.ErrNotFound
		},
	}
	r := newServer(st)
	w := doJSON(r, http.MethodPost, "/items", "99",
		`{"name":"drill","description":"cordless","available":true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateItem(t *testing.T) {
	st := &mockStore{
		updateItemFn: func(ctx context.Context, id, userID int64, in db.ItemInput) (*models.Item, error) {
			assert.Equal(t, int64(5), id)
			assert.Equal(t, int64(1), userID)
			require.NotNil(t, in.Available)
			assert.False(t, *in.Available)
			assert.Nil(t, in.Name)
			return &models.Item{ID: id, Name: "drill", Available: false, OwnerID: userID}, nil
		},
	}
	r := newServer(st)

	w := doJSON(r, http.MethodPatch, "/items/5", "1", `{"available":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Item
	require.NoError(t, decode(w, &got))
	assert.False(t, got.Available)
}

func TestUpdateItem_NotOwner(t *testing.T) {
	st := &mockStore{
		updateItemFn: func(context.Context, int64, int64, db.ItemInput) (*models.Item, error) {
			return nil, db.ErrNotAuthorized
		},
	}
	r := newServer(st)
	w := doJSON(r, http.MethodPatch, "/items/5", "2", `{"available":false}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetItem_OwnerSeesBookings(t *testing.T) {
	now := time.Now()
	st := &mockStore{
		findItemFn: func(ctx context.Context, id int64) (*models.Item, error) {
			return &models.Item{ID: id, Name: "drill", Available: true, OwnerID: 1}, nil
		},
		listCommentsFn: func(context.Context, int64) ([]models.Comment, error) {
			return []models.Comment{{ID: 1, Text: "works great", Author: models.User{Name: "bob"}, Created: now}}, nil
		},
		lastBookingFn: func(context.Context, int64, time.Time) (*models.Booking, error) {
			return &models.Booking{ID: 8, BookerID: 2, Status: models.StatusApproved}, nil
		},
		nextBookingFn: func(context.Context, int64, time.Time) (*models.Booking, error) {
			return nil, nil
		},
	}
	r := newServer(st)

	w := doJSON(r, http.MethodGet, "/items/5", "1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got controllers.ItemView
	require.NoError(t, decode(w, &got))
	require.NotNil(t, got.LastBooking)
	assert.Equal(t, int64(8), got.LastBooking.ID)
	assert.Nil(t, got.NextBooking)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "bob", got.Comments[0].AuthorName)
}

func TestGetItem_StrangerSeesNoBookings(t *testing.T) {
	st := &mockStore{
		findItemFn: func(ctx context.Context, id int64) (*models.Item, error) {
			return &models.Item{ID: id, Name: "drill", Available: true, OwnerID: 1}, nil
		},
		listCommentsFn: func(context.Context, int64) ([]models.Comment, error) {
			return nil, nil
		},
		// last/next must not be consulted for non-owners; unset fields
		// would panic if they were
	}
	r := newServer(st)

	w := doJSON(r, http.MethodGet, "/items/5", "2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got controllers.ItemView
	require.NoError(t, decode(w, &got))
	assert.Nil(t, got.LastBooking)
	assert.Nil(t, got.NextBooking)
	assert.NotNil(t, got.Comments)
}

func TestGetItem_NoHeaderStillWorks(t *testing.T) {
	st := &mockStore{
		findItemFn: func(ctx context.Context, id int64) (*models.Item, error) {
			return &models.Item{ID: id, Name: "drill", Available: true, OwnerID: 1}, nil
		},
		listCommentsFn: func(context.Context, int64) ([]models.Comment, error) {
			return nil, nil
		},
	}
	r := newServer(st)
	w := doJSON(r, http.MethodGet, "/items/5", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListItems_OwnerViews(t *testing.T) {
	st := &mockStore{
		listItemsFn: func(ctx context.Context, ownerID int64, from, size int) ([]models.Item, error) {
			assert.Equal(t, int64(1), ownerID)
			assert.Equal(t, 0, from)
			assert.Equal(t, 10, size)
			return []models.Item{{ID: 5, OwnerID: 1}, {ID: 6, OwnerID: 1}}, nil
		},
		listCommentsFn: func(context.Context, int64) ([]models.Comment, error) { return nil, nil },
		lastBookingFn:  func(context.Context, int64, time.Time) (*models.Booking, error) { return nil, nil },
		nextBookingFn:  func(context.Context, int64, time.Time) (*models.Booking, error) { return nil, nil },
	}
	r := newServer(st)

	w := doJSON(r, http.MethodGet, "/items", "1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []controllers.ItemView
	require.NoError(t, decode(w, &got))
	assert.Len(t, got, 2)
}

func TestSearchItems(t *testing.T) {
	st := &mockStore{
		searchFn: func(ctx context.Context, text string, from, size int) ([]models.Item, error) {
			assert.Equal(t, "drill", text)
			return []models.Item{{ID: 5, Name: "drill", Available: true}}, nil
		},
	}
	r := newServer(st)

	// search is public, no header needed
	w := doJSON(r, http.MethodGet, "/items/search?text=drill", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Item
	require.NoError(t, decode(w, &got))
	assert.Len(t, got, 1)
}

func TestDeleteItem(t *testing.T) {
	st := &mockStore{
		deleteItemFn: func(ctx context.Context, id, userID int64) error {
			assert.Equal(t, int64(5), id)
			assert.Equal(t, int64(1), userID)
			return nil
		},
	}
	r := newServer(st)
	w := doJSON(r, http.MethodDelete, "/items/5", "1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAddComment(t *testing.T) {
	st := &mockStore{
		addCommentFn: func(ctx context.Context, itemID, authorID int64, text string, now time.Time) (*models.Comment, error) {
			assert.Equal(t, int64(5), itemID)
			assert.Equal(t, int64(2), authorID)
			assert.Equal(t, "works great", text)
			return &models.Comment{ID: 1, Text: text, Author: models.User{Name: "bob"}, Created: now}, nil
		},
	}
	r := newServer(st)

	w := doJSON(r, http.MethodPost, "/items/5/comment", "2", `{"text":"works great"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got controllers.CommentView
	require.NoError(t, decode(w, &got))
	assert.Equal(t, "bob", got.AuthorName)
}

func TestAddComment_NoFinishedBooking(t *testing.T) {
	st := &mockStore{
		addCommentFn: func(context.Context, int64, int64, string, time.Time) (*models.Comment, error) {
			return nil, db.ErrNoFinishedBooking
		},
	}
	r := newServer(st)
	w := doJSON(r, http.MethodPost, "/items/5/comment", "2", `{"text":"never rented this"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetComments(t *testing.T) {
	st := &mockStore{
		listCommentsFn: func(ctx context.Context, itemID int64) ([]models.Comment, error) {
			assert.Equal(t, int64(5), itemID)
			return []models.Comment{
				{ID: 1, Text: "first", Author: models.User{Name: "bob"}},
				{ID: 2, Text: "second", Author: models.User{Name: "carol"}},
			}, nil
		},
	}
	r := newServer(st)

	w := doJSON(r, http.MethodGet, "/items/5/comments", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []controllers.CommentView
	require.NoError(t, decode(w, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
}
