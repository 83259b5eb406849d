package controllers

import (
	"context"
	"time"

	"github.com/inwakeofquake/shareit/models"
)

// BookingRef is the short form embedded into item views.
type BookingRef struct {
	ID       int64                `json:"id"`
	BookerID int64                `json:"bookerId"`
	Start    time.Time            `json:"start"`
	End      time.Time            `json:"end"`
	Status   models.BookingStatus `json:"status"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemView is the denormalized read model: the item, its comments, and for
// the owner the closest bookings around "now".
type ItemView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	Owner       models.User   `json:"owner"`
	RequestID   *int64        `json:"requestId,omitempty"`
	LastBooking *BookingRef   `json:"lastBooking"`
	NextBooking *BookingRef   `json:"nextBooking"`
	Comments    []CommentView `json:"comments"`
}

type RequestView struct {
	ID          int64         `json:"id"`
	Description string        `json:"description"`
	Created     time.Time     `json:"created"`
	Items       []models.Item `json:"items"`
}

func bookingRef(b *models.Booking) *BookingRef {
	if b == nil {
		return nil
	}
	return &BookingRef{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End, Status: b.Status}
}

func commentViews(comments []models.Comment) []CommentView {
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentView{ID: c.ID, Text: c.Text, AuthorName: c.Author.Name, Created: c.Created})
	}
	return out
}

// itemView assembles the denormalized item payload. Last/next bookings are
// only shown to the owner.
func itemView(ctx context.Context, st Store, it *models.Item, ownerView bool, now time.Time) (*ItemView, error) {
	view := &ItemView{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		Owner:       it.Owner,
		RequestID:   it.RequestID,
	}
	comments, err := st.ListComments(ctx, it.ID)
	if err != nil {
		return nil, err
	}
	view.Comments = commentViews(comments)
	if !ownerView {
		return view, nil
	}
	last, err := st.LastBooking(ctx, it.ID, now)
	if err != nil {
		return nil, err
	}
	next, err := st.NextBooking(ctx, it.ID, now)
	if err != nil {
		return nil, err
	}
	view.LastBooking = bookingRef(last)
	view.NextBooking = bookingRef(next)
	return view, nil
}

func requestView(ctx context.Context, st Store, req *models.ItemRequest) (*RequestView, error) {
	items, err := st.ItemsByRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return &RequestView{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       items,
	}, nil
}
