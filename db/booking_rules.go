package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/inwakeofquake/shareit/models"
)

// RequestState filters booking listings relative to "now" at call time.
type RequestState string

const (
	StateAll      RequestState = "ALL"
	StateCurrent  RequestState = "CURRENT"
	StatePast     RequestState = "PAST"
	StateFuture   RequestState = "FUTURE"
	StateWaiting  RequestState = "WAITING"
	StateRejected RequestState = "REJECTED"
)

func ParseRequestState(s string) (RequestState, error) {
	switch RequestState(strings.ToUpper(s)) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return RequestState(strings.ToUpper(s)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedState, s)
	}
}

// overlaps reports whether the half-open windows [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aEnd.After(bStart) && aStart.Before(bEnd)
}

// validateNewBooking applies the admission rules in order; the first failing
// rule wins. existing is every booking on the item, any status; only APPROVED
// ones count for conflicts.
func validateNewBooking(item *models.Item, bookerID int64, start, end time.Time, existing []models.Booking) error {
	if !item.Available {
		return fmt.Errorf("%w: item %d", ErrNotAvailable, item.ID)
	}
	if !end.After(start) {
		return ErrInvalidRange
	}
	if bookerID == item.OwnerID {
		return ErrOwnItemBooking
	}
	for _, b := range existing {
		if b.Status != models.StatusApproved {
			continue
		}
		if overlaps(b.Start, b.End, start, end) {
			return fmt.Errorf("%w: item %d is booked from %s to %s",
				ErrBookingConflict, item.ID, b.Start.Format(time.RFC3339), b.End.Format(time.RFC3339))
		}
	}
	return nil
}

// canTransition enforces the one-shot WAITING -> APPROVED/REJECTED machine.
func canTransition(b *models.Booking) error {
	if b.Status != models.StatusWaiting {
		return fmt.Errorf("%w: booking %d is %s", ErrInvalidTransition, b.ID, b.Status)
	}
	return nil
}
