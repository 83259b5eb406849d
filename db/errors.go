package db

import "errors"

// Request-level rejections; none are transient. Controllers translate these
// into HTTP statuses, nothing retries them.
var (
	ErrNotFound           = errors.New("not found")
	ErrNotAvailable       = errors.New("item not available")
	ErrInvalidRange       = errors.New("booking end must be after start")
	ErrOwnItemBooking     = errors.New("cannot book own item")
	ErrBookingConflict    = errors.New("booking conflict")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidTransition  = errors.New("cannot change booking state")
	ErrUnsupportedState   = errors.New("unknown state")
	ErrBadPageParams      = errors.New("bad page params")
	ErrEmailTaken         = errors.New("email already in use")
	ErrBlankComment       = errors.New("blank comment not allowed")
	ErrNoFinishedBooking  = errors.New("no finished booking for this item")
)
