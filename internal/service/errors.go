package service

import "errors"

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindBadRequest
)

// Error is a rule or lookup failure whose Message is safe to return to
// the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrMemberNotFound = &Error{Kind: KindNotFound, Message: "Member not found"}
	ErrCourseNotFound = &Error{Kind: KindNotFound, Message: "Course not found"}

	ErrMemberInactive   = &Error{Kind: KindForbidden, Message: "Member is not active"}
	ErrQuotaExceeded    = &Error{Kind: KindForbidden, Message: "Monthly round limit reached"}
	ErrTierMismatch     = &Error{Kind: KindForbidden, Message: "Premium course requires premium membership"}
	ErrReviewNotAllowed = &Error{Kind: KindForbidden, Message: "You must play this course before leaving a review"}

	ErrInvalidRating      = &Error{Kind: KindBadRequest, Message: "Rating must be between 1 and 5"}
	ErrInvalidHolesPlayed = &Error{Kind: KindBadRequest, Message: "holes_played must be a positive number"}
)

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return 0
}
