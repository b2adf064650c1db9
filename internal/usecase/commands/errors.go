package commands

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
)

var (
	ErrClientBlacklisted      = errs.NewForbidden("online booking is not available for this phone number")
	ErrBookingSubmitFailed    = errs.New("failed to submit booking")
	ErrPromotionLookupFailed  = errs.New("failed to look up promo code")
	ErrBookingNotFound        = errs.NewNotFound("booking not found")
	ErrBookingNotOwned        = errs.NewForbidden("booking does not belong to this account")
	ErrBookingNotReviewable   = errs.NewConflict("only a completed visit can be reviewed")
	ErrBookingAlreadyReviewed = errs.NewConflict("this visit has already been reviewed")
	ErrReviewNotFound         = errs.NewNotFound("review not found")
	ErrEntityNotFound         = errs.NewNotFound("record not found")
	ErrEntityInUse            = errs.NewConflict("record is referenced by other records")
	ErrDuplicateEntity        = errs.NewConflict("record already exists")
	ErrUnknownReference       = errs.NewValidation("referenced record does not exist")
	ErrUserNotFound           = errs.NewNotFound("user not found")
)

// validation marks a domain rule violation so handlers answer 400.
func validation(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

func conflict(err error) error {
	return errs.Mark(err, errs.ErrConflict)
}
