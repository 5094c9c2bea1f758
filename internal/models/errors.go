package models

import (
	"errors"
)

var (
	ErrUnauthenticated  = errors.New("models: missing or invalid credential")
	ErrForbidden        = errors.New("models: forbidden")
	ErrSelfModification = errors.New("models: admins cannot modify their own account")
	ErrUserNotFound     = errors.New("models: user not found")
	ErrReviewNotFound   = errors.New("models: review not found")
	ErrFavoriteNotFound = errors.New("models: favorite not found")
	ErrAlreadyFavorite  = errors.New("models: review already in favorites")
	ErrPaymentRequired  = errors.New("models: payment not confirmed")
	ErrInvalidRating    = errors.New("models: rating must be an integer between 1 and 5")
	ErrInvalidPackage   = errors.New("models: unknown package name")
	ErrMissingField     = errors.New("models: missing required field")
)
