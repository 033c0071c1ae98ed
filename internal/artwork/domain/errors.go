package domain

import "errors"

var (
	ErrInvalidArtworkID  = errors.New("invalid artwork ID")
	ErrArtworkNotFound   = errors.New("artwork not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrDuplicateFavorite = errors.New("favorite already exists")
	ErrForbidden         = errors.New("user is not the owner of this artwork")
	ErrValidation        = errors.New("invalid artwork data")
)
