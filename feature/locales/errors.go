package locales

import (
	"errors"
	"net/http"

	"locale-manager/core/localefile"
	"locale-manager/core/reconcile"
	"locale-manager/core/tree"
)

var (
	// ErrInvalidLocale is returned for locales that are not valid language tags.
	ErrInvalidLocale = errors.New("locales: invalid locale")
	// ErrMissingArgument is returned when a recipe lacks a required file name.
	ErrMissingArgument = errors.New("locales: missing argument")
	// ErrInvalidPath is returned for file names that leave the locales dir.
	ErrInvalidPath = errors.New("locales: file name outside the locales dir")
)

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidLocale),
		errors.Is(err, ErrMissingArgument),
		errors.Is(err, ErrInvalidPath),
		errors.Is(err, reconcile.ErrUnknownRecipe),
		errors.Is(err, reconcile.ErrInvalidSpec),
		errors.Is(err, tree.ErrStructuralConflict),
		errors.Is(err, tree.ErrInvalidKey),
		errors.Is(err, localefile.ErrInvalidFile),
		errors.Is(err, localefile.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, reconcile.ErrMissingSource),
		errors.Is(err, localefile.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
