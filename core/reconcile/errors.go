package reconcile

import "errors"

var (
	// ErrMissingSource wraps failures to obtain a required input tree.
	ErrMissingSource = errors.New("reconcile: missing source")
	// ErrUnknownRecipe is returned for recipe names that are not defined.
	ErrUnknownRecipe = errors.New("reconcile: unknown recipe")
	// ErrInvalidSpec is returned when a Spec lacks what its recipe needs.
	ErrInvalidSpec = errors.New("reconcile: invalid spec")
)
