package http

import (
	"errors"

	"voltassist/internal/order"
	pkgErrors "voltassist/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, order.ErrMobileRequired):
		return pkgErrors.NewHTTPError(401, "session has no mobile number, please log in again")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong, please try again")
	}
}
