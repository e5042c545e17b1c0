package http

import (
	"voltassist/internal/auth"
	pkgErrors "voltassist/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrInvalidMobile:
		return pkgErrors.NewHTTPError(400, "please enter a valid 10-digit mobile number")
	case auth.ErrInvalidOTP:
		return pkgErrors.NewHTTPError(401, "invalid or expired code, request a new one")
	case auth.ErrSessionNotFound:
		return pkgErrors.NewHTTPError(401, "session expired, please log in again")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong, please try again")
	}
}
