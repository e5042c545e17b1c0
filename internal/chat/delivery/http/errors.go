package http

import (
	"voltassist/internal/chat"
	pkgErrors "voltassist/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrConversationNotFound:
		return pkgErrors.NewHTTPError(404, "conversation not found")
	case chat.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(400, "message content is required")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong, please try again")
	}
}
