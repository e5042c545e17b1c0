package http

import (
	"voltassist/internal/order"
	"voltassist/pkg/log"
)

// Handler is the public interface for the order HTTP delivery layer.
type Handler interface {
	ListMyOrders(c interface{})
}

type handler struct {
	l  log.Logger
	uc order.UseCase
}

// New creates a new HTTP handler for the order domain.
func New(l log.Logger, uc order.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
