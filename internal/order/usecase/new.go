package usecase

import (
	"voltassist/internal/order"
	"voltassist/internal/order/repository"
	pkgLog "voltassist/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.OrderRepository
}

var _ order.UseCase = (*implUseCase)(nil)

// New creates a new order UseCase instance.
func New(l pkgLog.Logger, repo repository.OrderRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
