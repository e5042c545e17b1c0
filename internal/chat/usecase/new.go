package usecase

import (
	"context"

	"voltassist/internal/chat"
	"voltassist/internal/chat/repository"
	"voltassist/internal/faqmatch"
	orderRepo "voltassist/internal/order/repository"
	"voltassist/pkg/log"
)

// Completer generates a free-text reply for a user message. Implemented by
// pkg/gemini.Client.
type Completer interface {
	Complete(ctx context.Context, message, contextText string) (string, error)
}

type implUsecase struct {
	l        log.Logger
	faqRepo  repository.FAQRepository
	convRepo repository.ConversationRepository
	orders   orderRepo.OrderRepository
	ai       Completer
	matcher  *faqmatch.Matcher
}

var _ chat.UseCase = (*implUsecase)(nil)

// New creates a new chat usecase.
func New(
	l log.Logger,
	faqRepo repository.FAQRepository,
	convRepo repository.ConversationRepository,
	orders orderRepo.OrderRepository,
	ai Completer,
	matcher *faqmatch.Matcher,
) *implUsecase {
	if matcher == nil {
		matcher = faqmatch.New()
	}
	return &implUsecase{
		l:        l,
		faqRepo:  faqRepo,
		convRepo: convRepo,
		orders:   orders,
		ai:       ai,
		matcher:  matcher,
	}
}
