package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	appConfig "voltassist/config"
	chatHTTP "voltassist/internal/chat/delivery/http"
	"voltassist/internal/chat/repository/faqcache"
	chatPostgre "voltassist/internal/chat/repository/postgre"
	chatUC "voltassist/internal/chat/usecase"
	"voltassist/internal/faqmatch"
	"voltassist/internal/middleware"
	orderPostgre "voltassist/internal/order/repository/postgre"
)

// setupChatDomain initializes the chat domain and registers its routes.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := chatPostgre.New(srv.postgresDB, srv.l)
	faqRepo := faqcache.New(repo, srv.appCfg.Chat.FAQCacheTTL)
	orderRepo := orderPostgre.New(srv.postgresDB, srv.l)

	matcher := faqmatch.NewWithWeights(matcherWeights(srv.appCfg.Matching))

	uc := chatUC.New(srv.l, faqRepo, repo, orderRepo, srv.gemini, matcher)
	h := chatHTTP.New(srv.l, uc)

	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
}

// matcherWeights starts from the built-in scoring constants and applies any
// non-zero override from configuration.
func matcherWeights(m appConfig.MatchingConfig) faqmatch.Weights {
	w := faqmatch.DefaultWeights()

	override := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}

	override(&w.PhraseScore, m.PhraseScore)
	override(&w.PhraseRelevance, m.PhraseRelevance)
	override(&w.BigramScore, m.BigramScore)
	override(&w.BigramRelevance, m.BigramRelevance)
	override(&w.ExactWordScore, m.ExactWordScore)
	override(&w.PartialWordScore, m.PartialWordScore)
	override(&w.AnswerWordScore, m.AnswerWordScore)
	override(&w.RelevanceBonus, m.RelevanceBonus)
	override(&w.KeywordWholeScore, m.KeywordWholeScore)
	override(&w.KeywordWholeRelevance, m.KeywordWholeRelevance)
	override(&w.KeywordSubstringScore, m.KeywordSubstringScore)
	override(&w.KeywordSubstringRelevance, m.KeywordSubstringRelevance)
	override(&w.MinRelevanceForScore, m.MinRelevanceForScore)
	override(&w.RelevanceDivisor, m.RelevanceDivisor)
	override(&w.MinFinalScore, m.MinFinalScore)
	override(&w.MinRelevance, m.MinRelevance)

	return w
}
