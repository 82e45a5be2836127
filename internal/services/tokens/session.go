package tokens

import (
	"context"

	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/scheduler"
)

// Searcher is the subset of the token service a session needs.
type Searcher interface {
	SearchTokens(ctx context.Context, query string, chain domain.Chain, excludeAddress string) ([]domain.Token, error)
}

// SearchSession debounces a keystroke stream into token searches and drops
// responses that arrive after a newer query has been issued.
type SearchSession struct {
	searcher Searcher
	debounce *scheduler.Debouncer
}

func NewSearchSession(searcher Searcher, debounce *scheduler.Debouncer) *SearchSession {
	return &SearchSession{searcher: searcher, debounce: debounce}
}

// Submit schedules a search for query. apply runs only if the result is
// still current when it arrives.
func (s *SearchSession) Submit(ctx context.Context, query string, chain domain.Chain, excludeAddress string, apply func([]domain.Token, error)) {
	s.debounce.Trigger(func(gen scheduler.Generation) {
		results, err := s.searcher.SearchTokens(ctx, query, chain, excludeAddress)
		s.debounce.Commit(gen, func() {
			apply(results, err)
		})
	})
}

// Cancel drops any pending search and invalidates in-flight responses.
func (s *SearchSession) Cancel() {
	s.debounce.Cancel()
}
