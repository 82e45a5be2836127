package quoting

import (
	"context"

	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/scheduler"
)

// Quoter is the subset of the quote service a session needs. Satisfied by
// *Service; tests substitute fakes.
type Quoter interface {
	GetQuote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)
}

// QuoteSession serializes a stream of quote requests for one embedding
// surface, such as a swap form re-quoting on every input edit. Requests are
// debounced, and a response whose generation is no longer current is dropped
// instead of being applied, so a slow early response can never overwrite a
// fast later one.
type QuoteSession struct {
	quoter   Quoter
	debounce *scheduler.Debouncer
}

func NewQuoteSession(quoter Quoter, debounce *scheduler.Debouncer) *QuoteSession {
	return &QuoteSession{quoter: quoter, debounce: debounce}
}

// Submit schedules req. After the debounce delay the quote is fetched and, if
// still current, apply is invoked with the result. apply runs on the fetch
// goroutine and must not block.
func (s *QuoteSession) Submit(ctx context.Context, req domain.QuoteRequest, apply func(*domain.Quote, error)) {
	s.debounce.Trigger(func(gen scheduler.Generation) {
		quote, err := s.quoter.GetQuote(ctx, req)
		s.debounce.Commit(gen, func() {
			apply(quote, err)
		})
	})
}

// Cancel drops any pending request and invalidates in-flight responses.
// Used when the embedding surface clears its inputs.
func (s *QuoteSession) Cancel() {
	s.debounce.Cancel()
}
