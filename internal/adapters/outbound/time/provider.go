package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider backed by the system clock.
// Times are reported in UTC so job timestamps compare consistently across hosts.
type CurrentTimeProvider struct{}

// Now returns the current time in UTC.
func (ts CurrentTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
