package domain

import "time"

// CurrentTimeProvider provides the current time, so job timestamps can be pinned in tests.
type CurrentTimeProvider interface {
	Now() time.Time
}
