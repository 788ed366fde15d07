package clock

import "time"

// Clock provides time to the controllers.
// Search results are stamped with it; tests use a manual implementation.
type Clock interface {
	Now() time.Time
}
