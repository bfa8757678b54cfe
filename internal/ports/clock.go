package ports

import (
	"context"
	"time"
)

// Sleeper abstracts blocking waits so runs can be tested without real
// delays. Implementations must return early with ctx.Err() when the
// context is cancelled mid-wait.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}
