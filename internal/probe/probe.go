package probe

import (
	"context"

	"healthwatch/internal/domain"
)

// Checker performs a single check for a given target URL. Implementations
// fold every failure mode into the returned result; the caller never sees
// an error value.
type Checker interface {
	Check(ctx context.Context, target string) domain.CheckResult
}
