package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"healthwatch/internal/domain"
)

const userAgent = "healthwatch/0.1.0"

type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

// Check issues one GET against target. The timer runs from just before the
// send until a response arrives or the attempt fails, whichever comes first.
func (h *HTTPChecker) Check(ctx context.Context, target string) domain.CheckResult {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return down(target, err.Error(), nil, time.Since(start))
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := h.Client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return down(target, failureReason(err), nil, elapsed)
	}
	defer resp.Body.Close()

	code := resp.StatusCode
	if code >= 200 && code < 400 {
		return domain.CheckResult{
			URL:            target,
			Status:         domain.StatusUp,
			StatusCode:     &code,
			ResponseTimeMS: elapsed.Milliseconds(),
			Timestamp:      domain.Now(),
		}
	}
	return down(target, fmt.Sprintf("HTTP %d", code), &code, elapsed)
}

func down(url, reason string, code *int, elapsed time.Duration) domain.CheckResult {
	return domain.CheckResult{
		URL:            url,
		Status:         domain.StatusDown,
		StatusCode:     code,
		ResponseTimeMS: elapsed.Milliseconds(),
		Timestamp:      domain.Now(),
		Error:          &reason,
	}
}

// failureReason collapses the various deadline shapes (client timeout,
// context deadline) into a stable "timeout" string.
func failureReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout"
	}
	return err.Error()
}
