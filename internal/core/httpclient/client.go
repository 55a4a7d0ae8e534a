package httpclient

import (
	"net/http"
	"time"

	"sge-logistics/internal/core/logger"

	"go.uber.org/zap"
)

// loggingTransport wraps a RoundTripper and logs every outbound request
// with its duration and status. All outbound adapters (geocoder, mail API,
// hosted auth) share this so their traffic shows up in one place.
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("Outbound request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("Outbound request completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with request logging and the given timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &loggingTransport{next: http.DefaultTransport},
		Timeout:   timeout,
	}
}
