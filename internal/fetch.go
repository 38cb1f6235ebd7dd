package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	fetchCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bikeshare_fetch_total",
		Help: "Number of times a dataset source was fetched",
	}, []string{"source"})
	fetchErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bikeshare_fetch_errors_total",
		Help: "Number of times fetching a dataset source failed",
	}, []string{"source"})
)

func init() {
	prometheus.MustRegister(fetchCount, fetchErrors)
}

// Fetcher reads datasets from HTTP URLs or local file paths.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher. A zero timeout means no client timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// IsRemote reports whether source is an http(s) URL rather than a file path.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Open returns a reader over source. The caller closes it.
func (f *Fetcher) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	if source == "" {
		return nil, fmt.Errorf("empty source")
	}
	fetchCount.With(prometheus.Labels{"source": source}).Inc()

	if !IsRemote(source) {
		file, err := os.Open(source)
		if err != nil {
			fetchErrors.With(prometheus.Labels{"source": source}).Inc()
			return nil, err
		}
		return file, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		fetchErrors.With(prometheus.Labels{"source": source}).Inc()
		return nil, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		fetchErrors.With(prometheus.Labels{"source": source}).Inc()
		return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		fetchErrors.With(prometheus.Labels{"source": source}).Inc()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, source)
	}
	return resp.Body, nil
}

// Fetch reads source fully.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	rc, err := f.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
