package probe

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"

	"github.com/okian/randsum/pkg/logger"
)

// Worker configuration constants.
const (
	workerChannelMultiplier = 2
	maxBodyBytes            = 1 << 10
	progressInterval        = time.Second
)

// ErrStatus is returned for a non-200 response.
var ErrStatus = errors.New("unexpected status")

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// FetchOne performs GET url and returns the parsed body.
func (c *HTTPClient) FetchOne(ctx context.Context, url string) (Sample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return Sample{}, errors.Wrap(err, "build request")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return Sample{}, errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Sample{}, errors.Wrap(err, "read body")
	}
	if resp.StatusCode != http.StatusOK {
		return Sample{}, errors.Wrapf(ErrStatus, "%d", resp.StatusCode)
	}
	return Parse(string(body))
}

// fetchAll sends config.Requests requests with config.Workers workers and
// returns every sample that parsed. Failures are counted in stats.
func fetchAll(ctx context.Context, config *Config, stats *Stats) []Sample {
	log := logger.Get()
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/"

	var (
		mu         sync.Mutex
		samples    = make([]Sample, 0, config.Requests)
		violations []string
		submitted  atomic.Int64
		failed     atomic.Int64
		lastReport = atomic.NewInt64(time.Now().UnixNano())
	)

	jobs := make(chan struct{}, config.Workers*workerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if ctx.Err() != nil {
					continue
				}
				s, err := client.FetchOne(ctx, url)
				n := submitted.Inc()
				if err != nil {
					failed.Inc()
					mu.Lock()
					violations = append(violations, err.Error())
					mu.Unlock()
					if config.Verbose {
						log.Warn(ctx, "request failed", logger.Error(err))
					}
					continue
				}
				mu.Lock()
				samples = append(samples, s)
				mu.Unlock()

				now := time.Now().UnixNano()
				if last := lastReport.Load(); time.Duration(now-last) >= progressInterval && lastReport.CompareAndSwap(last, now) {
					log.Info(ctx, "progress", logger.Any("sent", n), logger.Int("total", config.Requests))
				}
			}
		}()
	}

send:
	for i := 0; i < config.Requests; i++ {
		select {
		case <-ctx.Done():
			break send
		case jobs <- struct{}{}:
		}
	}
	close(jobs)
	wg.Wait()

	stats.Requests = int(submitted.Load())
	stats.Failed = int(failed.Load())
	stats.Violations = append(stats.Violations, violations...)
	return samples
}
