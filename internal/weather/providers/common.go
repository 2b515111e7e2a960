package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/metrics"
	"github.com/i474232898/weather-cli/internal/weather"
)

var errMissingAPIKey = errors.New("api key is not configured")

func newHTTPClient(client *http.Client) *http.Client {
	if client == nil {
		return http.DefaultClient
	}
	return client
}

// newCircuitBreaker trips only on transport failures and 5xx responses.
// Client errors such as an unknown city do not count against the upstream.
func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         name,
		MaxRequests:  5,
		Interval:     1 * time.Minute,
		Timeout:      2 * time.Minute,
		IsSuccessful: isBreakerSuccess,
	})
}

func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var se *statusError
	return errors.As(err, &se) && se.code < http.StatusInternalServerError
}

// statusError carries the upstream status code of a non-2xx response.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("unexpected status code %d", e.code)
	}
	return fmt.Sprintf("unexpected status code %d: %s", e.code, e.body)
}

// doRequest executes a single HTTP request behind a circuit breaker.
// Any transport failure or non-2xx status is reported as weather.ErrRequest.
func doRequest(
	ctx context.Context,
	client *http.Client,
	cb *gobreaker.CircuitBreaker,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	req, err := buildRequest()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrRequest, err)
	}
	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return nil, &statusError{code: resp.StatusCode, body: string(body)}
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit breaker open: %v", weather.ErrRequest, err)
		}
		return nil, fmt.Errorf("%w: %v", weather.ErrRequest, err)
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type from circuit breaker", weather.ErrRequest)
	}
	return resp, nil
}

// fetchJSON performs one GET and decodes the body into out.
func fetchJSON(
	ctx context.Context,
	provider, operation string,
	client *http.Client,
	cb *gobreaker.CircuitBreaker,
	logger *zap.Logger,
	buildRequest func() (*http.Request, error),
	out any,
) error {
	start := time.Now()
	err := func() error {
		resp, err := doRequest(ctx, client, cb, buildRequest)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode %s response: %v", weather.ErrSerialization, provider, err)
		}
		return nil
	}()

	elapsed := time.Since(start)
	metrics.RecordProviderRequest(provider, operation, elapsed, err)
	logger.Debug("provider request",
		zap.String("provider", provider),
		zap.String("operation", operation),
		zap.Duration("elapsed", elapsed),
		zap.Error(err),
	)

	if err != nil {
		return fmt.Errorf("%s %s: %w", provider, operation, err)
	}
	return nil
}

func newGetRequest(base string, values url.Values) (*http.Request, error) {
	u := fmt.Sprintf("%s?%s", base, values.Encode())
	return http.NewRequest(http.MethodGet, u, nil)
}
