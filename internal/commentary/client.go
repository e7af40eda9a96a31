package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Retry defaults for remote generators. The whole exchange still has to
// fit in the requester's timeout.
const (
	defaultAttempts   = 2
	defaultRetryDelay = 250 * time.Millisecond
)

// jsonClient posts JSON and decodes JSON replies with retry on transient
// failures. Shared by the Gemini and HTTP generators.
type jsonClient struct {
	http       *http.Client
	headers    map[string]string
	attempts   int
	retryDelay time.Duration
}

func newJSONClient(httpClient *http.Client) jsonClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return jsonClient{
		http:       httpClient,
		attempts:   defaultAttempts,
		retryDelay: defaultRetryDelay,
	}
}

func (c jsonClient) post(ctx context.Context, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("commentary: encode request: %w", err)
	}

	return retry(ctx, c.attempts, c.retryDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range c.headers {
			req.Header.Set(k, v)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return transient(fmt.Errorf("%w: %v", ErrNetwork, err))
		}
		defer resp.Body.Close()

		if err := checkStatus(resp); err != nil {
			return err
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("commentary: decode response: %w", err)
		}
		return nil
	})
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code >= 500 || code == http.StatusTooManyRequests:
		return transient(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrNetwork, code, bytes.TrimSpace(msg))
	}
}
