package commentary

import (
	"context"
	"net/http"
	"strings"
)

// Response is the body returned by the commentary service.
type Response struct {
	Text string `json:"text"`
}

// Remote calls a commentary service such as the one served by NewRouter.
type Remote struct {
	endpoint string
	client   jsonClient
}

// NewRemote creates a generator for the service at baseURL.
// httpClient may be nil.
func NewRemote(baseURL string, httpClient *http.Client) *Remote {
	return &Remote{
		endpoint: strings.TrimRight(baseURL, "/") + "/v1/commentary",
		client:   newJSONClient(httpClient),
	}
}

// Generate posts req and returns the service's text.
func (r *Remote) Generate(ctx context.Context, req Request) (string, error) {
	var resp Response
	if err := r.client.post(ctx, r.endpoint, req, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}
