package commentary

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRouterHealthz(t *testing.T) {
	server := httptest.NewServer(NewRouter(Canned{}, nil))
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("GET /healthz = %d %q", resp.StatusCode, body)
	}
}

func TestRouterCommentary(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"score":120,"level":2,"event":"victory"}`, http.StatusOK},
		{"unknown event", `{"score":120,"level":2,"event":"combo"}`, http.StatusBadRequest},
		{"bad level", `{"score":0,"level":0,"event":"streak"}`, http.StatusBadRequest},
		{"bad json", `{"score":`, http.StatusBadRequest},
	}

	server := httptest.NewServer(NewRouter(Canned{}, nil))
	defer server.Close()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(server.URL+"/v1/commentary", "application/json", strings.NewReader(tc.body))
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Errorf("status = %d, expected %d", resp.StatusCode, tc.status)
			}
		})
	}
}

// The HTTP generator and the router agree on the wire format.
func TestRemoteAgainstRouter(t *testing.T) {
	server := httptest.NewServer(NewRouter(Canned{}, nil))
	defer server.Close()

	req := Request{Score: 300, Level: 4, Event: EventDefeat}
	expected, _ := Canned{}.Generate(context.Background(), req)

	text, err := NewRemote(server.URL, server.Client()).Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if text != expected {
		t.Errorf("Generate() = %q, expected %q", text, expected)
	}
}

func TestRouterGeneratorFailure(t *testing.T) {
	failing := GeneratorFunc(func(context.Context, Request) (string, error) {
		return "", errors.New("upstream down")
	})
	server := httptest.NewServer(NewRouter(failing, nil))
	defer server.Close()

	resp, err := http.Post(server.URL+"/v1/commentary", "application/json",
		strings.NewReader(`{"score":1,"level":1,"event":"streak"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, expected %d", resp.StatusCode, http.StatusBadGateway)
	}
}
