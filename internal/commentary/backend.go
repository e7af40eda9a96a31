package commentary

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/vovakirdan/neon-breaker/internal/config"
)

// Backend names accepted in configuration.
const (
	BackendCanned = "canned"
	BackendGemini = "gemini"
	BackendHTTP   = "http"
	BackendOff    = "off"
)

// NewGenerator builds the generator selected by cfg.Backend.
// BackendOff returns a nil generator and no error.
func NewGenerator(cfg config.CommentaryConfig) (Generator, error) {
	httpClient := &http.Client{Timeout: Timeout(cfg)}

	switch cfg.Backend {
	case "", BackendCanned:
		return Canned{}, nil
	case BackendOff:
		return nil, nil
	case BackendHTTP:
		return NewRemote(cfg.Endpoint, httpClient), nil
	case BackendGemini:
		g, err := NewGemini(GeminiConfig{
			Model:           cfg.Model,
			APIKey:          os.Getenv(cfg.APIKeyEnv),
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
			Language:        cfg.Language,
		}, httpClient)
		if err != nil {
			return nil, fmt.Errorf("%w (set %s)", err, cfg.APIKeyEnv)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("commentary: unknown backend %q", cfg.Backend)
	}
}

// Timeout returns the per-request timeout from cfg.
func Timeout(cfg config.CommentaryConfig) time.Duration {
	if cfg.TimeoutMS <= 0 {
		return DefaultTimeout
	}
	return time.Duration(cfg.TimeoutMS) * time.Millisecond
}
