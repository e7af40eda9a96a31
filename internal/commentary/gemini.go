package commentary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultGeminiEndpoint is the public Generative Language API.
const DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com"

// GeminiConfig tunes the Gemini generator.
type GeminiConfig struct {
	Endpoint        string // Defaults to DefaultGeminiEndpoint
	Model           string
	APIKey          string
	Temperature     float64
	MaxOutputTokens int
	Language        string
}

// Gemini calls the generateContent REST method.
type Gemini struct {
	cfg    GeminiConfig
	client jsonClient
}

// NewGemini creates a Gemini generator. httpClient may be nil.
func NewGemini(cfg GeminiConfig, httpClient *http.Client) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultGeminiEndpoint
	}
	if cfg.Language == "" {
		cfg.Language = "Korean"
	}

	client := newJSONClient(httpClient)
	client.headers = map[string]string{"x-goog-api-key": cfg.APIKey}
	return &Gemini{cfg: cfg, client: client}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate asks the model for one line. An empty candidate list yields an
// empty string, which the requester replaces with EmptyFallback.
func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	body := generateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: Prompt(req, g.cfg.Language)}}}},
		GenerationConfig: generationConfig{
			Temperature:     g.cfg.Temperature,
			MaxOutputTokens: g.cfg.MaxOutputTokens,
		},
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(g.cfg.Endpoint, "/"), url.PathEscape(g.cfg.Model))

	var resp generateResponse
	if err := g.client.post(ctx, endpoint, body, &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

// Prompt builds the hype-man instruction for a request.
func Prompt(req Request, language string) string {
	return fmt.Sprintf(`You are a hype-man game commentator for a retro-neon brick breaker game.
Current Score: %d
Level: %d
Event: %s

Provide a short, punchy, 1-sentence commentary in %s to encourage or react to the player.
Make it sound cool, futuristic, and exciting. Keep it under 20 words.`,
		req.Score, req.Level, req.Event, language)
}
