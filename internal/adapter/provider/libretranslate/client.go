package libretranslate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultTimeout = 10 * time.Second

// Config configures the LibreTranslate client. An empty BaseURL turns the
// client into an identity translator.
type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client translates text through a LibreTranslate instance.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(cfg.Burst, 1))
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		log:        logger.With("adapter", "libretranslate"),
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Translate translates text from source into target. A blank source asks
// the server to detect the language.
func (c *Client) Translate(ctx context.Context, text, target, source string) (string, error) {
	if c.baseURL == "" {
		return text, nil
	}

	if strings.TrimSpace(source) == "" {
		source = "auto"
	}

	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("libretranslate: encode request: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("libretranslate: rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("libretranslate: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "libretranslate request",
		slog.String("source", source), slog.String("target", target))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("libretranslate: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("libretranslate: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return "", fmt.Errorf("libretranslate: status %d: %s", resp.StatusCode, errResp.Error)
		}
		return "", fmt.Errorf("libretranslate: unexpected status %d", resp.StatusCode)
	}

	var out translateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("libretranslate: decode json: %w", err)
	}

	return out.TranslatedText, nil
}
