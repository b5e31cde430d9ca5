package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/wordkeep/internal/provider"
)

const (
	DefaultBaseURL    = "https://api.dictionaryapi.dev"
	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
)

// Config configures the dictionary client. Zero values select defaults;
// RequestsPerSecond <= 0 disables throttling.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Provider looks terms up in the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider from cfg.
func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := max(cfg.Burst, 1)
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		retryDelay: defaultRetryDelay,
		log:        logger.With("adapter", "freedict"),
	}
}

// NewProviderWithURL creates an unthrottled Provider against baseURL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	p := NewProvider(Config{BaseURL: baseURL}, logger)
	p.retryDelay = 10 * time.Millisecond
	return p
}

// Lookup fetches the dictionary entry for term in lang. An unknown term
// (HTTP 404) yields an empty result and a nil error.
func (p *Provider) Lookup(ctx context.Context, term, lang string) (*provider.LookupResult, error) {
	term = strings.TrimSpace(term)
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = "en"
	}
	reqURL := p.baseURL + "/api/v2/entries/" + url.PathEscape(lang) + "/" + url.PathEscape(term)

	p.log.DebugContext(ctx, "freedict request", slog.String("term", term), slog.String("lang", lang))

	resp, err := p.doWithRetry(ctx, reqURL, term)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("term", term), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &provider.LookupResult{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}

	result := mapEntries(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("term", term),
		slog.Int("status", resp.StatusCode),
		slog.Int("senses", len(result.Senses)),
	)

	return result, nil
}

// doWithRetry issues the GET once more on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, reqURL, term string) (*http.Response, error) {
	resp, err := p.do(ctx, reqURL)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("term", term), slog.String("reason", reason))

	timer := time.NewTimer(p.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return p.do(ctx, reqURL)
}

func (p *Provider) do(ctx context.Context, reqURL string) (*http.Response, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return p.httpClient.Do(req)
}

// mapEntries flattens every definition of every meaning into one sense. A
// sense carries the first phonetic text of its own entry; audio URLs are
// pooled across all entries.
func mapEntries(entries []apiEntry) *provider.LookupResult {
	result := &provider.LookupResult{Senses: []provider.SenseResult{}}
	if len(entries) == 0 {
		return result
	}

	var audio []string
	for _, e := range entries {
		for _, ph := range e.Phonetics {
			if a := strings.TrimSpace(ph.Audio); a != "" {
				audio = append(audio, a)
			}
		}
	}

	result.IPA = firstIPA(entries[0].Phonetics)

	for _, e := range entries {
		ipa := firstIPA(e.Phonetics)
		for _, m := range e.Meanings {
			var pos *string
			if m.PartOfSpeech != "" {
				p := m.PartOfSpeech
				pos = &p
			}
			for _, d := range m.Definitions {
				sense := provider.SenseResult{
					PartOfSpeech: pos,
					Definition:   d.Definition,
					IPA:          ipa,
					Examples:     []string{},
					Synonyms:     nonNil(d.Synonyms),
					Antonyms:     nonNil(d.Antonyms),
					AudioURLs:    append([]string{}, audio...),
				}
				if d.Example != "" {
					sense.Examples = append(sense.Examples, d.Example)
				}
				result.Senses = append(result.Senses, sense)
			}
		}
	}

	return result
}

func firstIPA(phonetics []apiPhonetic) *string {
	for _, ph := range phonetics {
		if strings.TrimSpace(ph.Text) != "" {
			t := ph.Text
			return &t
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
