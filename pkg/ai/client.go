package ai

import (
	"context"
	"errors"

	"resume-builder/pkg/ai/formatters"
)

// Completer is a text-generation backend. ServiceProvider and GeminiProvider
// implement it.
type Completer = formatters.Completer

// ErrNoProvider is returned by a Client built without a backend.
var ErrNoProvider = errors.New("ai: no provider configured")

// Client formats candidate data into the canonical resume schema through a
// Completer. A Client is immutable; WithLanguage returns a copy.
type Client struct {
	provider Completer
	language string
}

func NewClient(provider Completer) *Client {
	return &Client{provider: provider}
}

// WithLanguage returns a client whose output text is written in language.
func (c *Client) WithLanguage(language string) *Client {
	cp := *c
	cp.language = language
	return &cp
}

func (c *Client) Language() string { return c.language }

// Formatter is implemented by the whole-resume formatter.
type Formatter interface {
	Format(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error)
}

func (c *Client) NewResumeFormatter() Formatter {
	return formatters.NewResumeFormatter(c.provider, c.language)
}

// FormatResume asks the backend for a complete resume object.
func (c *Client) FormatResume(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	if c == nil || c.provider == nil {
		return nil, ErrNoProvider
	}
	return c.NewResumeFormatter().Format(ctx, payload)
}

// EnrichSection regenerates one section ("header", "summary", "experience"
// or "skills") and returns an object holding only that key.
func (c *Client) EnrichSection(ctx context.Context, section string, payload map[string]interface{}) (map[string]interface{}, error) {
	if c == nil || c.provider == nil {
		return nil, ErrNoProvider
	}
	return formatters.NewSectionFormatter(c.provider, c.language).Format(ctx, section, payload)
}

// FormatLabels translates section headings into the client's language.
func (c *Client) FormatLabels(ctx context.Context) (map[string]string, error) {
	if c == nil || c.provider == nil {
		return nil, ErrNoProvider
	}
	return formatters.NewLabelsFormatter(c.provider, c.language).Format(ctx)
}
