// Package groq implements provider.ChatClient against Groq's
// OpenAI-compatible chat completion API.
package groq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mandalnilabja/friday/internal/prompt"
	"github.com/mandalnilabja/friday/internal/provider"
	"github.com/mandalnilabja/friday/internal/tokenizer"
)

// Fixed generation parameters.
const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	Model          = "llama3-70b-8192"
	Temperature    = 0.7
	MaxTokens      = 300
	TopP           = 1
	Timeout        = 10 * time.Second
	UserAgent      = "Friday-AI/1.0"
)

// maxErrorBody caps how much of a non-JSON error body is kept.
const maxErrorBody = 512

// Options configures a Client. Zero values select the defaults above.
type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// Logger receives debug diagnostics; nil discards them.
	Logger *slog.Logger

	// Tokenizer, when set, is used to log an estimated prompt size before each call.
	Tokenizer tokenizer.Tokenizer

	// Now is the clock used to render the system prompt.
	Now func() time.Time
}

// Client sends one chat completion per command.
type Client struct {
	api       *openai.Client // nil when no API key is configured
	timeout   time.Duration
	logger    *slog.Logger
	tokenizer tokenizer.Tokenizer
	now       func() time.Time
}

// New creates a Groq client. A missing API key is not an error here;
// Complete reports it on first use.
func New(opts Options) *Client {
	c := &Client{
		timeout:   opts.Timeout,
		logger:    opts.Logger,
		tokenizer: opts.Tokenizer,
		now:       opts.Now,
	}
	if c.timeout <= 0 {
		c.timeout = Timeout
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.now == nil {
		c.now = time.Now
	}

	if opts.APIKey != "" {
		cfg := openai.DefaultConfig(opts.APIKey)
		cfg.BaseURL = DefaultBaseURL
		if opts.BaseURL != "" {
			cfg.BaseURL = opts.BaseURL
		}
		cfg.HTTPClient = &http.Client{
			Timeout:   c.timeout,
			Transport: &userAgentTransport{base: http.DefaultTransport},
		}
		c.api = openai.NewClientWithConfig(cfg)
	}
	return c
}

// Model returns the fixed model identifier.
func (c *Client) Model() string {
	return Model
}

// Complete implements provider.ChatClient.
func (c *Client) Complete(ctx context.Context, command string) (string, error) {
	if c.api == nil {
		return "", provider.ErrNotConfigured
	}

	req := c.buildRequest(command)
	c.logPromptTokens(ctx, req.Messages)

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", c.classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", &provider.Error{
			Kind:   provider.KindShape,
			Detail: "upstream response contained no choices",
		}
	}
	// Every generated message carries a role; none means the message was absent.
	if resp.Choices[0].Message.Role == "" {
		return "", &provider.Error{
			Kind:   provider.KindShape,
			Detail: "upstream response choice has no message",
		}
	}

	c.logger.DebugContext(ctx, "upstream usage",
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason,
	)

	return resp.Choices[0].Message.Content, nil
}

// buildRequest assembles the fixed-shape chat completion request.
func (c *Client) buildRequest(command string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System(c.now())},
			{Role: openai.ChatMessageRoleUser, Content: command},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		TopP:        TopP,
		Stream:      false,
	}
}

func (c *Client) logPromptTokens(ctx context.Context, messages []openai.ChatCompletionMessage) {
	if c.tokenizer == nil {
		return
	}
	n, err := c.tokenizer.CountMessages(messages, Model)
	if err != nil {
		c.logger.DebugContext(ctx, "prompt token estimate failed", "error", err)
		return
	}
	c.logger.DebugContext(ctx, "prompt token estimate", "prompt_tokens", n)
}

// classify maps a go-openai error onto a provider.Error kind.
func (c *Client) classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		detail := fmt.Sprintf("upstream returned status %d", apiErr.HTTPStatusCode)
		if apiErr.Message != "" {
			detail += ": " + apiErr.Message
		}
		return &provider.Error{Kind: provider.KindUpstream, Detail: detail, StatusCode: apiErr.HTTPStatusCode, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := fmt.Sprintf("upstream returned status %d", reqErr.HTTPStatusCode)
		if body := errorBodySnippet(reqErr.Body); body != "" {
			detail += ": " + body
		}
		return &provider.Error{
			Kind:       provider.KindUpstream,
			Detail:     detail,
			StatusCode: reqErr.HTTPStatusCode,
			Err:        err,
		}
	}

	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &urlErr) && urlErr.Timeout()) {
		return &provider.Error{
			Kind:   provider.KindTransport,
			Detail: fmt.Sprintf("upstream request timed out after %s", c.timeout),
			Err:    err,
		}
	}
	if urlErr != nil || errors.Is(err, context.Canceled) {
		return &provider.Error{Kind: provider.KindTransport, Detail: "upstream request failed: " + err.Error(), Err: err}
	}

	return &provider.Error{Kind: provider.KindShape, Detail: "unreadable upstream response: " + err.Error(), Err: err}
}

// errorBodySnippet trims a raw error body to at most maxErrorBody bytes.
func errorBodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= maxErrorBody {
		return s
	}
	s = s[:maxErrorBody]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// userAgentTransport stamps outbound requests with UserAgent.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent)
	return t.base.RoundTrip(req)
}

var _ provider.ChatClient = (*Client)(nil)
