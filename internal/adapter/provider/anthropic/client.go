// Package anthropic extracts vocabulary text from scanned pages with the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/wordsnap-backend/internal/config"
	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("anthropic: empty response")

// DefaultMediaType is used for images submitted without a media type.
const DefaultMediaType = "image/jpeg"

// Client sends scanned pages to the model and returns its raw answer.
type Client struct {
	messages  *anthropic.MessageService
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewClient creates a Client from the LLM configuration section.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.RequestTimeout))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)

	return &Client{
		messages:  &client.Messages,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// ExtractText sends the image together with the OCR prompt and returns the
// concatenated text blocks of the answer. The text is returned as is; turning
// it into entries is the caller's job.
func (c *Client) ExtractText(ctx context.Context, img domain.ScanImage) (string, error) {
	mediaType := img.MediaType
	if mediaType == "" {
		mediaType = DefaultMediaType
	}

	msg, err := c.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mediaType, img.Data),
				anthropic.NewTextBlock(ocrPrompt),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages.new: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyResponse
	}

	if msg.StopReason == anthropic.StopReasonMaxTokens {
		c.log.WarnContext(ctx, "model output truncated",
			slog.String("model", c.model),
			slog.Int64("max_tokens", c.maxTokens),
		)
	}

	c.log.DebugContext(ctx, "extraction response",
		slog.String("model", c.model),
		slog.Int("length", len(text)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return text, nil
}
