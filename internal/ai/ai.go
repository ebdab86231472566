// Package ai wraps the generative model used to draft 8D reports and to
// analyse HSE photographs.
//
// A Client is built explicitly in one of two modes. ModeMock never talks to
// a model; callers check Mode and serve fixed documents instead. ModeLive
// forwards prompts to a Generator and bounds every call by a single timeout.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/d9705996/kysai/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -typed -source=./ai.go -destination=../mocks/mock_generator.go -package=mocks Generator

// ErrTimeout is returned when a model call exceeds the configured timeout.
var ErrTimeout = errors.New("generative model call timed out")

// ErrMockMode is returned when a mock client is asked to call a model.
var ErrMockMode = errors.New("ai client is in mock mode")

// Mode selects between fixed mock documents and real model calls.
type Mode string

const (
	ModeMock Mode = "mock"
	ModeLive Mode = "live"
)

// Image is an uploaded picture sent alongside a vision prompt.
type Image struct {
	Data     []byte
	MIMEType string
}

// Generator sends prompts to a generative model and returns its text reply.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateVision(ctx context.Context, prompt string, img Image) (string, error)
}

// Client is the entry point used by services.
type Client struct {
	mode    Mode
	gen     Generator
	timeout time.Duration
}

// New returns a live client calling gen with the given per-call timeout.
func New(gen Generator, timeout time.Duration) *Client {
	return &Client{mode: ModeLive, gen: gen, timeout: timeout}
}

// NewMock returns a client in mock mode.
func NewMock() *Client {
	return &Client{mode: ModeMock}
}

// Mode reports which mode the client was built in.
func (c *Client) Mode() Mode {
	return c.mode
}

// Text sends a text-only prompt.
func (c *Client) Text(ctx context.Context, prompt string) (string, error) {
	return c.call(ctx, "ai.Text", func(ctx context.Context) (string, error) {
		return c.gen.GenerateText(ctx, prompt)
	})
}

// Vision sends a prompt together with an image.
func (c *Client) Vision(ctx context.Context, prompt string, img Image) (string, error) {
	return c.call(ctx, "ai.Vision", func(ctx context.Context) (string, error) {
		return c.gen.GenerateVision(ctx, prompt, img)
	})
}

func (c *Client) call(ctx context.Context, span string, fn func(context.Context) (string, error)) (string, error) {
	if c.mode != ModeLive {
		return "", ErrMockMode
	}

	ctx, sp := otel.Tracer("kysai/ai").Start(ctx, span)
	defer sp.End()
	sp.SetAttributes(attribute.String("ai.timeout", c.timeout.String()))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := fn(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}
		sp.RecordError(err)
		sp.SetStatus(codes.Error, err.Error())
		return "", err
	}
	sp.SetAttributes(attribute.Int("ai.reply_bytes", len(reply)))
	return reply, nil
}

// FromConfig builds a mock client when no API key is configured and a live
// Gemini-backed client otherwise.
func FromConfig(ctx context.Context, cfg *config.AIConfig) (*Client, error) {
	if !cfg.Enabled() {
		return NewMock(), nil
	}
	gen, err := NewGeminiGenerator(ctx, GeminiConfig{
		APIKey:      cfg.APIKey,
		TextModel:   cfg.TextModel,
		VisionModel: cfg.VisionModel,
	})
	if err != nil {
		return nil, err
	}
	return New(gen, cfg.Timeout), nil
}
