package completion

import (
	"context"
	"fmt"
	"time"
)

// Request is a single two-message chat completion exchange
type Request struct {
	System      string
	User        string
	Temperature float32
	TopP        float32
}

// Provider performs one chat-completion call against a hosted API
type Provider interface {
	ChatCompletion(ctx context.Context, req Request) (string, error)
	Model() string
}

// Result is the outcome of a completion call: either Text, or a Failure.
type Result struct {
	Text    string
	Failure *Failure
}

// OK reports whether the call produced a reply
func (r Result) OK() bool {
	return r.Failure == nil
}

// Client wraps a Provider with single-attempt semantics and error classification
type Client struct {
	provider Provider
	timeout  time.Duration
}

// NewClient creates a Client. A zero timeout leaves the provider's default in place.
func NewClient(provider Provider, timeout time.Duration) *Client {
	return &Client{provider: provider, timeout: timeout}
}

// Model returns the model identifier used by the provider
func (c *Client) Model() string {
	return c.provider.Model()
}

// Complete performs exactly one provider call. Errors and panics are turned into a Failure.
func (c *Client) Complete(ctx context.Context, req Request) (res Result) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result{Failure: &Failure{Kind: KindUnknown, Err: fmt.Errorf("provider panic: %v", r)}}
		}
	}()

	text, err := c.provider.ChatCompletion(ctx, req)
	if err != nil {
		return Result{Failure: Classify(ctx, err)}
	}
	if text == "" {
		return Result{Failure: &Failure{Kind: KindMalformed, Err: ErrEmptyReply}}
	}
	return Result{Text: text}
}
