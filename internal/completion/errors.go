package completion

import (
	"context"
	"net"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// Kind classifies why a completion call failed
type Kind string

const (
	KindTimeout   Kind = "timeout"
	KindCanceled  Kind = "canceled"
	KindAuth      Kind = "auth"
	KindRateLimit Kind = "rate_limit"
	KindMalformed Kind = "malformed"
	KindTransport Kind = "transport"
	KindUnknown   Kind = "unknown"
)

// ErrEmptyReply is reported when the API answers without any reply text
var ErrEmptyReply = errors.New("completion response contained no reply text")

// Failure is a classified completion error
type Failure struct {
	Kind Kind
	Err  error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Kind)
	}
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Classify maps an error returned by a provider to a Failure
func Classify(ctx context.Context, err error) *Failure {
	kind := KindUnknown

	var (
		apiErr    *openai.APIError
		reqErr    *openai.RequestError
		geminiErr genai.APIError
		netErr    net.Error
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		kind = KindTimeout
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		kind = KindCanceled
	case errors.Is(err, ErrEmptyReply):
		kind = KindMalformed
	case errors.As(err, &apiErr):
		kind = kindForStatus(apiErr.HTTPStatusCode)
	case errors.As(err, &reqErr):
		kind = kindForStatus(reqErr.HTTPStatusCode)
	case errors.As(err, &geminiErr):
		kind = kindForStatus(geminiErr.Code)
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			kind = KindTimeout
		} else {
			kind = KindTransport
		}
	}

	return &Failure{Kind: kind, Err: err}
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	case http.StatusTooManyRequests:
		return KindRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return KindTimeout
	default:
		return KindTransport
	}
}
