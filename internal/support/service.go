package support

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"halalfull-support/internal/catalog"
	"halalfull-support/internal/completion"
	"halalfull-support/internal/config"
	"halalfull-support/internal/metrics"
)

// Completer performs a single chat completion exchange
type Completer interface {
	Complete(ctx context.Context, req completion.Request) completion.Result
}

// Reply is the outcome of GenerateResponse. Text is never empty.
// Diagnostic is set when the completion call failed and Text holds the fallback reply.
type Reply struct {
	Text       string `json:"reply"`
	Diagnostic string `json:"error,omitempty"`
}

// Failed reports whether the reply is the fallback
func (r Reply) Failed() bool {
	return r.Diagnostic != ""
}

// Service answers customer-support requests. It holds no mutable state and is safe for concurrent use.
type Service struct {
	systemPrompt string
	completer    Completer
	catalog      *catalog.Catalog
	orders       *catalog.OrderIndex
}

// NewService creates a Service backed by the built-in catalog and order index
func NewService(completer Completer) *Service {
	return NewServiceWithData(completer, catalog.DefaultCatalog(), catalog.DefaultOrderIndex())
}

// NewServiceWithData creates a Service over the given tables
func NewServiceWithData(completer Completer, products *catalog.Catalog, orders *catalog.OrderIndex) *Service {
	return &Service{
		systemPrompt: config.SystemPrompt,
		completer:    completer,
		catalog:      products,
		orders:       orders,
	}
}

// SystemPrompt returns the instruction prepended to every completion request
func (s *Service) SystemPrompt() string {
	return s.systemPrompt
}

// GenerateResponse asks the completion API to answer userQuery.
// A failed call is logged and yields the fallback reply with a diagnostic.
func (s *Service) GenerateResponse(ctx context.Context, userQuery string) Reply {
	start := time.Now()
	res := s.completer.Complete(ctx, completion.Request{
		System:      s.systemPrompt,
		User:        userQuery,
		Temperature: config.Temperature,
		TopP:        config.TopP,
	})
	metrics.CompletionDuration.Observe(time.Since(start).Seconds())

	if !res.OK() {
		metrics.CompletionRequests.WithLabelValues("failure").Inc()
		metrics.CompletionFailures.WithLabelValues(string(res.Failure.Kind)).Inc()
		log.Error().
			Err(res.Failure).
			Str("kind", string(res.Failure.Kind)).
			Dur("latency", time.Since(start)).
			Msg("completion request failed")

		return Reply{
			Text:       config.FallbackReply,
			Diagnostic: fmt.Sprintf("Error generating response: %s", res.Failure.Error()),
		}
	}

	metrics.CompletionRequests.WithLabelValues("success").Inc()
	log.Debug().
		Int("reply_len", len(res.Text)).
		Dur("latency", time.Since(start)).
		Msg("completion request succeeded")

	return Reply{Text: res.Text}
}

// SearchProducts returns the products of the first category whose name contains query
func (s *Service) SearchProducts(query string) string {
	cat, ok := s.catalog.FindFirst(query)
	metrics.Lookups.WithLabelValues("product_search", metrics.LookupResult(ok)).Inc()
	if !ok {
		return config.NoProductsMessage
	}
	return fmt.Sprintf("Matching products in %s: %s", cat.Name, strings.Join(cat.Products, ", "))
}

// TrackOrder returns the status of orderNumber, or the not-found record
func (s *Service) TrackOrder(orderNumber string) catalog.OrderRecord {
	rec := s.orders.Lookup(orderNumber)
	metrics.Lookups.WithLabelValues("order_tracking", metrics.LookupResult(!rec.NotFound())).Inc()
	return rec
}
