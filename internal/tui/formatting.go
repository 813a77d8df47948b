package tui

import (
	"strings"

	"halalfull-support/internal/catalog"
)

// formatOrderMarkdown converts an order record into a short markdown block
func formatOrderMarkdown(rec catalog.OrderRecord) string {
	var b strings.Builder
	b.WriteString("**Status:** ")
	b.WriteString(rec.Status)
	if rec.EstimatedDelivery != "" {
		b.WriteString("  \n**Estimated delivery:** ")
		b.WriteString(rec.EstimatedDelivery)
	}
	if rec.NotFound() {
		b.WriteString("  \n_Check the order number on your confirmation email._")
	}
	return b.String()
}
