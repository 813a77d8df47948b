package catalog

import "fmt"

// StatusNotFound is the status reported for unknown order numbers
const StatusNotFound = "Order not found"

// OrderRecord is the tracking state of a single order
type OrderRecord struct {
	Status            string `json:"status"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}

// NotFound reports whether the record is the unknown-order sentinel
func (r OrderRecord) NotFound() bool {
	return r.Status == StatusNotFound
}

// String renders the record for display
func (r OrderRecord) String() string {
	if r.EstimatedDelivery == "" {
		return fmt.Sprintf("Status: %s", r.Status)
	}
	return fmt.Sprintf("Status: %s, Estimated delivery: %s", r.Status, r.EstimatedDelivery)
}

// OrderIndex maps order numbers to their records. It is never written after construction.
type OrderIndex struct {
	orders map[string]OrderRecord
}

var defaultOrders = map[string]OrderRecord{
	"HF12345": {Status: "Shipped", EstimatedDelivery: "2-3 days"},
	"HF67890": {Status: "Processing", EstimatedDelivery: "5-7 days"},
}

// NewOrderIndex creates an index from the given records. The input map is copied.
func NewOrderIndex(orders map[string]OrderRecord) *OrderIndex {
	idx := &OrderIndex{orders: make(map[string]OrderRecord, len(orders))}
	for id, rec := range orders {
		idx.orders[id] = rec
	}
	return idx
}

// DefaultOrderIndex returns the built-in mock orders
func DefaultOrderIndex() *OrderIndex {
	return NewOrderIndex(defaultOrders)
}

// Lookup returns the record for orderNumber, or the not-found record.
// Matching is exact and case-sensitive.
func (idx *OrderIndex) Lookup(orderNumber string) OrderRecord {
	if rec, ok := idx.orders[orderNumber]; ok {
		return rec
	}
	return OrderRecord{Status: StatusNotFound}
}
