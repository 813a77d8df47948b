package modes

import "fmt"

// Mode IDs
const (
	GeneralChat   = "general_chat"
	ProductSearch = "product_search"
	OrderTracking = "order_tracking"
)

// Mode describes one support option offered by the UI
type Mode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	Action      string `json:"action"`
	IsDefault   bool   `json:"is_default"`
}

// AvailableModes lists the support options in display order
var AvailableModes = []Mode{
	{
		ID:          GeneralChat,
		Name:        "General Chat",
		Description: "Ask the assistant anything about products, orders or the website",
		Prompt:      "Ask your question:",
		Action:      "Send",
		IsDefault:   true,
	},
	{
		ID:          ProductSearch,
		Name:        "Product Search",
		Description: "Find products by category keyword",
		Prompt:      "Search products:",
		Action:      "Search",
	},
	{
		ID:          OrderTracking,
		Name:        "Order Tracking",
		Description: "Check the status of an order",
		Prompt:      "Enter your order number:",
		Action:      "Track Order",
	},
}

// GetModeByID returns a mode by its ID
func GetModeByID(id string) (*Mode, error) {
	for _, mode := range AvailableModes {
		if mode.ID == id {
			return &mode, nil
		}
	}
	return nil, fmt.Errorf("support mode with ID '%s' not found", id)
}

// GetDefaultMode returns the default mode
func GetDefaultMode() *Mode {
	for _, mode := range AvailableModes {
		if mode.IsDefault {
			return &mode
		}
	}
	// Fallback to first mode if no default is set
	return &AvailableModes[0]
}

// IndexOf returns the position of id in AvailableModes, or the default mode's position
func IndexOf(id string) int {
	for i, mode := range AvailableModes {
		if mode.ID == id {
			return i
		}
	}
	def := GetDefaultMode()
	for i, mode := range AvailableModes {
		if mode.ID == def.ID {
			return i
		}
	}
	return 0
}

// GetModeNames returns a slice of mode names for UI display
func GetModeNames() []string {
	names := make([]string, len(AvailableModes))
	for i, mode := range AvailableModes {
		names[i] = mode.Name
	}
	return names
}
