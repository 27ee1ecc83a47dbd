package filterexpr

import (
	"fmt"
	"strings"
)

// Order is a parsed order_by clause.
type Order struct {
	Key  string
	Desc bool
}

// ParseOrder validates an order_by string ("field", "field desc") against a
// whitelist. An empty input returns the default.
func ParseOrder(raw string, allowed []string, fallback Order) (Order, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	parts := strings.Fields(raw)
	if len(parts) > 2 {
		return Order{}, fmt.Errorf("invalid order_by %q", raw)
	}

	key := parts[0]
	if !keyAllowed(allowed, key) {
		return Order{}, fmt.Errorf("field %q cannot be used for ordering", key)
	}

	order := Order{Key: key}
	if len(parts) == 2 {
		switch strings.ToLower(parts[1]) {
		case "asc":
		case "desc":
			order.Desc = true
		default:
			return Order{}, fmt.Errorf("invalid direction %q for field %q", parts[1], key)
		}
	}
	return order, nil
}

func keyAllowed(allowed []string, key string) bool {
	for _, candidate := range allowed {
		if candidate == key {
			return true
		}
	}
	return false
}
