package domain

import "github.com/google/uuid"

// NewLineItemID allocates an identifier for a line item. IDs are opaque,
// unique within their collection by construction, stable for the item's
// lifetime and never reused after deletion. They address items only; ordering
// is positional.
func NewLineItemID() string {
	return uuid.NewString()
}
