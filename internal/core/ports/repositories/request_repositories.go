package repositories

import (
	"context"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
)

// RequestReader defines the load side of the persistence gateway.
type RequestReader interface {
	// LoadRequest retrieves the persisted working document. A store that has
	// never been written returns the bootstrap document, not an error.
	LoadRequest(ctx context.Context) (*domain.InboundRequest, error)
}

// RequestWriter defines the write-back side of the persistence gateway.
type RequestWriter interface {
	// SaveRequest persists the given document wholesale (last write wins).
	SaveRequest(ctx context.Context, request domain.InboundRequest) error
}

// RequestRepositoryFacade combines all request persistence operations.
type RequestRepositoryFacade interface {
	RequestReader
	RequestWriter
}
