package services

import (
	"encoding/json"
	"fmt"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/apperrors"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
)

// TransferService implements document export/import for hand-off to external
// systems. The payload format is the document's canonical JSON shape.
type TransferService struct{}

// NewTransferService creates a new transfer codec.
func NewTransferService() *TransferService {
	return &TransferService{}
}

// Export serializes the full document deterministically and losslessly.
func (s *TransferService) Export(request domain.InboundRequest) ([]byte, error) {
	request.Normalize()
	payload, err := json.MarshalIndent(request, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export request %s: %w", request.RequestNumber, err)
	}
	return payload, nil
}

// Import parses a payload into a normalized document. The shape check is a
// shallow presence test for the itinerary and hotels keys only, not full
// schema validation; a deliberately low bar kept from the original exchange
// format. Import never replaces the working document itself; callers route
// the result through the synchronization controller so a failed import
// leaves the working copy untouched.
func (s *TransferService) Import(payload []byte) (*domain.InboundRequest, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(payload, &shape); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMalformedPayload, err)
	}

	if _, ok := shape["itinerary"]; !ok {
		return nil, fmt.Errorf("%w: missing itinerary collection", apperrors.ErrSchemaViolation)
	}
	if _, ok := shape["hotels"]; !ok {
		return nil, fmt.Errorf("%w: missing hotels collection", apperrors.ErrSchemaViolation)
	}

	var request domain.InboundRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMalformedPayload, err)
	}
	request.Normalize()
	return &request, nil
}

// ExportFilename names the download artifact for a document.
func (s *TransferService) ExportFilename(request domain.InboundRequest) string {
	name := request.RequestNumber
	if name == "" {
		name = "draft"
	}
	return fmt.Sprintf("tour_request_%s.json", name)
}
