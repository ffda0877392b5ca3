package services

import (
	"context"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
)

// ValuationSvc recomputes the categorized cost breakdown for a document. Pure
// and total: safe to call on every mutation, absent collections count as
// empty, no failure modes.
type ValuationSvc interface {
	// Compute derives per-category amounts and the grand total.
	Compute(request domain.InboundRequest) domain.CostBreakdown

	// Chart returns the breakdown as presentation slices, excluding
	// categories whose amount is exactly zero. Exclusion never affects the
	// total.
	Chart(breakdown domain.CostBreakdown) []domain.CategoryAmount
}

// TransferSvc serializes documents for hand-off to external systems and
// parses incoming payloads.
type TransferSvc interface {
	// Export produces a deterministic, lossless payload for the document.
	Export(request domain.InboundRequest) ([]byte, error)

	// Import parses a payload into a document. Returns
	// apperrors.ErrMalformedPayload when the payload is not parseable and
	// apperrors.ErrSchemaViolation when it lacks the itinerary or hotels
	// collections. Never touches the working document.
	Import(payload []byte) (*domain.InboundRequest, error)

	// ExportFilename names the download artifact for the document.
	ExportFilename(request domain.InboundRequest) string
}

// SyncSvc orchestrates load-on-start and debounced write-back of the working
// document. It is the exclusive owner of the document; editors read snapshots
// and propose whole-document replacements.
type SyncSvc interface {
	// Initialize loads the document from the gateway, retrying with backoff
	// up to the configured attempt budget. On success the controller is READY;
	// on exhaustion it is in load-ERROR and exposes no document.
	Initialize(ctx context.Context) error

	// RetryLoad re-runs Initialize after a load failure.
	RetryLoad(ctx context.Context) error

	// Document returns a snapshot of the current working document.
	// Fails with apperrors.ErrNotReady until Initialize succeeds.
	Document() (*domain.InboundRequest, error)

	// Apply replaces the working document synchronously, marks the sync state
	// SAVING and (re)starts the debounce window. Only the newest document of
	// a burst is ever persisted.
	Apply(ctx context.Context, request domain.InboundRequest) (domain.SyncStatus, error)

	// RetrySave schedules an immediate write-back attempt if unsaved changes
	// exist.
	RetrySave(ctx context.Context) (domain.SyncStatus, error)

	// Status reports the current load/sync state snapshot.
	Status() domain.SyncStatus

	// Close cancels any pending debounce timer and waits for an in-flight
	// save to finish.
	Close()
}

// SyncSvcFacade is the full synchronization surface exposed to handlers.
type SyncSvcFacade interface {
	SyncSvc
}
