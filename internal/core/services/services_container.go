package services

import (
	"log/slog"

	portsrepo "github.com/TourOpsHQ/inbound_ops_backend/internal/core/ports/repositories"
	portssvc "github.com/TourOpsHQ/inbound_ops_backend/internal/core/ports/services"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Valuation = NewValuationService(cfg.TransportFlatRate)
	container.Transfer = NewTransferService()
	container.Sync = NewSyncService(repos.RequestRepo, logger, SyncOptions{
		DebounceDuration:   cfg.DebounceDuration,
		LoadMaxAttempts:    cfg.LoadRetryMaxAttempts,
		LoadRetryBaseDelay: cfg.LoadRetryBaseDelay,
	})

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ValuationSvc  = (*ValuationService)(nil)
	_ portssvc.TransferSvc   = (*TransferService)(nil)
	_ portssvc.SyncSvcFacade = (*SyncService)(nil)
)
