package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/apperrors"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
	portsrepo "github.com/TourOpsHQ/inbound_ops_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRequestRepository persists the working document as a JSONB blob keyed by
// request number. With a single active editor per document the table holds
// one row per request; the newest row is the working copy.
type PgxRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRequestRepository creates a new repository for inbound request documents.
func NewPgxRequestRepository(pool *pgxpool.Pool) portsrepo.RequestRepositoryFacade {
	return &PgxRequestRepository{pool: pool}
}

// LoadRequest retrieves the most recently updated document. An empty store
// yields the bootstrap document so a fresh installation starts editable.
func (r *PgxRequestRepository) LoadRequest(ctx context.Context) (*domain.InboundRequest, error) {
	query := `
		SELECT payload
		FROM inbound_requests
		ORDER BY last_updated_at DESC
		LIMIT 1;
	`
	var payload []byte
	err := r.pool.QueryRow(ctx, query).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BootstrapRequest(), nil
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrLoadFailure, err)
	}

	var request domain.InboundRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		return nil, fmt.Errorf("%w: corrupt stored payload: %s", apperrors.ErrLoadFailure, err)
	}
	request.Normalize()
	return &request, nil
}

// SaveRequest upserts the full document blob, last local write wins.
func (r *PgxRequestRepository) SaveRequest(ctx context.Context, request domain.InboundRequest) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrSaveFailure, err)
	}

	query := `
		INSERT INTO inbound_requests (request_number, payload, last_updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (request_number) DO UPDATE SET
			payload = EXCLUDED.payload,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err = r.pool.Exec(ctx, query, request.RequestNumber, payload)
	if err != nil {
		return fmt.Errorf("%w: request %s: %s", apperrors.ErrSaveFailure, request.RequestNumber, err)
	}
	return nil
}
