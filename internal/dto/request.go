package dto

import (
	"time"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChartSliceResponse is one non-zero category in the breakdown view.
type ChartSliceResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ValuationResponse defines the data returned for a document valuation.
type ValuationResponse struct {
	PerCategory map[string]decimal.Decimal `json:"perCategory"`
	Total       decimal.Decimal            `json:"total"`
	Chart       []ChartSliceResponse       `json:"chart"`
}

// SyncStatusResponse defines the data returned for the controller status.
type SyncStatusResponse struct {
	AppState     string     `json:"appState"`
	SyncState    string     `json:"syncState"`
	Version      uint64     `json:"version"`
	SavedVersion uint64     `json:"savedVersion"`
	LastSavedAt  *time.Time `json:"lastSavedAt,omitempty"`
}

// UpdateRequestResponse is returned after a mutation is applied: the editor
// gets the fresh valuation and sync snapshot in one round trip.
type UpdateRequestResponse struct {
	Valuation ValuationResponse  `json:"valuation"`
	Sync      SyncStatusResponse `json:"sync"`
}

// ToValuationResponse converts a domain.CostBreakdown and its chart slices to
// a ValuationResponse DTO.
func ToValuationResponse(breakdown domain.CostBreakdown, chart []domain.CategoryAmount) ValuationResponse {
	perCategory := make(map[string]decimal.Decimal, len(breakdown.PerCategory))
	for category, amount := range breakdown.PerCategory {
		perCategory[string(category)] = amount
	}
	slices := make([]ChartSliceResponse, len(chart))
	for i, slice := range chart {
		slices[i] = ChartSliceResponse{Category: string(slice.Category), Amount: slice.Amount}
	}
	return ValuationResponse{
		PerCategory: perCategory,
		Total:       breakdown.Total,
		Chart:       slices,
	}
}

// ToSyncStatusResponse converts a domain.SyncStatus to its DTO.
func ToSyncStatusResponse(status domain.SyncStatus) SyncStatusResponse {
	return SyncStatusResponse{
		AppState:     string(status.AppState),
		SyncState:    string(status.SyncState),
		Version:      status.Version,
		SavedVersion: status.SavedVersion,
		LastSavedAt:  status.LastSavedAt,
	}
}
