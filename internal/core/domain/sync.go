package domain

import "time"

// AppState tracks the initial load of the working document.
type AppState string

const (
	AppLoading AppState = "LOADING"
	AppReady   AppState = "READY"
	AppError   AppState = "ERROR"
)

// SyncState tracks write-back of the working document. Only meaningful once
// AppState is READY. ERROR is non-terminal: the next mutation or a manual
// retry re-enters SAVING.
type SyncState string

const (
	SyncSaved  SyncState = "SAVED"
	SyncSaving SyncState = "SAVING"
	SyncError  SyncState = "ERROR"
)

// SyncStatus is a point-in-time snapshot of the synchronization controller.
type SyncStatus struct {
	AppState     AppState   `json:"appState"`
	SyncState    SyncState  `json:"syncState"`
	Version      uint64     `json:"version"`      // bumped on every mutation
	SavedVersion uint64     `json:"savedVersion"` // highest version known persisted
	LastSavedAt  *time.Time `json:"lastSavedAt,omitempty"`
}
