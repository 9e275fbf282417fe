package syncer

import (
	"fmt"
)

// SyncError is the base error type for sync-related errors
type SyncError struct {
	Type    string
	Message string
}

// Error implements the error interface
func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewDownloadFailedError creates a new error for failed file downloads
func NewDownloadFailedError(name string, cause error) error {
	return &SyncError{
		Type:    "DownloadFailed",
		Message: fmt.Sprintf("download of %s failed: %v", name, cause),
	}
}

// NewMissingDownloadURLError creates a new error for listing entries
// without a raw content URL
func NewMissingDownloadURLError(name string) error {
	return &SyncError{
		Type:    "MissingDownloadURL",
		Message: fmt.Sprintf("remote listing entry %s has no download URL", name),
	}
}

// NewSyncCancelledError creates a new error for cancelled sync runs
func NewSyncCancelledError(reason string) error {
	return &SyncError{
		Type:    "SyncCancelled",
		Message: fmt.Sprintf("sync was cancelled: %s", reason),
	}
}
