package iconfetcher

import (
	"errors"
	"fmt"

	"github.com/kataras/icon-fetcher/pkg/paths"
)

// UsageError reports invalid input. It is returned before any I/O takes place.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return "usage: " + e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// DownloadError reports a connection failure or a non-success response.
// The partially downloaded archive has been removed.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ExtractionError reports a corrupt or unreadable archive.
// The downloaded archive is kept at Archive.
type ExtractionError struct {
	Archive string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Archive, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// CopyError reports the first file of a platform stage that could not be copied.
// Files copied before it are left in place.
type CopyError struct {
	Platform paths.Platform
	Err      error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Platform, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// CleanupWarning reports a temporary file or directory that could not be removed.
// It never fails a run.
type CleanupWarning struct {
	Path string
	Err  error
}

func (e *CleanupWarning) Error() string {
	return fmt.Sprintf("could not remove %s: %v", e.Path, e.Err)
}

func (e *CleanupWarning) Unwrap() error { return e.Err }

// Exit codes returned by ExitCode.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	return ExitFailure
}
