package model

// JobStatus represents the status of a download job
type JobStatus string

const (
	// StatusStarting means the job was accepted but the worker has not
	// reported progress yet
	StatusStarting JobStatus = "starting"

	// StatusDownloading means the transfer is in progress
	StatusDownloading JobStatus = "downloading"

	// StatusCompleted means the job finished successfully
	StatusCompleted JobStatus = "completed"

	// StatusError means the job failed with an error
	StatusError JobStatus = "error"

	// StatusUnknown is returned for IDs the store has never seen. It is a
	// response sentinel, never stored.
	StatusUnknown JobStatus = "unknown"
)

// String returns the string representation of JobStatus
func (s JobStatus) String() string {
	return string(s)
}

// IsTerminal returns true if no further transitions happen for a job in
// this status
func (s JobStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Rank orders statuses along the job lifecycle: starting < downloading <
// completed/error. Unknown ranks below every stored status.
func (s JobStatus) Rank() int {
	switch s {
	case StatusStarting:
		return 1
	case StatusDownloading:
		return 2
	case StatusCompleted, StatusError:
		return 3
	default:
		return 0
	}
}
