package model

import "encoding/json"

// JobRecord is a point-in-time snapshot of one download job. The progress
// fields are meaningful only while Status is StatusDownloading; a terminal
// record carries only its filename or error message.
type JobRecord struct {
	Status          JobStatus
	DownloadedBytes int64
	TotalBytes      int64
	Speed           float64 // bytes per second
	ETASeconds      int
	Percent         string // formatted, e.g. "42.3%"
	Filename        string
	ErrorMessage    string
}

// StartingRecord returns the record seeded at job acceptance.
func StartingRecord() JobRecord {
	return JobRecord{Status: StatusStarting}
}

// DownloadingRecord returns a progress snapshot.
func DownloadingRecord(downloaded, total int64, speed float64, etaSec int, percent string) JobRecord {
	return JobRecord{
		Status:          StatusDownloading,
		DownloadedBytes: downloaded,
		TotalBytes:      total,
		Speed:           speed,
		ETASeconds:      etaSec,
		Percent:         percent,
	}
}

// CompletedRecord returns the terminal record for a successful job.
func CompletedRecord(filename string) JobRecord {
	return JobRecord{Status: StatusCompleted, Filename: filename}
}

// ErrorRecord returns the terminal record for a failed job.
func ErrorRecord(message string) JobRecord {
	return JobRecord{Status: StatusError, ErrorMessage: message}
}

// UnknownRecord is the sentinel returned when polling an ID the store has
// never seen.
func UnknownRecord() JobRecord {
	return JobRecord{Status: StatusUnknown}
}

// MarshalJSON emits only the fields that belong to the record's status, so
// a poll never sees progress numbers once the job reached a terminal state.
func (r JobRecord) MarshalJSON() ([]byte, error) {
	switch r.Status {
	case StatusDownloading:
		return json.Marshal(struct {
			Status          JobStatus `json:"status"`
			DownloadedBytes int64     `json:"downloaded_bytes"`
			TotalBytes      int64     `json:"total_bytes"`
			Speed           float64   `json:"speed"`
			ETA             int       `json:"eta"`
			Percent         string    `json:"percent"`
		}{r.Status, r.DownloadedBytes, r.TotalBytes, r.Speed, r.ETASeconds, r.Percent})
	case StatusCompleted:
		return json.Marshal(struct {
			Status   JobStatus `json:"status"`
			Filename string    `json:"filename"`
		}{r.Status, r.Filename})
	case StatusError:
		return json.Marshal(struct {
			Status JobStatus `json:"status"`
			Error  string    `json:"error"`
		}{r.Status, r.ErrorMessage})
	default:
		return json.Marshal(struct {
			Status JobStatus `json:"status"`
		}{r.Status})
	}
}
