package models

import (
	"strconv"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// TimestampLayout matches the text SQLite writes for CURRENT_TIMESTAMP.
const TimestampLayout = "2006-01-02 15:04:05"

// Application links a job seeker to a job they applied for.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	JobSeekerID int64     `json:"job_seeker_id"`
	Status      Status    `json:"status"`
	AppliedAt   time.Time `json:"application_date"`
}

var ApplicationColumns = []string{"job_id", "status", "application_date"}

func (a Application) Value(column string) string {
	switch column {
	case "id":
		return strconv.FormatInt(a.ID, 10)
	case "job_id":
		return strconv.FormatInt(a.JobID, 10)
	case "job_seeker_id":
		return strconv.FormatInt(a.JobSeekerID, 10)
	case "status":
		return string(a.Status)
	case "application_date":
		if a.AppliedAt.IsZero() {
			return ""
		}
		return a.AppliedAt.Format(TimestampLayout)
	default:
		return ""
	}
}
