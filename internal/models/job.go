package models

import "strconv"

// Job is a posting owned by an employer account.
type Job struct {
	ID            int64  `json:"id"`
	EmployerID    int64  `json:"employer_id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Requirements  string `json:"requirements,omitempty"`
	Location      string `json:"location,omitempty"`
	SalaryRange   string `json:"salary_range,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
}

// JobDraft holds the employer-supplied fields of a job before it is stored.
type JobDraft struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Requirements  string `json:"requirements,omitempty"`
	Location      string `json:"location,omitempty"`
	SalaryRange   string `json:"salary_range,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
}

// Column names used by job listings.
var (
	EmployerJobColumns = []string{"id", "title", "location", "salary_range", "contact_number"}
	SeekerJobColumns   = []string{"id", "title", "description", "requirements", "location", "salary_range", "contact_number"}
)

func (j Job) Value(column string) string {
	switch column {
	case "id":
		return strconv.FormatInt(j.ID, 10)
	case "employer_id":
		return strconv.FormatInt(j.EmployerID, 10)
	case "title":
		return j.Title
	case "description":
		return j.Description
	case "requirements":
		return j.Requirements
	case "location":
		return j.Location
	case "salary_range":
		return j.SalaryRange
	case "contact_number":
		return j.ContactNumber
	default:
		return ""
	}
}
