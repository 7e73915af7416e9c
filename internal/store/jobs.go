package store

import (
	"context"
	"database/sql"
	"iter"

	"github.com/jimezsa/jobboard/internal/models"
)

// NULL text columns, which only other clients can write, read as "".
const jobColumns = `id, employer_id, title, COALESCE(description, ''), COALESCE(requirements, ''),
	COALESCE(location, ''), COALESCE(salary_range, ''), COALESCE(contact_number, '')`

// CreateJob inserts a job for employerID and returns the new id.
func (s *Store) CreateJob(ctx context.Context, employerID int64, draft models.JobDraft) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO jobs (employer_id, title, description, requirements, location, salary_range, contact_number)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		employerID,
		draft.Title,
		draft.Description,
		draft.Requirements,
		draft.Location,
		draft.SalaryRange,
		draft.ContactNumber,
	)
	if err != nil {
		return 0, classify(err)
	}
	return res.LastInsertId()
}

// JobsByEmployer yields the jobs posted by employerID in id order.
func (s *Store) JobsByEmployer(ctx context.Context, employerID int64) iter.Seq2[models.Job, error] {
	return s.queryJobs(ctx, `SELECT `+jobColumns+` FROM jobs WHERE employer_id = ? ORDER BY id`, employerID)
}

// AllJobs yields every job in id order. The store has a single connection,
// so callers must not query the store while iterating.
func (s *Store) AllJobs(ctx context.Context) iter.Seq2[models.Job, error] {
	return s.queryJobs(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
}

func (s *Store) queryJobs(ctx context.Context, query string, args ...any) iter.Seq2[models.Job, error] {
	return func(yield func(models.Job, error) bool) {
		rows, err := s.DB.QueryContext(ctx, query, args...)
		if err != nil {
			yield(models.Job{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			job, err := scanJob(rows)
			if err != nil {
				yield(models.Job{}, err)
				return
			}
			if !yield(job, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(models.Job{}, err)
		}
	}
}

func scanJob(rows *sql.Rows) (models.Job, error) {
	var job models.Job
	err := rows.Scan(
		&job.ID,
		&job.EmployerID,
		&job.Title,
		&job.Description,
		&job.Requirements,
		&job.Location,
		&job.SalaryRange,
		&job.ContactNumber,
	)
	return job, err
}
