package store

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/jimezsa/jobboard/internal/models"
)

// CountApplications returns how many applications seekerID has for jobID.
func (s *Store) CountApplications(ctx context.Context, jobID, seekerID int64) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM applications WHERE job_id = ? AND job_seeker_id = ?`,
		jobID, seekerID,
	).Scan(&count)
	return count, err
}

// CreateApplicationOnce inserts an application unless seekerID already
// applied for jobID, in which case it returns ErrDuplicate. Status and date
// take the column defaults.
func (s *Store) CreateApplicationOnce(ctx context.Context, jobID, seekerID int64) (int64, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM applications WHERE job_id = ? AND job_seeker_id = ?`,
		jobID, seekerID,
	).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, ErrDuplicate
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO applications (job_id, job_seeker_id) VALUES (?, ?)`,
		jobID, seekerID,
	)
	if err != nil {
		return 0, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	committed = true
	return id, tx.Commit()
}

// ApplicationsBySeeker yields seekerID's applications in id order.
func (s *Store) ApplicationsBySeeker(ctx context.Context, seekerID int64) iter.Seq2[models.Application, error] {
	return func(yield func(models.Application, error) bool) {
		// CAST keeps the driver from converting the DATETIME column itself.
		rows, err := s.DB.QueryContext(ctx, `
			SELECT id, job_id, job_seeker_id, COALESCE(status, ''), COALESCE(CAST(application_date AS TEXT), '')
			FROM applications WHERE job_seeker_id = ? ORDER BY id`,
			seekerID,
		)
		if err != nil {
			yield(models.Application{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var (
				app     models.Application
				status  string
				applied string
			)
			if err := rows.Scan(&app.ID, &app.JobID, &app.JobSeekerID, &status, &applied); err != nil {
				yield(models.Application{}, err)
				return
			}
			app.Status = models.Status(status)
			if applied != "" {
				ts, err := time.Parse(models.TimestampLayout, applied)
				if err != nil {
					yield(models.Application{}, fmt.Errorf("parse application_date %q: %w", applied, err))
					return
				}
				app.AppliedAt = ts
			}
			if !yield(app, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(models.Application{}, err)
		}
	}
}
