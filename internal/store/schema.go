package store

import "context"

const (
	TableUsers        = "users"
	TableJobs         = "jobs"
	TableApplications = "applications"
)

const usersDDL = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	email TEXT NOT NULL,
	user_type TEXT NOT NULL CHECK(user_type IN ('job_seeker', 'employer'))
);`

const jobsDDL = `
CREATE TABLE IF NOT EXISTS jobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	employer_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	requirements TEXT,
	location TEXT,
	salary_range TEXT,
	contact_number TEXT,
	FOREIGN KEY (employer_id) REFERENCES users(id)
);`

const applicationsDDL = `
CREATE TABLE IF NOT EXISTS applications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	job_id INTEGER NOT NULL,
	job_seeker_id INTEGER NOT NULL,
	status TEXT DEFAULT 'pending' CHECK(status IN ('pending', 'accepted', 'rejected')),
	application_date DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (job_id) REFERENCES jobs(id),
	FOREIGN KEY (job_seeker_id) REFERENCES users(id)
);`

// SchemaResult reports the outcome of ensuring one table.
type SchemaResult struct {
	Table string
	Err   error
}

type tableDDL struct {
	name string
	ddl  string
}

var schema = []tableDDL{
	{name: TableUsers, ddl: usersDDL},
	{name: TableJobs, ddl: jobsDDL},
	{name: TableApplications, ddl: applicationsDDL},
}

// EnsureSchema creates any missing tables in order. A failing table does not
// stop the ones after it.
func (s *Store) EnsureSchema(ctx context.Context) []SchemaResult {
	results := make([]SchemaResult, 0, len(schema))
	for _, table := range schema {
		_, err := s.DB.ExecContext(ctx, table.ddl)
		results = append(results, SchemaResult{Table: table.name, Err: err})
	}
	return results
}
