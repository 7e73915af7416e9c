package cmd

import (
	"context"
	"fmt"

	"github.com/jimezsa/jobboard/internal/board"
	"github.com/jimezsa/jobboard/internal/session"
	"github.com/jimezsa/jobboard/internal/store"
)

// app bundles the opened store with the services bound to one session.
type app struct {
	store        *store.Store
	session      *session.Session
	accounts     *board.Accounts
	jobs         *board.Jobs
	applications *board.Applications
}

// openApp opens the database and ensures the schema. Table failures are
// reported and do not abort; only a failed open does.
func openApp(ctx context.Context, c *Context, reportTables bool) (*app, error) {
	st, err := store.Open(c.Database)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	for _, res := range st.EnsureSchema(ctx) {
		if res.Err != nil {
			c.UI.Errorf("SQL error (%s): %v", res.Table, res.Err)
			c.Logger.Debug().Err(res.Err).Str("table", res.Table).Msg("ensure table")
			continue
		}
		if reportTables {
			c.UI.Infof("Table '%s' ready.", res.Table)
		}
	}

	sess := &session.Session{}
	return &app{
		store:        st,
		session:      sess,
		accounts:     board.NewAccounts(st, sess, c.Logger),
		jobs:         board.NewJobs(st, sess, c.Logger),
		applications: board.NewApplications(st, sess, c.Logger),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
