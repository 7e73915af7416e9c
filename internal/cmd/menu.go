package cmd

import (
	"context"

	"github.com/jimezsa/jobboard/internal/menu"
)

type MenuCmd struct{}

func (m *MenuCmd) Run(ctx *Context) error {
	runCtx := context.Background()
	a, err := openApp(runCtx, ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx.Logger.Debug().Str("database", ctx.Database).Msg("menu started")
	controller := &menu.Controller{
		UI:           ctx.UI,
		Session:      a.session,
		Accounts:     a.accounts,
		Jobs:         a.jobs,
		Applications: a.applications,
		Logger:       ctx.Logger,
	}
	return controller.Run(runCtx)
}
