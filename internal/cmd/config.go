package cmd

import (
	"fmt"

	"github.com/jimezsa/jobboard/internal/config"
)

type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Write the default config file."`
	Path PathConfigCmd `cmd:"" help:"Print config directory and database path."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct{}

func (c *InitConfigCmd) Run(ctx *Context) error {
	path, created, err := config.Init()
	if err != nil {
		return err
	}
	if !created {
		ctx.UI.Infof("Config already initialized at %s", path)
		return nil
	}
	ctx.UI.Infof("Created: %s", path)
	return nil
}

func (c *PathConfigCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintf(ctx.Out, "config=%s database=%s\n", ctx.ConfigDir, ctx.Database)
	return err
}
