package cmd

import (
	"io"

	"github.com/jimezsa/jobboard/internal/config"
	"github.com/jimezsa/jobboard/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	In        io.Reader
	Out       io.Writer
	Err       io.Writer
	UI        *ui.UI
	Config    config.Config
	ConfigDir string
	Database  string
	Logger    zerolog.Logger
	Verbose   bool
	Version   string
	ColorMode ui.ColorMode
}
