package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	DB      string `name:"db" help:"Path to the board database file." env:"JOBBOARD_DB"`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Menu    MenuCmd    `cmd:"" default:"1" help:"Run the interactive job board menu."`
	Jobs    JobsCmd    `cmd:"" help:"Export job listings."`
	Import  ImportCmd  `cmd:"" help:"Import JobPosting entries from an HTML file or URL."`
	Version VersionCmd `cmd:"" help:"Print version."`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration."`
}

func NewCLI() *CLI {
	return &CLI{}
}
