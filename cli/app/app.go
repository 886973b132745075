// Package app provides the frontier command-line application.
package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nspcc-dev/frontier/cli/tree"
	"github.com/urfave/cli"
)

// Version is the version of the tool, set at build time.
var Version string

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "frontier\nVersion: %s\nGoVersion: %s\n",
		Version,
		runtime.Version(),
	)
}

// New creates a frontier instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "frontier"
	ctl.Version = Version
	ctl.Usage = "append-only authenticated quad-tree accumulator"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, tree.NewCommands()...)
	return ctl
}
