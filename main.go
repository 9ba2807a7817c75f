package main

import (
	"os"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("setlike"),
		kong.Description("Composite operations over Set-like operands read from YAML."),
		kong.UsageOnError(),
	)
	rt, err := cli.Globals.runtime(os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
	err = ctx.Run(rt)
	if err != nil {
		rt.log.WithError(err).Debug("command failed")
	}
	ctx.FatalIfErrorf(err)
}

// newEntry tags every line the command logs.
func newEntry(logger *log.Logger, module string) *log.Entry {
	return logger.WithFields(log.Fields{"module": module})
}
