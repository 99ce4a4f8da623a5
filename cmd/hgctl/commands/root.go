package commands

import (
	"context"

	"homegnome/version"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// NewApp creates the root CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "hgctl",
		Usage:   "HomeGnome CLI - post and browse household task listings",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Usage: "HomeGnome server URL",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if c.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			AuthCommand(),
			ProfileCommand(),
			ListingCommand(),
		},
	}
}
