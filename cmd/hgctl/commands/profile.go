package commands

import (
	"context"
	"fmt"

	"homegnome/cmd/hgctl/client"

	"github.com/urfave/cli/v3"
)

// ProfileCommand returns the profile command with subcommands
func ProfileCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show or edit the current user",
		Commands: []*cli.Command{
			showProfileCommand(),
			updateProfileCommand(),
		},
	}
}

func showProfileCommand() *cli.Command {
	return &cli.Command{
		Name:   "show",
		Usage:  "Show the current user",
		Action: showProfileAction,
	}
}

func showProfileAction(ctx context.Context, c *cli.Command) error {
	_, httpClient, err := clientFor(c)
	if err != nil {
		return err
	}

	user, err := httpClient.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	return printJSON(user)
}

func updateProfileCommand() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update name and phone of the current user",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Display name", Required: true},
			&cli.StringFlag{Name: "phone", Usage: "Contact phone", Required: true},
		},
		Action: updateProfileAction,
	}
}

func updateProfileAction(ctx context.Context, c *cli.Command) error {
	_, httpClient, err := clientFor(c)
	if err != nil {
		return err
	}

	user, err := httpClient.UpdateProfile(&client.UpdateProfileRequest{
		Name:  c.String("name"),
		Phone: c.String("phone"),
	})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return printJSON(user)
}
