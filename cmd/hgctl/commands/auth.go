package commands

import (
	"context"
	"fmt"

	"homegnome/cmd/hgctl/client"
	"homegnome/cmd/hgctl/config"
	"homegnome/cmd/hgctl/output"

	"github.com/urfave/cli/v3"
)

// AuthCommand returns the auth command with subcommands
func AuthCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the local identity",
		Commands: []*cli.Command{
			registerCommand(),
			loginCommand(),
			logoutCommand(),
		},
	}
}

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new identity (replaces any existing one)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Display name", Required: true},
			&cli.StringFlag{Name: "phone", Usage: "Contact phone", Required: true},
			&cli.StringFlag{Name: "password", Usage: "Password", Required: true},
		},
		Action: registerAction,
	}
}

func registerAction(ctx context.Context, c *cli.Command) error {
	cfg, httpClient, err := clientFor(c)
	if err != nil {
		return err
	}

	user, err := httpClient.Register(&client.RegisterRequest{
		Name:     c.String("name"),
		Phone:    c.String("phone"),
		Password: c.String("password"),
	})
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}

	if err := saveToken(cfg, user.Token); err != nil {
		return err
	}

	return printJSON(user)
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in with stored credentials",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "phone", Usage: "Contact phone", Required: true},
			&cli.StringFlag{Name: "password", Usage: "Password", Required: true},
		},
		Action: loginAction,
	}
}

func loginAction(ctx context.Context, c *cli.Command) error {
	cfg, httpClient, err := clientFor(c)
	if err != nil {
		return err
	}

	user, err := httpClient.Login(&client.LoginRequest{
		Phone:    c.String("phone"),
		Password: c.String("password"),
	})
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}

	if err := saveToken(cfg, user.Token); err != nil {
		return err
	}

	return printJSON(user)
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Log out and forget the saved session",
		Action: logoutAction,
	}
}

func logoutAction(ctx context.Context, c *cli.Command) error {
	cfg, httpClient, err := clientFor(c)
	if err != nil {
		return err
	}

	if err := httpClient.Logout(); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}

	return saveToken(cfg, "")
}

// clientFor builds an API client from the saved config plus the --server
// override.
func clientFor(c *cli.Command) (*config.Config, *client.HTTPClient, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	serverURL := cfg.GetServerURL()
	if c.IsSet("server") {
		serverURL = c.String("server")
	}

	return cfg, client.NewHTTPClient(serverURL, cfg.SessionToken), nil
}

func saveToken(cfg *config.Config, token string) error {
	cfg.SessionToken = token
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func printJSON(data any) error {
	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(data)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(jsonOutput)
	return nil
}
