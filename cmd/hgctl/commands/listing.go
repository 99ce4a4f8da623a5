package commands

import (
	"context"
	"fmt"

	"homegnome/cmd/hgctl/client"

	"github.com/urfave/cli/v3"
)

// ListingCommand returns the listing command with subcommands
func ListingCommand() *cli.Command {
	return &cli.Command{
		Name:  "listing",
		Usage: "Post, browse, and complete listings",
		Commands: []*cli.Command{
			createListingCommand(),
			listListingCommand(),
			getListingCommand(),
			completeListingCommand(),
		},
	}
}

func createListingCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Post a new listing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "role",
				Usage: "Listing role: customer (wants work done) or performer (offers work)",
				Value: "customer",
			},
			&cli.StringFlag{Name: "title", Usage: "Listing title", Required: true},
			&cli.StringFlag{Name: "description", Usage: "Free-text description"},
			&cli.StringFlag{Name: "price", Usage: "Price text, currency suffix allowed", Required: true},
			&cli.StringFlag{Name: "contact-phone", Usage: "Optional contact phone"},
		},
		Action: createListingAction,
	}
}

func createListingAction(ctx context.Context, c *cli.Command) error {
	_, httpClient, err := clientFor(c)
	if err != nil {
		return err
	}

	l, err := httpClient.CreateListing(&client.CreateListingRequest{
		Role:         c.String("role"),
		Title:        c.String("title"),
		Description:  c.String("description"),
		Price:        c.String("price"),
		ContactPhone: c.String("contact-phone"),
	})
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	return printJSON(l)
}

func listListingCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List listings",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "role", Usage: "Filter by role (customer or performer)"},
			&cli.StringFlag{Name: "min-price", Usage: "Minimum numeric price"},
			&cli.StringFlag{Name: "max-price", Usage: "Maximum numeric price"},
		},
		Action: listListingAction,
	}
}

func listListingAction(ctx context.Context, c *cli.Command) error {
	_, httpClient, err := clientFor(c)
	if err != nil {
		return err
	}

	filters := &client.ListListingsRequest{}
	if c.IsSet("role") {
		filters.Role = c.String("role")
	}
	if c.IsSet("min-price") {
		filters.MinPrice = c.String("min-price")
	}
	if c.IsSet("max-price") {
		filters.MaxPrice = c.String("max-price")
	}

	listings, err := httpClient.ListListings(filters)
	if err != nil {
		return fmt.Errorf("failed to list listings: %w", err)
	}

	return printJSON(listings)
}

func getListingCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Get listing details",
		ArgsUsage: "<listing-id>",
		Action:    getListingAction,
	}
}

func getListingAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("listing ID is required")
	}

	_, httpClient, err := clientFor(c)
	if err != nil {
		return err
	}

	l, err := httpClient.GetListing(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("failed to get listing: %w", err)
	}

	return printJSON(l)
}

func completeListingCommand() *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Usage:     "Mark your own listing as completed",
		ArgsUsage: "<listing-id>",
		Action:    completeListingAction,
	}
}

func completeListingAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("listing ID is required")
	}

	_, httpClient, err := clientFor(c)
	if err != nil {
		return err
	}

	l, err := httpClient.CompleteListing(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("failed to complete listing: %w", err)
	}

	return printJSON(l)
}
