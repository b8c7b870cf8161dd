package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/t1amat9409/roomstore-go/internal/cli/connection"
	"github.com/t1amat9409/roomstore-go/internal/cli/output"
	"github.com/t1amat9409/roomstore-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "roomstore-cli",
		Usage:   "RoomStore command-line management tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			UserCommand(),
			RoomCommand(),
			StatusCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "RoomStore server address (e.g., localhost:3000)",
			EnvVars: []string{"ROOMSTORE_SERVER"},
			Value:   "localhost:3000",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json",
			Value:   "table",
		},
	}
}

// client builds an HTTP client from the global flags.
func client(c *cli.Context) *connection.HTTPClient {
	return connection.NewHTTPClient(c.String("server"))
}

// requestContext returns a context with the standard request timeout.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// render writes data in the format selected by the global output flag.
// The table function is only consulted for table output.
func render(c *cli.Context, data any, table func() *output.Table) error {
	if output.Format(c.String("output")) == output.FormatJSON {
		formatter := &output.JSONFormatter{}
		return formatter.Format(os.Stdout, data)
	}
	return table().Render(os.Stdout)
}

// StatusCommand returns the status subcommand.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show server health",
		Action: func(c *cli.Context) error {
			ctx, cancel := requestContext()
			defer cancel()

			resp, err := client(c).Get(ctx, "/health")
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}

			var health struct {
				Status   string `json:"status"`
				Time     string `json:"time"`
				Users    int    `json:"users"`
				Rooms    int    `json:"rooms"`
				Sessions int    `json:"sessions"`
			}
			if err := connection.ParseResponse(resp, &health); err != nil {
				return err
			}

			return render(c, health, func() *output.Table {
				return &output.Table{
					Headers: []string{"STATUS", "USERS", "ROOMS", "SESSIONS"},
					Rows: [][]string{{
						health.Status,
						fmt.Sprint(health.Users),
						fmt.Sprint(health.Rooms),
						fmt.Sprint(health.Sessions),
					}},
				}
			})
		},
	}
}
