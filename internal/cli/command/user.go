package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/t1amat9409/roomstore-go/internal/cli/connection"
	"github.com/t1amat9409/roomstore-go/internal/cli/output"
)

// userView matches the server's user projection.
type userView struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	MobileToken string `json:"mobile_token"`
}

// UserCommand returns the user subcommand group.
func UserCommand() *cli.Command {
	return &cli.Command{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "Manage users",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all users",
				Action: userList,
			},
			{
				Name:      "get",
				Usage:     "Get user details",
				ArgsUsage: "USERNAME",
				Action:    userGet,
			},
			{
				Name:  "add",
				Usage: "Register a new user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
					&cli.StringFlag{Name: "mobile-token", Usage: "Push notification token"},
				},
				Action: userAdd,
			},
			{
				Name:  "auth",
				Usage: "Authenticate and open a session",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
				},
				Action: userAuth,
			},
			{
				Name:  "edit",
				Usage: "Update a user's password and mobile token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
					&cli.StringFlag{Name: "mobile-token", Usage: "Push notification token"},
				},
				Action: userEdit,
			},
			{
				Name:  "delete",
				Usage: "Delete a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
				},
				Action: userDelete,
			},
		},
	}
}

func userTable(users ...userView) *output.Table {
	table := &output.Table{
		Headers: []string{"USERNAME", "ID", "MOBILE TOKEN"},
	}
	for _, u := range users {
		table.Rows = append(table.Rows, []string{u.Username, u.ID, u.MobileToken})
	}
	return table
}

func userList(c *cli.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Get(ctx, "/users")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var users []userView
	if err := connection.ParseResponse(resp, &users); err != nil {
		return err
	}

	return render(c, users, func() *output.Table { return userTable(users...) })
}

func userGet(c *cli.Context) error {
	username := c.Args().First()
	if username == "" {
		return fmt.Errorf("username required")
	}

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Get(ctx, "/users/"+username)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var user userView
	if err := connection.ParseResponse(resp, &user); err != nil {
		return err
	}

	return render(c, user, func() *output.Table { return userTable(user) })
}

func userAdd(c *cli.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Post(ctx, "/users/add", map[string]string{
		"username":     c.String("username"),
		"password":     c.String("password"),
		"mobile_token": c.String("mobile-token"),
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var user userView
	if err := connection.ParseResponse(resp, &user); err != nil {
		return err
	}

	fmt.Printf("user %s created (id %s)\n", user.Username, user.ID)
	return nil
}

func userAuth(c *cli.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Post(ctx, "/users/auth", map[string]string{
		"username": c.String("username"),
		"password": c.String("password"),
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var user userView
	if err := connection.ParseResponse(resp, &user); err != nil {
		return err
	}

	fmt.Printf("session opened for %s\n", user.Username)
	return nil
}

func userEdit(c *cli.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Post(ctx, "/users/edit", map[string]string{
		"username":     c.String("username"),
		"password":     c.String("password"),
		"mobile_token": c.String("mobile-token"),
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var user userView
	if err := connection.ParseResponse(resp, &user); err != nil {
		return err
	}

	fmt.Printf("user %s updated\n", user.Username)
	return nil
}

func userDelete(c *cli.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Post(ctx, "/users/delete", map[string]string{
		"username": c.String("username"),
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if err := connection.ParseResponse(resp, nil); err != nil {
		return err
	}

	fmt.Printf("user %s deleted\n", c.String("username"))
	return nil
}
