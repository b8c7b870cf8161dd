package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/t1amat9409/roomstore-go/internal/cli/connection"
	"github.com/t1amat9409/roomstore-go/internal/cli/output"
)

// roomView matches the server's room projection.
type roomView struct {
	Name         string     `json:"name"`
	GUID         string     `json:"guid"`
	Host         userView   `json:"host"`
	Participants []userView `json:"participants"`
	Limit        int        `json:"limit"`
}

// RoomCommand returns the room subcommand group.
func RoomCommand() *cli.Command {
	return &cli.Command{
		Name:    "room",
		Aliases: []string{"r"},
		Usage:   "Manage rooms",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all rooms",
				Action: roomList,
			},
			{
				Name:      "info",
				Usage:     "Show room details",
				ArgsUsage: "GUID",
				Action:    roomInfo,
			},
			{
				Name:      "search",
				Usage:     "List rooms a user belongs to",
				ArgsUsage: "USERNAME",
				Action:    roomSearch,
			},
			{
				Name:  "add",
				Usage: "Create a room (host must be logged in)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
					&cli.StringFlag{Name: "host", Required: true},
					&cli.StringSliceFlag{Name: "participant", Aliases: []string{"P"}, Usage: "Initial participant (repeatable)"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Member capacity (default 5)"},
				},
				Action: roomAdd,
			},
			{
				Name:  "edit",
				Usage: "Hand the room over to a new host",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "host", Required: true, Usage: "Acting host (must be logged in)"},
					&cli.StringFlag{Name: "new-host", Required: true},
					&cli.StringFlag{Name: "guid", Required: true},
				},
				Action: roomEdit,
			},
			{
				Name:  "join-leave",
				Usage: "Toggle a user's room membership",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "guid", Required: true},
				},
				Action: roomJoinLeave,
			},
		},
	}
}

func roomTable(rooms ...roomView) *output.Table {
	table := &output.Table{
		Headers: []string{"GUID", "NAME", "HOST", "MEMBERS", "LIMIT"},
	}
	for _, r := range rooms {
		table.Rows = append(table.Rows, []string{
			r.GUID,
			r.Name,
			r.Host.Username,
			fmt.Sprint(len(r.Participants)),
			fmt.Sprint(r.Limit),
		})
	}
	return table
}

func roomList(c *cli.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Get(ctx, "/rooms")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var rooms []roomView
	if err := connection.ParseResponse(resp, &rooms); err != nil {
		return err
	}

	return render(c, rooms, func() *output.Table { return roomTable(rooms...) })
}

func roomInfo(c *cli.Context) error {
	guid := c.Args().First()
	if guid == "" {
		return fmt.Errorf("room GUID required")
	}

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Get(ctx, "/rooms/"+guid)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var room roomView
	if err := connection.ParseResponse(resp, &room); err != nil {
		return err
	}

	return render(c, room, func() *output.Table { return roomTable(room) })
}

func roomSearch(c *cli.Context) error {
	username := c.Args().First()
	if username == "" {
		return fmt.Errorf("username required")
	}

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Post(ctx, "/rooms/search", map[string]string{
		"username": username,
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var rooms []roomView
	if err := connection.ParseResponse(resp, &rooms); err != nil {
		return err
	}

	return render(c, rooms, func() *output.Table { return roomTable(rooms...) })
}

func roomAdd(c *cli.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Post(ctx, "/rooms/add", map[string]any{
		"name":         c.String("name"),
		"host":         c.String("host"),
		"participants": c.StringSlice("participant"),
		"limit":        c.Int("limit"),
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var room roomView
	if err := connection.ParseResponse(resp, &room); err != nil {
		return err
	}

	fmt.Printf("room %s created (guid %s)\n", room.Name, room.GUID)
	return nil
}

func roomEdit(c *cli.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Post(ctx, "/rooms/edit", map[string]string{
		"host":     c.String("host"),
		"new_host": c.String("new-host"),
		"guid":     c.String("guid"),
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var room roomView
	if err := connection.ParseResponse(resp, &room); err != nil {
		return err
	}

	fmt.Printf("room %s now hosted by %s\n", room.GUID, room.Host.Username)
	return nil
}

func roomJoinLeave(c *cli.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client(c).Post(ctx, "/rooms/joinOrLeave", map[string]string{
		"username": c.String("username"),
		"guid":     c.String("guid"),
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Joined bool     `json:"joined"`
		Left   bool     `json:"left"`
		Room   roomView `json:"room"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	action := "left"
	if result.Joined {
		action = "joined"
	}
	fmt.Printf("%s %s room %s\n", c.String("username"), action, result.Room.GUID)
	return nil
}
