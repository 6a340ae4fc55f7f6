// Command labyrinth-engine owns the labyrinth map logic.
//
// Each invocation loads the map, checks that it is rectangular, at most
// 100x100 and connected, then either prints it (query) or moves the player
// one cell:
//
//	labyrinth-engine -m maps/small.txt -p 3
//	labyrinth-engine -m maps/small.txt -p 3 --move right --save
//
// Exit status is 0 on success and 1 on any error or blocked move.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/labyrinth/game/config"
	"github.com/wricardo/labyrinth/game/engine"
	"github.com/wricardo/labyrinth/game/service"
	"github.com/wricardo/labyrinth/game/storage"
)

// errMoveBlocked marks a move that could not be made. It sets the exit
// status without printing a diagnostic.
var errMoveBlocked = errors.New("move blocked")

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run executes the engine and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	settings := config.FromEnv()

	cmd := &cli.Command{
		Name:        "labyrinth-engine",
		Usage:       "Labyrinth game engine",
		HideVersion: true,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "map", Aliases: []string{"m"}, Usage: "map file path"},
			&cli.IntFlag{Name: "player", Aliases: []string{"p"}, Usage: "player ID (0-9)"},
			&cli.StringFlag{Name: "move", Usage: "move direction (up, down, left, right)"},
			&cli.BoolFlag{Name: "save", Aliases: []string{"s"}, Usage: "save the updated map back to file after move"},
			&cli.BoolFlag{Name: "version", Aliases: []string{"v"}, Usage: "show version"},
			&cli.StringFlag{Name: "log-level", Value: settings.LogLevel, Usage: "log level (debug, info, warn, error)"},
		},
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return err
		},
		ExitErrHandler: func(ctx context.Context, cmd *cli.Command, err error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				if cmd.IsSet("map") || cmd.IsSet("player") || cmd.IsSet("move") {
					return errors.New("--version cannot be combined with other options")
				}
				fmt.Fprintln(stdout, config.VersionString())
				return nil
			}

			if cmd.Args().Len() > 0 {
				return fmt.Errorf("unexpected argument %q", cmd.Args().First())
			}
			if cmd.String("map") == "" || !cmd.IsSet("player") {
				return errors.New("map file and player ID are required")
			}
			player := cmd.Int("player")
			if _, err := engine.PlayerMarker(player); err != nil {
				return err
			}

			log, err := config.NewLogger(cmd.String("log-level"), stderr)
			if err != nil {
				return err
			}
			gameService := service.NewGameService(storage.NewFilePersistence(), log)

			if !cmd.IsSet("move") {
				result, err := gameService.Query(ctx, service.QueryRequest{
					MapPath: cmd.String("map"),
					Player:  player,
				})
				if err != nil {
					return err
				}
				return engine.Write(stdout, result.Grid)
			}

			dir, err := engine.ParseDirection(cmd.String("move"))
			if err != nil {
				return err
			}
			result, err := gameService.Move(ctx, service.MoveRequest{
				MapPath:   cmd.String("map"),
				Player:    player,
				Direction: dir,
				Save:      cmd.Bool("save"),
			})
			if err != nil {
				return err
			}
			if !result.Success {
				return errMoveBlocked
			}
			return nil
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		if !errors.Is(err, errMoveBlocked) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
