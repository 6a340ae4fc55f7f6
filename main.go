// Command labyrinth is the front-end of the labyrinth game.
//
// It validates its flags and then runs the labyrinth-engine binary, which
// owns the map logic, as a subprocess:
//
//	labyrinth -m maps/small.txt -p 3             # print the map
//	labyrinth -m maps/small.txt -p 3 -d right    # move player 3 one cell
//	labyrinth -m maps/small.txt -p 3 -d UP -s 4  # up to four cells
//	labyrinth --version
//
// A move with --step N runs the engine N times, saving after each step and
// stopping at the first blocked step. The exit code is the engine's.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/labyrinth/game/config"
	"github.com/wricardo/labyrinth/game/engine"
	"github.com/wricardo/labyrinth/transport/process"
)

// request is a validated front-end invocation
type request struct {
	mapPath   string
	player    int
	direction engine.Direction
	steps     int
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the front-end and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	settings := config.FromEnv()
	code := 0

	cmd := &cli.Command{
		Name:        "labyrinth",
		Usage:       "Welcome to the labyrinth game!",
		HideVersion: true,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "map", Aliases: []string{"m"}, Usage: "map file path"},
			&cli.IntFlag{Name: "player", Aliases: []string{"p"}, Usage: "player ID (0 to 9)"},
			&cli.StringFlag{Name: "direction", Aliases: []string{"d"}, Usage: "move direction (up, down, left, right)"},
			&cli.IntFlag{Name: "step", Aliases: []string{"s"}, Usage: "number of steps to move"},
			&cli.BoolFlag{Name: "version", Usage: "show version and exit"},
			&cli.StringFlag{Name: "log-level", Value: settings.LogLevel, Usage: "log level (debug, info, warn, error)"},
			&cli.StringFlag{Name: "engine", Value: settings.EnginePath, Usage: "path to the engine binary", Hidden: true},
		},
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return err
		},
		ExitErrHandler: func(ctx context.Context, cmd *cli.Command, err error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				if cmd.IsSet("map") || cmd.IsSet("player") || cmd.IsSet("direction") || cmd.IsSet("step") {
					return errors.New("--version cannot be combined with other options")
				}
				fmt.Fprintln(stdout, config.VersionString())
				return nil
			}

			req, err := parseRequest(cmd)
			if err != nil {
				return err
			}

			log, err := config.NewLogger(cmd.String("log-level"), stderr)
			if err != nil {
				return err
			}

			enginePath, err := process.ResolveEngine(cmd.String("engine"))
			if err != nil {
				return err
			}

			d := &process.Dispatcher{
				Engine:   enginePath,
				LogLevel: cmd.String("log-level"),
				Stdin:    stdin,
				Stdout:   stdout,
				Stderr:   stderr,
				Log:      log,
			}
			if req.direction == "" {
				code, err = d.Query(ctx, req.mapPath, req.player)
			} else {
				code, err = d.Move(ctx, req.mapPath, req.player, req.direction, req.steps)
			}
			return err
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return code
}

// parseRequest checks flag values and normalizes them for the engine
func parseRequest(cmd *cli.Command) (request, error) {
	if cmd.Args().Len() > 0 {
		return request{}, fmt.Errorf("unexpected argument %q", cmd.Args().First())
	}
	if cmd.String("map") == "" || !cmd.IsSet("player") {
		return request{}, errors.New("map file and player ID are required")
	}

	req := request{
		mapPath: cmd.String("map"),
		player:  cmd.Int("player"),
	}
	if req.player < engine.MinPlayer || req.player > engine.MaxPlayer {
		return request{}, fmt.Errorf("%w, got %d", engine.ErrInvalidPlayer, req.player)
	}

	if !cmd.IsSet("direction") {
		if cmd.IsSet("step") {
			return request{}, errors.New("--step requires --direction")
		}
		return req, nil
	}

	dir, err := engine.ParseDirection(strings.ToLower(cmd.String("direction")))
	if err != nil {
		return request{}, err
	}
	req.direction = dir

	req.steps = 1
	if cmd.IsSet("step") {
		req.steps = cmd.Int("step")
		if req.steps < 1 {
			return request{}, fmt.Errorf("step must be a positive integer, got %d", req.steps)
		}
	}
	return req, nil
}
