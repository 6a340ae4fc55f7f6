// Command validate checks labyrinth map files. For each file it checks:
//   - The file can be read and has at least one non-blank row
//   - All rows have the same length and the map is at most 100x100
//   - Only '#', '.' and the digits 0-9 are used
//   - No player digit appears more than once
//   - Connectivity: every non-wall cell is reachable from every other
//
// Arguments are file paths or bare map names looked up in the maps directory
// (LABYRINTH_MAPS_DIR, default "maps"). With no arguments every *.txt file
// in that directory is validated.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/labyrinth/game/config"
	"github.com/wricardo/labyrinth/game/engine"
)

var (
	errInvalidChar     = errors.New("invalid character")
	errDuplicatePlayer = errors.New("duplicate player")
	errNotConnected    = errors.New("connectivity failure")
)

// ValidationResult captures the outcome of validating a single file.
// Errors lists the problems found; Info holds summary lines for valid maps.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []error
	Info   []string
}

// loadGrid reads a map file. Errors do not repeat the path, which the
// report already prints.
func loadGrid(filePath string) (engine.Grid, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file: %w", errors.Unwrap(err))
	}
	defer f.Close()

	return engine.Parse(f)
}

// validateMap loads and validates a single map file
func validateMap(filePath string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(filePath),
		Valid: true,
	}

	grid, err := loadGrid(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err)
		return result
	}

	// Validate characters and count players
	playerCounts := make(map[byte]int)
	for i, row := range grid {
		for j, cell := range row {
			switch {
			case cell == engine.Wall, cell == engine.Floor:
			case engine.IsPlayer(cell):
				playerCounts[cell]++
			default:
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Errorf("%w '%c' at position [%d,%d]", errInvalidChar, cell, i+1, j+1))
			}
		}
	}
	for _, id := range engine.PlayersPresent(grid) {
		if n := playerCounts[byte('0'+id)]; n > 1 {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Errorf("%w: player %d appears %d times", errDuplicatePlayer, id, n))
		}
	}

	// Connectivity validation
	if !engine.IsConnected(grid) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("%w: %d separate regions", errNotConnected, engine.Components(grid)))
	}

	if result.Valid {
		result.Info = append(result.Info, fmt.Sprintf("✓ Grid: %dx%d", grid.Rows(), grid.Cols()))
		result.Info = append(result.Info, fmt.Sprintf("✓ Floor cells: %d", engine.CountCells(grid, engine.Floor)))
		result.Info = append(result.Info, fmt.Sprintf("✓ Wall cells: %d", engine.CountCells(grid, engine.Wall)))
		result.Info = append(result.Info, fmt.Sprintf("✓ Players: %v", engine.PlayersPresent(grid)))
		result.Info = append(result.Info, "✓ Connectivity: all open cells reachable")
	}

	return result
}

// mapFiles returns the files named on the command line, or every map in
// the maps directory when none are given. A bare name that is not a file in
// the working directory is looked up in the maps directory.
func mapFiles(args []string, mapsDir string) ([]string, error) {
	if len(args) > 0 {
		var manager *config.Manager
		files := make([]string, 0, len(args))
		for _, arg := range args {
			if _, err := os.Stat(arg); err == nil || filepath.Base(arg) != arg {
				files = append(files, arg)
				continue
			}
			if manager == nil {
				m, err := config.NewManager(mapsDir)
				if err != nil {
					return nil, err
				}
				manager = m
			}
			path, err := manager.Path(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, path)
		}
		return files, nil
	}

	manager, err := config.NewManager(mapsDir)
	if err != nil {
		return nil, err
	}
	maps, err := manager.ListMaps()
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(maps))
	for _, m := range maps {
		files = append(files, m.Path)
	}
	return files, nil
}

// report prints the results and returns whether every file was valid
func report(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Info {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Fprintln(w, "  ❌ "+err.Error())
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All maps are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some maps have errors")
	}
	return allValid
}

var errInvalidMaps = errors.New("some maps are invalid")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	settings := config.FromEnv()

	cmd := &cli.Command{
		Name:      "validate",
		Usage:     "check labyrinth map files",
		ArgsUsage: "[map files...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "maps-dir", Value: settings.MapsDir, Usage: "directory searched when no files are given"},
		},
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return err
		},
		ExitErrHandler: func(ctx context.Context, cmd *cli.Command, err error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files, err := mapFiles(cmd.Args().Slice(), cmd.String("maps-dir"))
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no map files found in %s", cmd.String("maps-dir"))
			}

			results := make([]ValidationResult, 0, len(files))
			for _, file := range files {
				results = append(results, validateMap(file))
			}
			if !report(stdout, results) {
				return errInvalidMaps
			}
			return nil
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		if !errors.Is(err, errInvalidMaps) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// main validates the given map files (or the maps directory), printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}
