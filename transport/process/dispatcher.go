package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/wricardo/labyrinth/game/engine"
)

// DefaultEngineName is the file name of the engine binary
const DefaultEngineName = "labyrinth-engine"

var (
	ErrEngineNotFound   = errors.New("engine not found")
	ErrEnginePermission = errors.New("engine permission denied")
)

// EngineError reports a problem locating or starting the engine binary
type EngineError struct {
	Path string
	Err  error
}

func (e *EngineError) Error() string {
	if errors.Is(e.Err, ErrEnginePermission) {
		return fmt.Sprintf("permission denied for %s", e.Path)
	}
	return fmt.Sprintf("%s not found", e.Path)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// ResolveEngine finds the engine binary. An explicit path is used as is,
// except that a bare file name is taken relative to the working directory;
// otherwise the engine next to the running executable is preferred over
// one found on $PATH.
func ResolveEngine(explicit string) (string, error) {
	if explicit != "" {
		// exec will not run a bare name from the working directory
		if filepath.Base(explicit) == explicit {
			if abs, err := filepath.Abs(explicit); err == nil {
				explicit = abs
			}
		}
		return explicit, checkExecutable(explicit)
	}

	if self, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(self), DefaultEngineName)
		if checkExecutable(sibling) == nil {
			return sibling, nil
		}
	}

	path, err := exec.LookPath(DefaultEngineName)
	if err != nil {
		return DefaultEngineName, &EngineError{Path: DefaultEngineName, Err: ErrEngineNotFound}
	}
	return path, nil
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return &EngineError{Path: path, Err: ErrEnginePermission}
		}
		return &EngineError{Path: path, Err: ErrEngineNotFound}
	}
	if info.IsDir() || info.Mode().Perm()&0111 == 0 {
		return &EngineError{Path: path, Err: ErrEnginePermission}
	}
	return nil
}

// Dispatcher runs the engine binary as a subprocess, forwarding stdio and
// returning its exit code
type Dispatcher struct {
	Engine   string
	LogLevel string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Log      logrus.FieldLogger
}

// Query asks the engine to print the map for player
func (d *Dispatcher) Query(ctx context.Context, mapPath string, player int) (int, error) {
	return d.Run(ctx, QueryArgs(mapPath, player))
}

// Move runs the engine once per step, saving after each. It stops at the
// first non-zero exit code and returns it.
func (d *Dispatcher) Move(ctx context.Context, mapPath string, player int, dir engine.Direction, steps int) (int, error) {
	args := MoveArgs(mapPath, player, dir)
	for i := 1; i <= steps; i++ {
		code, err := d.Run(ctx, args)
		if err != nil {
			return 1, err
		}
		if code != 0 {
			d.logger().WithFields(logrus.Fields{"step": i, "steps": steps, "code": code}).Debug("engine stopped moving")
			return code, nil
		}
	}
	return 0, nil
}

// Run starts the engine with args and waits for it to exit
func (d *Dispatcher) Run(ctx context.Context, args []string) (int, error) {
	if d.LogLevel != "" {
		args = append(args[:len(args):len(args)], "--log-level", d.LogLevel)
	}

	cmd := exec.CommandContext(ctx, d.Engine, args...)
	cmd.Stdin = d.Stdin
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr

	d.logger().WithField("engine", d.Engine).Debugf("running engine %v", args)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// killed by a signal
			code = 1
		}
		return code, nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return 1, &EngineError{Path: d.Engine, Err: ErrEnginePermission}
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, exec.ErrNotFound) || errors.Is(err, exec.ErrDot) {
		return 1, &EngineError{Path: d.Engine, Err: ErrEngineNotFound}
	}
	return 1, fmt.Errorf("failed to run engine: %w", err)
}

func (d *Dispatcher) logger() logrus.FieldLogger {
	if d.Log == nil {
		log := logrus.New()
		log.SetOutput(io.Discard)
		return log
	}
	return d.Log
}

// QueryArgs returns the engine arguments for a map query
func QueryArgs(mapPath string, player int) []string {
	return []string{"-m", mapPath, "-p", strconv.Itoa(player)}
}

// MoveArgs returns the engine arguments for a single saved step
func MoveArgs(mapPath string, player int, dir engine.Direction) []string {
	return append(QueryArgs(mapPath, player), "--move", string(dir), "--save")
}
