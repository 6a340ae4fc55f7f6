package process

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/labyrinth/game/engine"
)

// writeFakeEngine creates a shell script that records its arguments, one
// invocation per line, and exits with the codes listed in exitCodes in turn
// (the last code repeats).
func writeFakeEngine(t *testing.T, exitCodes ...int) (enginePath, logPath string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engine is a shell script")
	}

	dir := t.TempDir()
	logPath = filepath.Join(dir, "calls.log")
	counter := filepath.Join(dir, "count")

	var codes []string
	for _, c := range exitCodes {
		codes = append(codes, strconv.Itoa(c))
	}
	if len(codes) == 0 {
		codes = []string{"0"}
	}

	script := `#!/bin/sh
echo "$@" >> "` + logPath + `"
n=$(cat "` + counter + `" 2>/dev/null || echo 0)
echo $((n + 1)) > "` + counter + `"
set -- ` + strings.Join(codes, " ") + `
i=0
code=0
for c in "$@"; do
  code=$c
  if [ $i -eq $n ]; then break; fi
  i=$((i + 1))
done
echo "engine output"
exit $code
`
	enginePath = filepath.Join(dir, DefaultEngineName)
	require.NoError(t, os.WriteFile(enginePath, []byte(script), 0755))
	return enginePath, logPath
}

func readCalls(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestQueryArgs(t *testing.T) {
	assert.Equal(t, []string{"-m", "maps/a.txt", "-p", "3"}, QueryArgs("maps/a.txt", 3))
}

func TestMoveArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"-m", "maps/a.txt", "-p", "0", "--move", "left", "--save"},
		MoveArgs("maps/a.txt", 0, engine.Left))
}

func TestDispatcher_Query(t *testing.T) {
	enginePath, logPath := writeFakeEngine(t, 0)
	var stdout bytes.Buffer
	d := &Dispatcher{Engine: enginePath, Stdout: &stdout, Stderr: &bytes.Buffer{}}

	code, err := d.Query(context.Background(), "map.txt", 4)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "engine output\n", stdout.String())
	assert.Equal(t, []string{"-m map.txt -p 4"}, readCalls(t, logPath))
}

func TestDispatcher_ForwardsExitCode(t *testing.T) {
	enginePath, _ := writeFakeEngine(t, 3)
	d := &Dispatcher{Engine: enginePath, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	code, err := d.Query(context.Background(), "map.txt", 4)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestDispatcher_MoveRunsOncePerStep(t *testing.T) {
	enginePath, logPath := writeFakeEngine(t, 0)
	d := &Dispatcher{Engine: enginePath, LogLevel: "debug", Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	code, err := d.Move(context.Background(), "map.txt", 2, engine.Down, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	call := "-m map.txt -p 2 --move down --save --log-level debug"
	assert.Equal(t, []string{call, call, call}, readCalls(t, logPath))
}

func TestDispatcher_MoveStopsAtFirstFailure(t *testing.T) {
	enginePath, logPath := writeFakeEngine(t, 0, 1, 0)
	d := &Dispatcher{Engine: enginePath, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	code, err := d.Move(context.Background(), "map.txt", 2, engine.Up, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Len(t, readCalls(t, logPath), 2)
}

func TestDispatcher_MissingEngine(t *testing.T) {
	missing := filepath.Join(t.TempDir(), DefaultEngineName)
	d := &Dispatcher{Engine: missing, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	code, err := d.Query(context.Background(), "map.txt", 1)
	assert.Equal(t, 1, code)
	require.ErrorIs(t, err, ErrEngineNotFound)
	assert.Equal(t, missing+" not found", err.Error())
}

func TestResolveEngine_Explicit(t *testing.T) {
	enginePath, _ := writeFakeEngine(t, 0)

	path, err := ResolveEngine(enginePath)
	require.NoError(t, err)
	assert.Equal(t, enginePath, path)
}

func TestResolveEngine_ExplicitBareName(t *testing.T) {
	enginePath, logPath := writeFakeEngine(t, 0)
	t.Chdir(filepath.Dir(enginePath))

	path, err := ResolveEngine(DefaultEngineName)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path), path)
	assert.Equal(t, DefaultEngineName, filepath.Base(path))

	d := &Dispatcher{Engine: path, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	code, err := d.Query(context.Background(), "map.txt", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"-m map.txt -p 1"}, readCalls(t, logPath))
}

func TestDispatcher_BareNameFromWorkingDir(t *testing.T) {
	enginePath, logPath := writeFakeEngine(t, 0)
	t.Chdir(filepath.Dir(enginePath))
	t.Setenv("PATH", ".")

	d := &Dispatcher{Engine: DefaultEngineName, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	code, err := d.Query(context.Background(), "map.txt", 1)
	assert.Equal(t, 1, code)
	require.ErrorIs(t, err, ErrEngineNotFound)
	assert.Equal(t, DefaultEngineName+" not found", err.Error())
	assert.Empty(t, readCalls(t, logPath))
}

func TestResolveEngine_ExplicitMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := ResolveEngine(missing)
	require.ErrorIs(t, err, ErrEngineNotFound)
	assert.Equal(t, missing+" not found", err.Error())
}

func TestResolveEngine_ExplicitNotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), DefaultEngineName)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0644))

	_, err := ResolveEngine(path)
	require.ErrorIs(t, err, ErrEnginePermission)
	assert.Equal(t, "permission denied for "+path, err.Error())
}

func TestResolveEngine_FromPath(t *testing.T) {
	enginePath, _ := writeFakeEngine(t, 0)
	t.Setenv("PATH", filepath.Dir(enginePath))

	path, err := ResolveEngine("")
	require.NoError(t, err)
	assert.Equal(t, enginePath, path)
}

func TestResolveEngine_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := ResolveEngine("")
	require.ErrorIs(t, err, ErrEngineNotFound)
}
