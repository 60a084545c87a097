package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func requireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()
	requireShell(t)

	dir := t.TempDir()

	r := New(
		WithLog{Log: testr.New(t)},
		WithDir(dir),
		WithEnvironment{"NACE_GREETING": "hello"},
	)

	require.NoError(t, r.Run(context.Background(), "sh", "-c", `echo "$NACE_GREETING" > greeting.txt`))

	b, err := os.ReadFile(filepath.Join(dir, "greeting.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(b))
}

func TestRunner_RunFailure(t *testing.T) {
	t.Parallel()
	requireShell(t)

	r := New()

	err := r.Run(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `sh -c "exit 3"`)
}

func TestRunner_Wrap(t *testing.T) {
	t.Parallel()
	requireShell(t)

	r := New()

	runErr := exec.Command("sh", "-c", "exit 3").Run()
	err := r.wrap(fmt.Errorf("running sh: %w", runErr), "sh", []string{"-c", "exit 3"})

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, `sh -c "exit 3"`, exitErr.Cmd)
	assert.ErrorIs(t, err, runErr)

	err = r.wrap(os.ErrPermission, "twine", []string{"upload"})
	require.False(t, errors.As(err, &exitErr))
	require.ErrorIs(t, err, os.ErrPermission)
	assert.EqualError(t, err, "running twine upload: permission denied")

	require.NoError(t, r.wrap(nil, "true", nil))
}

func TestRunner_Output(t *testing.T) {
	t.Parallel()
	requireShell(t)

	r := New(WithDir(t.TempDir()))

	out, err := r.Output(context.Background(), "sh", "-c", `printf '{"ok": true}'`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(out))
}

func TestRunner_LookPath(t *testing.T) {
	t.Parallel()

	r := New()

	_, err := r.LookPath("nace-publish-definitely-missing-tool")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRunner_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New()

	require.ErrorIs(t, r.Run(ctx, "sh", "-c", "sleep 5"), context.Canceled)

	_, err := r.Output(ctx, "sh", "-c", "sleep 5")
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.Option(WithEnvironment{"A": "1"}, WithEnvironment{"B": "2"}, WithDir("/src"))

	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, cfg.Env)
	assert.Equal(t, "/src", cfg.Dir)
}
