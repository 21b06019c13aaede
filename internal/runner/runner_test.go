package runner

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shConfig runs the temp file through sh, which keeps the tests free of
// a Python dependency while exercising the same spawn path.
func shConfig(t *testing.T) Config {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	return Config{Interpreter: "sh", Timeout: 10 * time.Second}
}

// drain collects every output chunk and the final exit event.
func drain(t *testing.T, r *Run) (string, Event) {
	t.Helper()
	var out []byte
	var exit Event
	for ev := range r.Events() {
		switch ev.Type {
		case EventOutput:
			out = append(out, ev.Chunk...)
		case EventExit:
			exit = ev
		}
	}
	return string(out), exit
}

func TestStart_StreamsOutputAndExitCode(t *testing.T) {
	r, err := Start(context.Background(), shConfig(t), "echo hi\n")
	require.NoError(t, err)

	out, exit := drain(t, r)
	r.Wait()

	assert.Equal(t, "hi\n", out)
	assert.Equal(t, EventExit, exit.Type)
	assert.Equal(t, 0, exit.ExitCode)
	assert.Contains(t, exit.Message, "exit code 0")
	assert.Equal(t, StatusCompleted, r.Status())
}

func TestStart_MergesStderrIntoStream(t *testing.T) {
	r, err := Start(context.Background(), shConfig(t), "echo out\necho err >&2\n")
	require.NoError(t, err)

	out, exit := drain(t, r)
	r.Wait()

	assert.Contains(t, out, "out\n")
	assert.Contains(t, out, "err\n")
	assert.Equal(t, 0, exit.ExitCode)
}

func TestStart_NonZeroExitIsFailed(t *testing.T) {
	r, err := Start(context.Background(), shConfig(t), "exit 3\n")
	require.NoError(t, err)

	_, exit := drain(t, r)
	r.Wait()

	assert.Equal(t, 3, exit.ExitCode)
	assert.Contains(t, exit.Message, "failed")
	assert.Equal(t, StatusFailed, r.Status())
	assert.Equal(t, 3, r.ExitCode())
}

func TestStart_MissingInterpreterIsLaunchError(t *testing.T) {
	cfg := Config{Interpreter: "slate-no-such-interpreter"}
	_, err := Start(context.Background(), cfg, "echo hi\n")

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "slate-no-such-interpreter", launchErr.Interpreter)
}

func TestStart_BadTempDirIsIOError(t *testing.T) {
	cfg := shConfig(t)
	cfg.TempDir = t.TempDir() + "/does/not/exist"
	_, err := Start(context.Background(), cfg, "echo hi\n")

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
}

func TestRun_Cancel(t *testing.T) {
	r, err := Start(context.Background(), shConfig(t), "sleep 30\n")
	require.NoError(t, err)
	require.True(t, r.IsRunning())

	r.Cancel()
	_, exit := drain(t, r)
	r.Wait()

	assert.Equal(t, StatusCancelled, r.Status())
	assert.Equal(t, "run cancelled", exit.Message)
}

func TestRun_Timeout(t *testing.T) {
	cfg := shConfig(t)
	cfg.Timeout = 100 * time.Millisecond
	r, err := Start(context.Background(), cfg, "sleep 30\n")
	require.NoError(t, err)

	drain(t, r)
	r.Wait()

	assert.Equal(t, StatusFailed, r.Status())
	select {
	case err := <-r.Errors():
		assert.ErrorIs(t, err, ErrTimeout)
	default:
		t.Fatal("expected timeout error on errors channel")
	}
}

func TestCheckSyntax(t *testing.T) {
	py, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not available")
	}
	cfg := Config{Interpreter: py}

	issue, err := CheckSyntax(context.Background(), cfg, "x = 1\n")
	require.NoError(t, err)
	assert.Nil(t, issue)

	issue, err = CheckSyntax(context.Background(), cfg, "def broken(:\n    pass\n")
	require.NoError(t, err)
	require.NotNil(t, issue)
	assert.Equal(t, 1, issue.Line)
	assert.NotEmpty(t, issue.Message)
}

func TestCheckSyntax_MissingInterpreter(t *testing.T) {
	cfg := Config{Interpreter: "slate-no-such-interpreter"}
	_, err := CheckSyntax(context.Background(), cfg, "x = 1\n")

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
}
