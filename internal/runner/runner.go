// Package runner executes buffer contents with an external interpreter
// and streams the merged output back to the caller.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"slate/internal/log"
)

const logCat = log.CatRunner

// readBufSize is the chunk size for draining the merged output pipe.
const readBufSize = 4096

// Status describes the lifecycle of a run.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// EventType discriminates run events.
type EventType string

const (
	// EventOutput carries a chunk of merged stdout+stderr bytes.
	EventOutput EventType = "output"
	// EventExit is the final event; it carries the exit code and a
	// human-readable completion message. The events channel closes
	// after it is delivered.
	EventExit EventType = "exit"
)

// Event is one notification from a running process. Output chunks are
// arbitrary-sized and arrive in child write order; no line buffering is
// guaranteed.
type Event struct {
	Type      EventType
	Chunk     []byte
	ExitCode  int
	Message   string
	Timestamp time.Time
}

// Config holds what is needed to spawn one run.
type Config struct {
	Interpreter string        // executable, e.g. "python3"
	WorkDir     string        // child working directory; empty means inherit
	TempDir     string        // where source temp files go; empty means os default
	Timeout     time.Duration // zero means no timeout
}

// LaunchError reports an interpreter that could not be started. It is
// returned synchronously from Start, never as a stream event.
type LaunchError struct {
	Interpreter string
	Err         error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch interpreter %q: %v", e.Interpreter, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// IOError reports a temp file that could not be created or written
// before the spawn was attempted.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot write run file %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ErrTimeout is delivered on the errors channel when a run exceeds its
// configured timeout.
var ErrTimeout = fmt.Errorf("run timed out")

// Run is one spawned interpreter process. Output delivery and
// completion are asynchronous; Start never blocks on the child.
type Run struct {
	cmd      *exec.Cmd
	tmpPath  string
	events   chan Event
	errors   chan error
	status   Status
	started  time.Time
	exitCode int
	cancel   context.CancelFunc
	ctx      context.Context
	mu       sync.RWMutex
	readerWg sync.WaitGroup
	wg       sync.WaitGroup
}

// Start serializes sourceText to a fresh temp file and spawns the
// interpreter on it with stdout and stderr merged into one stream.
// Temp file creation failure returns an *IOError; a spawn failure
// returns a *LaunchError. Both are synchronous; once Start returns nil
// error, all further outcomes arrive on Events and Errors.
func Start(ctx context.Context, cfg Config, sourceText string) (*Run, error) {
	tmpPath, err := writeTempSource(cfg.TempDir, sourceText)
	if err != nil {
		return nil, err
	}

	var procCtx context.Context
	var cancel context.CancelFunc
	if cfg.Timeout > 0 {
		procCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
	} else {
		procCtx, cancel = context.WithCancel(ctx)
	}

	log.Debug(logCat, "Spawning interpreter", "interpreter", cfg.Interpreter, "file", tmpPath)

	// #nosec G204 -- interpreter comes from config, the single argument is our own temp file
	cmd := exec.CommandContext(procCtx, cfg.Interpreter, tmpPath)
	cmd.Dir = cfg.WorkDir

	// One pipe carries both streams so chunks interleave in write order.
	pr, pw, err := os.Pipe()
	if err != nil {
		cancel()
		removeQuiet(tmpPath)
		return nil, fmt.Errorf("failed to create output pipe: %w", err)
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	r := &Run{
		cmd:     cmd,
		tmpPath: tmpPath,
		events:  make(chan Event, 64),
		errors:  make(chan error, 8),
		status:  StatusPending,
		cancel:  cancel,
		ctx:     procCtx,
	}

	if err := cmd.Start(); err != nil {
		cancel()
		_ = pr.Close()
		_ = pw.Close()
		removeQuiet(tmpPath)
		log.Debug(logCat, "Failed to start interpreter", "error", err)
		return nil, &LaunchError{Interpreter: cfg.Interpreter, Err: err}
	}

	// The child holds its own copy of the write end; ours must close so
	// the reader sees EOF when the child exits.
	_ = pw.Close()

	r.started = time.Now()
	r.setStatus(StatusRunning)
	log.Debug(logCat, "Interpreter started", "pid", cmd.Process.Pid)

	r.readerWg.Add(1)
	go r.readOutput(pr)

	r.wg.Add(1)
	go r.waitForExit()

	return r, nil
}

// Events returns the channel of output and exit events. It closes
// after the exit event is delivered.
func (r *Run) Events() <-chan Event {
	return r.events
}

// Errors returns the channel of asynchronous errors (read failures,
// timeout).
func (r *Run) Errors() <-chan error {
	return r.errors
}

// Status returns the current run status.
func (r *Run) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// IsRunning reports whether the child is still alive.
func (r *Run) IsRunning() bool {
	return r.Status() == StatusRunning
}

// ExitCode returns the child's exit code, valid once the run has left
// the running state.
func (r *Run) ExitCode() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.exitCode
}

// StartedAt returns when the child process started.
func (r *Run) StartedAt() time.Time {
	return r.started
}

// Cancel kills the child process. The status is set before the context
// is cancelled so waitForExit does not override it.
func (r *Run) Cancel() {
	r.mu.Lock()
	if r.status == StatusRunning {
		r.status = StatusCancelled
	}
	r.mu.Unlock()
	r.cancel()
}

// Wait blocks until all run goroutines finish and the events channel
// has closed.
func (r *Run) Wait() {
	r.wg.Wait()
}

func (r *Run) setStatus(s Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = s
}

func (r *Run) sendError(err error) {
	select {
	case r.errors <- err:
	default:
		log.Debug(logCat, "Error channel full, dropping error", "error", err)
	}
}

// readOutput drains the merged pipe and forwards chunks as events.
func (r *Run) readOutput(pr *os.File) {
	defer r.readerWg.Done()
	defer pr.Close() //nolint:errcheck

	buf := make([]byte, readBufSize)
	for {
		n, err := pr.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case r.events <- Event{Type: EventOutput, Chunk: chunk, Timestamp: time.Now()}:
			case <-r.ctx.Done():
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && r.ctx.Err() == nil {
				r.sendError(fmt.Errorf("output read error: %w", err))
			}
			return
		}
	}
}

// waitForExit reaps the child, waits for the reader to drain, then
// delivers the final exit event and closes the events channel.
func (r *Run) waitForExit() {
	defer r.wg.Done()
	defer close(r.events)
	defer r.cancel()
	defer removeQuiet(r.tmpPath)

	err := r.cmd.Wait()
	r.readerWg.Wait()

	code := r.cmd.ProcessState.ExitCode()
	log.Debug(logCat, "Interpreter exited", "code", code, "error", err)

	r.mu.Lock()
	r.exitCode = code
	cancelled := r.status == StatusCancelled
	timedOut := r.ctx.Err() == context.DeadlineExceeded
	switch {
	case cancelled:
	case timedOut, code != 0:
		r.status = StatusFailed
	default:
		r.status = StatusCompleted
	}
	r.mu.Unlock()

	if timedOut && !cancelled {
		r.sendError(ErrTimeout)
	}

	msg := fmt.Sprintf("run completed (exit code %d)", code)
	switch {
	case cancelled:
		msg = "run cancelled"
	case code != 0:
		msg = fmt.Sprintf("run failed (exit code %d)", code)
	}

	r.events <- Event{
		Type:      EventExit,
		ExitCode:  code,
		Message:   msg,
		Timestamp: time.Now(),
	}
}

// writeTempSource creates the per-run source file. Callers get an
// *IOError on any failure so the UI can surface it before a spawn was
// ever attempted.
func writeTempSource(dir, sourceText string) (string, error) {
	f, err := os.CreateTemp(dir, "slate-run-*.py")
	if err != nil {
		return "", &IOError{Path: dir, Err: err}
	}
	if _, err := f.WriteString(sourceText); err != nil {
		_ = f.Close()
		removeQuiet(f.Name())
		return "", &IOError{Path: f.Name(), Err: err}
	}
	if err := f.Close(); err != nil {
		removeQuiet(f.Name())
		return "", &IOError{Path: f.Name(), Err: err}
	}
	return f.Name(), nil
}

func removeQuiet(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Debug(logCat, "Failed to remove temp file", "path", path, "error", err)
	}
}
