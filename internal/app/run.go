package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/log"
	"slate/internal/runner"
	"slate/internal/session"
	"slate/internal/ui/toaster"
)

// startRun launches the active buffer through the configured
// interpreter. Only one run may be active at a time.
func (m *Model) startRun() tea.Cmd {
	if m.run != nil && m.run.IsRunning() {
		return m.showToast("a run is already in progress", toaster.LevelWarn)
	}

	t := m.activeTab()
	run, err := runner.Start(context.Background(), m.runnerConfig(), t.buf.Text())
	if err != nil {
		var launchErr *runner.LaunchError
		if errors.As(err, &launchErr) {
			return m.showToast("cannot launch "+m.cfg.Interpreter+": "+launchErr.Err.Error(), toaster.LevelError)
		}
		var ioErr *runner.IOError
		if errors.As(err, &ioErr) {
			return m.showToast("run setup failed: "+ioErr.Err.Error(), toaster.LevelError)
		}
		return m.showToast("run failed: "+err.Error(), toaster.LevelError)
	}

	m.run = run
	m.runFile = t.path
	m.runBytes = 0
	m.out = m.out.Clear()
	m.syncStatus()
	log.Info(log.CatRunner, "run started", "file", t.path, "interpreter", m.cfg.Interpreter)

	return tea.Batch(listenRunEvents(run), listenRunErrors(run))
}

func (m *Model) runnerConfig() runner.Config {
	return runner.Config{
		Interpreter: m.cfg.Interpreter,
		WorkDir:     m.workDir,
		Timeout:     m.cfg.Run.Timeout(),
	}
}

// listenRunEvents waits for the next event from the run's merged
// output stream.
func listenRunEvents(r *runner.Run) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-r.Events()
		return runEventMsg{event: ev, ok: ok}
	}
}

func listenRunErrors(r *runner.Run) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-r.Errors()
		return runErrorMsg{err: err, ok: ok}
	}
}

func (m *Model) handleRunEvent(msg runEventMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		// Events channel closed; the exit event already arrived.
		m.syncStatus()
		return m, nil
	}

	switch msg.event.Type {
	case runner.EventOutput:
		m.runBytes += int64(len(msg.event.Chunk))
		m.out = m.out.Append(msg.event.Chunk)

	case runner.EventExit:
		failed := msg.event.ExitCode != 0
		m.out = m.out.SetStatus(msg.event.Message, failed)
		m.recordRun(msg.event.ExitCode)
		m.syncStatus()
	}

	return m, listenRunEvents(m.run)
}

func (m *Model) handleRunError(msg runErrorMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		return m, nil
	}

	var cmds []tea.Cmd
	if errors.Is(msg.err, runner.ErrTimeout) {
		cmds = append(cmds, m.showToast(
			fmt.Sprintf("run timed out after %s", m.cfg.Run.Timeout()), toaster.LevelError))
	} else {
		log.ErrorErr(log.CatRunner, "run error", msg.err)
		cmds = append(cmds, m.showToast("run error: "+msg.err.Error(), toaster.LevelError))
	}

	cmds = append(cmds, listenRunErrors(m.run))
	return m, tea.Batch(cmds...)
}

// recordRun persists one completed run to history. Failures only log.
func (m *Model) recordRun(exitCode int) {
	if m.history == nil || m.run == nil {
		return
	}
	rec := &session.RunRecord{
		FilePath:    m.runFile,
		ExitCode:    exitCode,
		Duration:    time.Since(m.run.StartedAt()),
		OutputBytes: m.runBytes,
		StartedAt:   m.run.StartedAt(),
	}
	if err := m.history.Record(rec); err != nil {
		log.ErrorErr(log.CatSession, "history record failed", err)
	}
}

// checkSyntax compiles the active buffer without executing it.
func (m *Model) checkSyntax() tea.Cmd {
	text := m.activeBuffer().Text()
	cfg := m.runnerConfig()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		issue, err := runner.CheckSyntax(ctx, cfg, text)
		return checkResultMsg{issue: issue, err: err}
	}
}

func (m *Model) handleCheckResult(msg checkResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatRunner, "syntax check failed", msg.err)
		return m, m.showToast("syntax check failed: "+msg.err.Error(), toaster.LevelError)
	}
	if msg.issue == nil {
		return m, m.showToast("no syntax errors", toaster.LevelSuccess)
	}

	if msg.issue.Line > 0 {
		if err := m.editor.GotoLine(msg.issue.Line); err == nil {
			m.syncStatus()
		}
		return m, m.showToast(
			fmt.Sprintf("line %d: %s", msg.issue.Line, msg.issue.Message), toaster.LevelError)
	}
	return m, m.showToast(msg.issue.Message, toaster.LevelError)
}
