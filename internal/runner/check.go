package runner

import (
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"slate/internal/log"
)

// SyntaxIssue is one compile-check finding. Line is 1-indexed within
// the checked source; zero when the interpreter output carried none.
type SyntaxIssue struct {
	Line    int
	Message string
}

// linePattern pulls the line number out of py_compile stderr, which
// reports `File "...", line N` for syntax errors.
var linePattern = regexp.MustCompile(`line (\d+)`)

// CheckSyntax compiles sourceText without executing it, via the
// interpreter's py_compile module. A clean compile returns (nil, nil).
// A syntax problem returns a SyntaxIssue; only an interpreter that
// cannot be launched at all is an error.
func CheckSyntax(ctx context.Context, cfg Config, sourceText string) (*SyntaxIssue, error) {
	tmpPath, err := writeTempSource(cfg.TempDir, sourceText)
	if err != nil {
		return nil, err
	}
	defer removeQuiet(tmpPath)

	// #nosec G204 -- interpreter comes from config, the file is our own temp file
	cmd := exec.CommandContext(ctx, cfg.Interpreter, "-m", "py_compile", tmpPath)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, &LaunchError{Interpreter: cfg.Interpreter, Err: err}
	}

	issue := &SyntaxIssue{Message: lastNonEmptyLine(string(out))}
	if m := linePattern.FindStringSubmatch(string(out)); m != nil {
		issue.Line, _ = strconv.Atoi(m[1])
	}
	log.Debug(logCat, "Syntax check failed", "line", issue.Line, "message", issue.Message)
	return issue, nil
}

// lastNonEmptyLine extracts the summary line of a compile traceback,
// which the interpreter prints last.
func lastNonEmptyLine(out string) string {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(lines[i]); s != "" {
			return s
		}
	}
	return "syntax check failed"
}
