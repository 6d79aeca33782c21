package firefox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// DefaultProcessNames are the browsers terminated before an import.
var DefaultProcessNames = []string{"firefox", "zen"}

var execCommandContext = exec.CommandContext

// TerminationWarning reports that no browser process could be terminated.
// It is informational: the browser may simply not be running.
type TerminationWarning struct {
	Attempts []string
	Err      error
}

func (w *TerminationWarning) Error() string {
	return fmt.Sprintf("could not terminate browser (%s): %v", strings.Join(w.Attempts, "; "), w.Err)
}

func (w *TerminationWarning) Unwrap() error {
	return w.Err
}

// Terminate force-kills every process named in names, then waits for wait so
// the browser releases its database locks. When no name could be killed the
// first name is retried with killall, and a *TerminationWarning is returned if
// that fails too.
func Terminate(ctx context.Context, names []string, wait time.Duration) error {
	if len(names) == 0 {
		names = DefaultProcessNames
	}

	var attempts []string
	var errs []error
	killed := false

	for _, name := range names {
		cmd, args := killCommand(name)
		attempts = append(attempts, cmd+" "+strings.Join(args, " "))
		if err := run(ctx, cmd, args); err != nil {
			errs = append(errs, err)
			continue
		}
		killed = true
	}

	if !killed && runtime.GOOS != "windows" {
		args := []string{"-9", names[0]}
		attempts = append(attempts, "killall "+strings.Join(args, " "))
		if err := run(ctx, "killall", args); err != nil {
			errs = append(errs, err)
		} else {
			killed = true
		}
	}

	if !killed {
		return &TerminationWarning{Attempts: attempts, Err: errors.Join(errs...)}
	}

	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func killCommand(name string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "taskkill", []string{"/F", "/IM", name + ".exe"}
	}
	return "pkill", []string{"-9", name}
}

func run(ctx context.Context, name string, args []string) error {
	cmd := execCommandContext(ctx, name, args...)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errBuf.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
