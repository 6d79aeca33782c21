package firefox

import (
	"context"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExec replaces execCommandContext. exitCodes maps a command name to the
// exit status it should produce; calls are recorded.
func fakeExec(t *testing.T, exitCodes map[string]string) *[]string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	var calls []string
	orig := execCommandContext
	execCommandContext = func(_ context.Context, name string, args ...string) *exec.Cmd {
		calls = append(calls, name+" "+args[len(args)-1])
		code, ok := exitCodes[name+" "+args[len(args)-1]]
		if !ok {
			code = "0"
		}
		return exec.Command("sh", "-c", "exit "+code)
	}
	t.Cleanup(func() { execCommandContext = orig })
	return &calls
}

func TestTerminate_KillsEveryName(t *testing.T) {
	calls := fakeExec(t, map[string]string{"pkill zen": "1"})

	err := Terminate(context.Background(), []string{"firefox", "zen"}, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []string{"pkill firefox", "pkill zen"}, *calls)
}

func TestTerminate_FallsBackToKillall(t *testing.T) {
	calls := fakeExec(t, map[string]string{"pkill firefox": "1", "pkill zen": "1"})

	err := Terminate(context.Background(), nil, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []string{"pkill firefox", "pkill zen", "killall firefox"}, *calls)
}

func TestTerminate_WarningWhenNothingKilled(t *testing.T) {
	fakeExec(t, map[string]string{"pkill firefox": "1", "killall firefox": "1"})

	err := Terminate(context.Background(), []string{"firefox"}, time.Hour)

	var warning *TerminationWarning
	require.ErrorAs(t, err, &warning)
	assert.Len(t, warning.Attempts, 2)
	assert.Contains(t, warning.Error(), "pkill -9 firefox")
}

func TestTerminate_WaitHonoursContext(t *testing.T) {
	fakeExec(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := Terminate(ctx, []string{"firefox"}, time.Hour)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
