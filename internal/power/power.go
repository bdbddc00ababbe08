// Package power asks the operating system to shut the machine down.
package power

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"time"
)

// Runner executes a command and reports whether it could be started and
// exited successfully.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, out)
	}
	return nil
}

// Shutdown issues the platform shutdown command.
type Shutdown struct {
	GOOS string
	Run  Runner
}

func New() *Shutdown {
	return &Shutdown{GOOS: runtime.GOOS, Run: execRunner}
}

// EffectiveDelay returns the grace delay the platform command will really
// apply: whole seconds on Windows, whole minutes rounded up elsewhere.
func EffectiveDelay(goos string, delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}
	if goos == "windows" {
		return delay.Truncate(time.Second)
	}
	return (delay + time.Minute - 1).Truncate(time.Minute)
}

// Command returns the shutdown invocation for the given grace delay.
// Windows takes seconds; other systems take whole minutes, rounded up.
func Command(goos string, delay time.Duration) (string, []string) {
	delay = EffectiveDelay(goos, delay)
	if goos == "windows" {
		return "shutdown", []string{"/s", "/t", strconv.Itoa(int(delay / time.Second))}
	}
	when := "now"
	if delay > 0 {
		when = "+" + strconv.Itoa(int(delay/time.Minute))
	}
	return "shutdown", []string{"-h", when}
}

// EffectiveDelay reports the delay RequestShutdown will apply on this OS.
func (s *Shutdown) EffectiveDelay(delay time.Duration) time.Duration {
	return EffectiveDelay(s.GOOS, delay)
}

// RequestShutdown asks the OS to power off after delay. It returns once the
// request has been accepted; it does not wait for the shutdown itself.
func (s *Shutdown) RequestShutdown(ctx context.Context, delay time.Duration) error {
	name, args := Command(s.GOOS, delay)
	if err := s.Run(ctx, name, args...); err != nil {
		return fmt.Errorf("power: shutdown request failed: %w", err)
	}
	return nil
}
