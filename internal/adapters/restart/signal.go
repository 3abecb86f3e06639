package restart

import (
	"log/slog"
	"os/exec"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultDelay leaves time for the triggering response to flush before the
// render process goes away
const DefaultDelay = 300 * time.Millisecond

// Runner starts a shell command line. It exists so tests can observe
// restarts without spawning processes.
type Runner func(dir, command string, wait bool) error

// Signal implements ports.Reloader by stopping and restarting the site's
// dev server. Triggers that arrive while a restart is pending are merged.
type Signal struct {
	stop  string
	start string
	dir   string
	delay time.Duration
	run   Runner

	pending atomic.Bool
	wg      sync.WaitGroup
	logger  *slog.Logger
}

// Option configures a Signal
type Option func(*Signal)

// WithDelay overrides DefaultDelay
func WithDelay(d time.Duration) Option {
	return func(s *Signal) { s.delay = d }
}

// WithRunner replaces the shell runner
func WithRunner(r Runner) Option {
	return func(s *Signal) { s.run = r }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Signal) { s.logger = l }
}

// NewSignal creates a restart signal running stop and then start in dir
func NewSignal(dir, stop, start string, opts ...Option) *Signal {
	s := &Signal{
		stop:   stop,
		start:  start,
		dir:    dir,
		delay:  DefaultDelay,
		run:    shellRun,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "restart")
	return s
}

// Trigger schedules a restart and returns immediately
func (s *Signal) Trigger() {
	if !s.pending.CompareAndSwap(false, true) {
		s.logger.Debug("restart already pending")
		return
	}
	s.wg.Add(1)
	time.AfterFunc(s.delay, func() {
		defer s.wg.Done()
		s.pending.Store(false)
		s.restart()
	})
}

// Wait blocks until scheduled restarts have been attempted
func (s *Signal) Wait() {
	s.wg.Wait()
}

func (s *Signal) restart() {
	if s.stop != "" {
		if err := s.run(s.dir, s.stop, true); err != nil {
			s.logger.Info("nothing to restart", "command", s.stop, "error", err)
		}
	}
	if s.start == "" {
		return
	}
	if err := s.run(s.dir, s.start, false); err != nil {
		s.logger.Warn("failed to start render process", "command", s.start, "error", err)
		return
	}
	s.logger.Info("render process restarted", "command", s.start)
}

// shellRun runs command through the platform shell. When wait is false the
// process is left running and reaped in the background.
func shellRun(dir, command string, wait bool) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", command)
	} else {
		cmd = exec.Command("sh", "-c", command)
	}
	cmd.Dir = dir

	if wait {
		return cmd.Run()
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
