// Package cli wires the application context and implements the filesystem
// management actions shared by the one-shot commands and the interactive
// shell.
package cli

import (
	"fmt"
	"os"

	"github.com/zoro11031/fileman/internal/config"
	"github.com/zoro11031/fileman/internal/oplog"
	"github.com/zoro11031/fileman/internal/ui"
	"github.com/zoro11031/fileman/internal/worker"
)

// Context bundles the collaborators every action needs.
type Context struct {
	UI      *ui.UI
	Config  *config.Config
	Log     *oplog.Log
	Workers worker.Runner

	dirPerms  os.FileMode
	filePerms os.FileMode
}

// NewContext builds the application context: configuration, operation log
// (created if absent), and the worker runner. When worker isolation is
// disabled in the configuration, mutating operations run in-process instead
// of in spawned workers.
func NewContext() (*Context, error) {
	cfg := config.New("")

	log := oplog.New(cfg.GetOrDefault(config.KeyLogFile, oplog.DefaultPath))
	if err := log.Init(); err != nil {
		return nil, err
	}

	var runner worker.Runner
	if cfg.GetOrDefault(config.KeyWorkerIsolation, "true") == "true" {
		sub, err := worker.NewSubprocess()
		if err != nil {
			return nil, fmt.Errorf("failed to set up worker execution: %w", err)
		}
		runner = sub
	} else {
		runner = worker.InProcess{}
	}

	return &Context{
		UI:        ui.New(),
		Config:    cfg,
		Log:       log,
		Workers:   runner,
		dirPerms:  config.ParsePerm(cfg.GetOrDefault(config.KeyDirPerms, "0755"), 0o755),
		filePerms: config.ParsePerm(cfg.GetOrDefault(config.KeyFilePerms, "0644"), 0o644),
	}, nil
}

// record appends a success entry to the operation log. A logging failure is
// reported but does not turn a completed operation into a failure.
func (c *Context) record(message string) {
	if err := c.Log.Record(message); err != nil {
		c.UI.Errorf("could not write operation log: %v", err)
	}
}
