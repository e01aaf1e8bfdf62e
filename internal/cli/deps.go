// Package cli provides the cobra command tree and the composition root that
// wires the scaffold workflow to its prompter, progress output and template
// bundle.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/modu-ai/scaffold/internal/template"
	"github.com/modu-ai/scaffold/internal/template/bundle"
	"github.com/modu-ai/scaffold/pkg/version"
)

// Dependencies holds the services shared by commands. It is the only place
// where the template bundle and the logger are instantiated.
type Dependencies struct {
	Manifest *template.Manifest
	Deployer template.Deployer
	Logger   *slog.Logger
}

// NewDependencies loads the embedded template bundle and builds the logger.
// Logs are discarded unless verbose is set, in which case debug records go
// to logOut.
func NewDependencies(verbose bool, logOut io.Writer) (*Dependencies, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	m, err := template.LoadManifest(bundle.FS)
	if err != nil {
		return nil, fmt.Errorf("load template bundle: %w", err)
	}
	logger.Debug("template bundle loaded", "version", version.GetFullVersion(), "sets", m.SetNames())

	return &Dependencies{
		Manifest: m,
		Deployer: template.NewDeployer(m, template.NewRenderer(bundle.FS)),
		Logger:   logger,
	}, nil
}
