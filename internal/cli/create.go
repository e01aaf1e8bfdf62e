package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/scaffold/internal/core/project"
	"github.com/modu-ai/scaffold/internal/core/scaffold"
	"github.com/modu-ai/scaffold/internal/locale"
	"github.com/modu-ai/scaffold/internal/prompt"
	"github.com/modu-ai/scaffold/internal/ui"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create view and API folders interactively",
		Long: `Create a first-level folder under src/views (or pick an existing one),
an optional second-level folder, the view template files and the API files.

The questions are shown as terminal forms on a TTY. Without a TTY, or with
--plain, each question is printed on one line and answered on stdin.

Examples:
  scaffold create
  scaffold create --root ./web --lang en
  printf 'y\nuser\nn\ny\ny\n' | scaffold create --plain`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("root", "", "Project root directory (default: current directory)")
	cmd.Flags().String("lang", string(locale.Default), "Prompt language: "+strings.Join(locale.Supported(), ", "))
	cmd.Flags().Bool("plain", false, "Use line prompts even on a terminal")
	return cmd
}

func runCreate(cmd *cobra.Command, _ []string) error {
	lang, err := locale.Resolve(getStringFlag(cmd, "lang"))
	if err != nil {
		return err
	}
	cat := locale.NewCatalog(lang)

	root, err := project.ResolveRoot(getStringFlag(cmd, "root"))
	if err != nil {
		return &sessionError{cat: cat, err: err}
	}

	d, err := NewDependencies(getBoolFlag(cmd, "verbose"), cmd.ErrOrStderr())
	if err != nil {
		return &sessionError{cat: cat, err: err}
	}

	in, out, errOut := cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()

	hm := ui.NewHeadlessManager(in)
	if getBoolFlag(cmd, "plain") {
		hm.ForceHeadless(true)
	}
	headless := hm.IsHeadless()

	var p prompt.Prompter
	if headless {
		p = prompt.NewLine(in, out, cat)
	} else {
		p = prompt.NewTerminal(cat, in, out)
	}

	d.Logger.Debug("starting scaffold session", "root", root, "lang", string(cat.Locale()), "headless", headless)

	wf := scaffold.New(scaffold.Options{
		Root:     root,
		Prompter: p,
		Deployer: d.Deployer,
		Progress: ui.NewProgress(ui.NewTheme(ui.ThemeConfig{NoColor: headless}), hm, out),
		Catalog:  cat,
		Out:      out,
		ErrOut:   errOut,
		Logger:   d.Logger,
	})

	res, err := wf.Run(cmd.Context())
	if err != nil {
		return &sessionError{cat: cat, err: err}
	}

	d.Logger.Debug("scaffold session finished", "steps", len(res.Steps), "failed", res.Failed())
	return nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
