package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/modu-ai/scaffold/internal/locale"
	"github.com/modu-ai/scaffold/pkg/version"
)

// newRootCmd builds the command tree. A fresh tree per run keeps flag
// state from leaking between runs.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Scaffold view and API folders for a Vue project",
		Long: `scaffold creates page folders under src/views and matching request
modules under src/api by asking a few questions.

Run "scaffold create" from the project root, or pass --root.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("scaffold %s\n", version.GetVersion()))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Write debug logs to stderr")

	rootCmd.AddCommand(newCreateCmd())
	return rootCmd
}

// Execute runs the CLI with the process arguments and standard streams.
// SIGINT and SIGTERM cancel the running session.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Restore default signal handling after the first signal so a second
	// interrupt terminates the process.
	context.AfterFunc(ctx, stop)

	return run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// run executes one command line. A failure is reported once on errOut and
// returned so the caller can set the exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.ExecuteContext(ctx); err != nil {
		reportError(errOut, err)
		return err
	}
	return nil
}

// sessionError carries the catalog of the session that failed so the
// report is written in the session's language.
type sessionError struct {
	cat *locale.Catalog
	err error
}

func (e *sessionError) Error() string { return e.err.Error() }

func (e *sessionError) Unwrap() error { return e.err }

func reportError(w io.Writer, err error) {
	cat := locale.NewCatalog(locale.Default)
	var se *sessionError
	if errors.As(err, &se) {
		cat = se.cat
	}
	_, _ = fmt.Fprintln(w, cat.Format(locale.SessionFailed, err))
}
