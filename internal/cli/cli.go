package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"yamlsimple/internal/diagnostic"
	"yamlsimple/internal/docfile"
	"yamlsimple/internal/export"
	"yamlsimple/internal/flat"
	"yamlsimple/internal/lint"
	"yamlsimple/internal/match"
	"yamlsimple/internal/rewrite"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitFail  = 1
	ExitUsage = 2
)

// maxSuggestions bounds the "did you mean" list for missing keys.
const maxSuggestions = 3

// ExitError is an error that carries a process exit code. An empty Message
// exits without printing anything.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// app is the state shared by subcommands of one invocation.
type app struct {
	cfg    Config
	logger *slog.Logger
	store  *docfile.Store
	stdout io.Writer
	stderr io.Writer
}

// Execute runs the command line with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(stderr, "Error:", exitErr.Message)
		}

		return exitErr.Code
	}

	fmt.Fprintln(stderr, "Error:", err)

	return ExitFail
}

// NewRootCommand builds the command tree writing results to stdout and logs
// and errors to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: DefaultConfig(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "yamlsimple",
		Short: "Read and edit simple indentation-structured YAML files by dotted key-path",
		Long: `yamlsimple reads mapping-only YAML documents indented by four columns
and addresses their values by dotted key-path, e.g. variables.instance_name.

Edits rewrite the file in place. "set" changes only the edited line; "add"
inserts one line below the key's parent and drops comments and blank lines.
Operations on a file that does not exist do nothing.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := NewConfig(a.cfg)
			if err != nil {
				return &ExitError{Code: ExitUsage, Message: err.Error()}
			}

			a.cfg = *cfg
			a.logger = newLogger(cfg.LogLevel, cfg.LogFormat, a.stderr)
			a.store = docfile.NewStore(a.logger)
			a.logger.Debug("Configuration loaded.", "command", cmd.Name(), "config", *cfg)

			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel,
		"Logging level: 'debug', 'info', 'warn' or 'error' (env "+EnvLogLevel+").")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat,
		"Log output format: 'text' or 'json' (env "+EnvLogFormat+").")

	root.AddCommand(
		a.listCommand(),
		a.getCommand(),
		a.setCommand(),
		a.addCommand(),
		a.hasCommand(),
		a.exportCommand(),
		a.lintCommand(),
	)

	return root
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &ExitError{
				Code:    ExitUsage,
				Message: fmt.Sprintf("%s: expected %d arguments, got %d\nUsage: %s", cmd.Name(), n, len(args), cmd.UseLine()),
			}
		}

		return nil
	}
}

func (a *app) listCommand() *cobra.Command {
	var leaves bool

	cmd := &cobra.Command{
		Use:   "list FILE",
		Short: "Print every key-path and value as key=value",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.store.ParseFile(args[0])
			if err != nil {
				return err
			}

			entries := m.All()
			if leaves {
				entries = m.Leaves()
			}

			for k, v := range entries {
				fmt.Fprintf(a.stdout, "%s=%s\n", k, v)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&leaves, "leaves", false, "Omit keys that only hold nested keys.")

	return cmd
}

func (a *app) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Print the value bound to KEY",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			path, key := args[0], args[1]

			m, err := a.store.ParseFile(path)
			if err != nil {
				return err
			}

			v, ok := m.Get(key)
			if !ok {
				return keyNotFound(m, key)
			}

			fmt.Fprintln(a.stdout, v)

			return nil
		},
	}
}

func (a *app) setCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE KEY VALUE",
		Short: "Replace the value of an existing KEY",
		Args:  exactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			path, key, value := args[0], args[1], args[2]

			err := a.store.UpdateFile(path, key, value)
			if errors.Is(err, rewrite.ErrKeyNotFound) {
				m, parseErr := a.store.ParseFile(path)
				if parseErr != nil {
					return err
				}

				return keyNotFound(m, key)
			}

			if err != nil {
				return err
			}

			a.logger.Info("Value updated.", "path", path, "key", key)

			return nil
		},
	}
}

func (a *app) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add FILE KEY VALUE",
		Short: "Insert KEY with a quoted VALUE below its parent unless it already exists",
		Args:  exactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			path, key, value := args[0], args[1], args[2]

			if err := a.store.AddFile(path, key, value); err != nil {
				return err
			}

			a.logger.Info("Value added.", "path", path, "key", key)

			return nil
		},
	}
}

func (a *app) hasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "has FILE KEY",
		Short: "Print whether KEY exists; exits 1 when it does not",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			found, err := a.store.CheckFile(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, strconv.FormatBool(found))

			if !found {
				return &ExitError{Code: ExitFail}
			}

			return nil
		},
	}
}

func (a *app) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Print the flattened document as nested YAML with every value quoted",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.store.ParseFile(args[0])
			if err != nil {
				return err
			}

			out, err := export.ToYAML(m)
			if err != nil {
				return err
			}

			_, err = a.stdout.Write(out)

			return err
		},
	}
}

func (a *app) lintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint FILE",
		Short: "Report lines that are skipped or read differently than YAML would",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text, ok, err := a.store.Load(args[0])
			if err != nil {
				return err
			}

			if !ok {
				a.logger.Warn("Document not found.", "path", args[0])
				return nil
			}

			res := lint.Check(text)
			for _, d := range res.All() {
				fmt.Fprintf(a.stdout, "%s: %s\n", d.Severity, d)
			}

			if res.HasErrors() {
				return &ExitError{Code: ExitFail}
			}

			return nil
		},
	}
}

func keyNotFound(m *flat.Mapping, key string) error {
	d := diagnostic.Diagnostic{
		Key:         key,
		Message:     "key not found",
		Suggestions: match.Suggest(key, m.Keys(), maxSuggestions),
	}

	return &ExitError{Code: ExitFail, Message: d.String()}
}
