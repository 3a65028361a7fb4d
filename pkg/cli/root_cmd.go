package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/mkproj/mkproj/pkg/edit"
	"github.com/mkproj/mkproj/pkg/log"
	"github.com/mkproj/mkproj/pkg/scaffold"
	"github.com/spf13/cobra"
)

type shutdownKey struct{}

// Deps carries the wiring shared by every command. Run fills in the zero
// values for production use; tests inject a sandbox runtime and a fake
// editor.
type Deps struct {
	Runtime  *toolkit.Runtime
	Shutdown func()

	ConfigPath string
	LogFile    string
	LogLevel   string
	LogJSON    bool

	// Scaffold is rebuilt by PersistentPreRunE once flags are parsed.
	Scaffold *scaffold.Scaffold

	// Editor opens the options file during the edit round trip. Nil means
	// the real editor via toolkit.Edit.
	Editor edit.EditFunc

	closeLog func() error
}

// NewRootCmd builds the root cobra command. The root command itself scaffolds
// a project; `mkproj NAME` is the whole interface, with one subcommand for
// the MCP server. Flag registration order is preserved everywhere because the
// options file renders flags in that order.
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	var opts scaffold.ProjectOptions
	installed := installedExtensions()
	active := make([]*bool, len(installed))

	cmd := &cobra.Command{
		Use:   "mkproj NAME",
		Short: "put up a ready-to-build Go project",
		Long: strings.TrimSpace(`
mkproj renders a new Go project: README, LICENSE, go.mod, Makefile and a
small code skeleton. Defaults come from your user config, your git
identity and the project name; every default can be overridden with a
flag.

Pass --edit to review the effective options in your editor first. The
file shows one line per option, active or commented out; save and quit
to run mkproj again with exactly the lines left active.
`),
		Example: strings.TrimSpace(`
  mkproj widget
  mkproj widget -l apache -u https://github.com/acme/widget
  mkproj widget --pre-commit --github-actions
  mkproj --edit widget
`),
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt := deps.Runtime
			if rt == nil {
				return fmt.Errorf("runtime is required")
			}

			svc, err := scaffold.New(scaffold.Options{
				Runtime:    rt,
				ConfigPath: deps.ConfigPath,
			})
			if err != nil {
				return err
			}
			deps.Scaffold = svc

			var out io.Writer
			if deps.LogFile != "" {
				f, err := os.OpenFile(deps.LogFile,
					os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return err
				}
				out = f
				deps.closeLog = f.Close
			}
			level := log.ParseLevel(deps.LogLevel)
			if opts.Verbose {
				level = slog.LevelInfo
			}
			if opts.VeryVerbose {
				level = slog.LevelDebug
			}
			lg, _, err := log.NewLogger(log.LoggerConfig{
				Version: Version,
				Out:     out,
				Level:   level,
				JSON:    deps.LogJSON,
			})
			if err != nil {
				return err
			}
			cmd.SetContext(log.ContextWithLogger(ctx, lg))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if deps.closeLog != nil {
				if err := deps.closeLog(); err != nil {
					return err
				}
				deps.closeLog = nil
			}
			if v := cmd.Context().Value(shutdownKey{}); v != nil {
				if sd, ok := v.(func()); ok && sd != nil {
					sd()
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				opts.Name = args[0]
			}

			editRequested := false
			for i, ext := range installed {
				if !*active[i] {
					continue
				}
				if _, ok := ext.(editExtension); ok {
					editRequested = true
					continue
				}
				opts.Extensions = append(opts.Extensions, ext)
			}
			if editRequested {
				return runEditFlow(cmd, deps, &opts, installed)
			}

			report, err := deps.Scaffold.Run(cmd.Context(), &opts)
			if err != nil {
				return decorateError(err)
			}
			out := cmd.OutOrStdout()
			if report.Pretend {
				fmt.Fprintln(out, "pretend run, nothing written:")
			}
			fmt.Fprint(out, report.String())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&opts.Package, "package", "p", "",
		"use `PACKAGE` as the Go package name (default: derived from NAME)")
	flags.StringVar(&opts.Module, "module", "",
		"go.mod `MODULE` path (default: derived from the URL, else from config)")
	flags.StringVarP(&opts.Description, "description", "d", "",
		"short project `DESCRIPTION` for the README")
	flags.StringVarP(&opts.URL, "url", "u",
		"", "project `URL`, also seeds the module path")
	flags.StringVarP(&opts.License, "license", "l", "",
		"project `LICENSE` identifier (mit, apache, bsd3, unlicense)")
	flags.StringVarP(&opts.Author, "author", "a", "",
		"`AUTHOR` name for the LICENSE and README")
	flags.StringVarP(&opts.Email, "email", "e", "",
		"contact `EMAIL` for the generated files")
	flags.BoolVarP(&opts.Force, "force", "f", false,
		"overwrite an existing directory")
	flags.BoolVarP(&opts.Update, "update", "U", false,
		"update an existing project, keeping files already on disk")
	flags.BoolVarP(&opts.Pretend, "pretend", "P", false,
		"report the files that would be written without writing them")
	flags.BoolVar(&opts.NoConfig, "no-config", false,
		"skip the user config when computing defaults")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false,
		"more detailed logging")
	flags.BoolVar(&opts.VeryVerbose, "very-verbose", false,
		"debug logging")
	for i, ext := range installed {
		active[i] = flags.Bool(strings.TrimPrefix(ext.Flag(), "--"), false, ext.Help())
	}

	pf := cmd.PersistentFlags()
	pf.SortFlags = false
	pf.StringVarP(&deps.ConfigPath, "config", "c", "", "path to user `CONFIG` file")
	pf.StringVar(&deps.LogFile, "log-file", "", "write logs to `FILE` (default stderr)")
	pf.StringVar(&deps.LogLevel, "log-level", "info", "minimum log `LEVEL`")
	pf.BoolVar(&deps.LogJSON, "log-json", false, "output logs as JSON")

	cmd.AddCommand(
		NewMCPCmd(deps),
	)

	return cmd
}
