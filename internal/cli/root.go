package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ytget/number-converter/internal/config"
	"github.com/ytget/number-converter/internal/exercise"
	"github.com/ytget/number-converter/internal/logging"
	"github.com/ytget/number-converter/internal/render"
)

// globalOptions holds persistent flag values
type globalOptions struct {
	configPath string
	language   string
	logLevel   string
	logFormat  string
	jsonOut    bool
}

// app carries the state shared by all commands of one invocation
type app struct {
	version  string
	opts     globalOptions
	cfg      *config.Config
	logger   *slog.Logger
	reporter *render.Reporter
	service  *exercise.Service
}

// displayError carries a user-facing message while keeping the cause for errors.Is
type displayError struct {
	msg string
	err error
}

func (e *displayError) Error() string { return e.msg }
func (e *displayError) Unwrap() error { return e.err }

// NewRootCmd builds the numconv command tree
func NewRootCmd(version string) *cobra.Command {
	a := &app{version: version}

	rootCmd := &cobra.Command{
		Use:   "numconv",
		Short: "Convert numbers between decimal and binary/octal/hexadecimal",
		Long: `numconv generates random digit matrices in binary, octal or hexadecimal,
converts every row to decimal, and converts decimal values between 1 and 15
to binary, octal and hexadecimal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "Path to config file (default: user config dir)")
	flags.StringVar(&a.opts.language, "lang", "", "Report language: system, en, ru, pt")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.opts.logFormat, "log-format", "", "Log format: text, json")
	flags.BoolVar(&a.opts.jsonOut, "json", false, "Output in JSON format")

	rootCmd.AddCommand(
		a.newMatrixCmd(),
		a.newToDecimalCmd(),
		a.newFromDecimalCmd(),
		a.newBasesCmd(),
		a.newConfigCmd(),
		a.newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute(version string, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(version)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setup loads configuration, applies flag overrides and wires services
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.opts.configPath)
	if err != nil {
		return err
	}

	if a.opts.language != "" {
		cfg.Language = a.opts.language
	}
	if a.opts.logLevel != "" {
		cfg.Log.Level = a.opts.logLevel
	}
	if a.opts.logFormat != "" {
		cfg.Log.Format = a.opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), cfg.Log.Format, level)

	loc := render.NewLocalization()
	loc.SetLanguage(cfg.Language)
	a.reporter = render.NewReporter(loc)
	a.service = exercise.NewServiceFromConfig(cfg, a.logger)

	a.logger.Debug("configuration loaded",
		"config", a.opts.configPath,
		"language", loc.GetCurrentLanguage(),
		"rows", cfg.Matrix.Rows,
		"cols", cfg.Matrix.Cols)
	return nil
}

// userError converts a conversion error into a localized displayError
func (a *app) userError(err error) error {
	var de *displayError
	if errors.As(err, &de) {
		return err
	}
	return &displayError{msg: a.reporter.ErrorMessage(err), err: err}
}
