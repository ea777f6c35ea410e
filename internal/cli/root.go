package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sdejongh/comparefiles/internal/platform"
	"github.com/sdejongh/comparefiles/pkg/compare"
	"github.com/sdejongh/comparefiles/pkg/config"
	"github.com/sdejongh/comparefiles/pkg/logging"
	"github.com/sdejongh/comparefiles/pkg/models"
	"github.com/sdejongh/comparefiles/pkg/output"
	"github.com/sdejongh/comparefiles/pkg/storage"
)

// newBackend returns the storage the CLI compares on.
// Argument paths reach it exactly as given.
var newBackend = func() storage.Backend {
	return storage.NewLocalFS()
}

// Execute runs the CLI with the given arguments and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return exitCode(cmd.Execute(), stderr)
}

// NewRootCommand creates the comparefiles command
func NewRootCommand() *cobra.Command {
	var global GlobalFlags
	var flags CompareFlags

	cmd := &cobra.Command{
		Use:   "comparefiles <file_a> <file_b>",
		Short: "Check whether two files are byte-identical",
		Long: `comparefiles compares two regular files by MD5.

The first bytes of both files are hashed first so that files which differ
early are rejected without reading them fully. Matching prefixes are always
confirmed with a hash of the full contents.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, &global, &flags, args[0], args[1])
		},
	}

	AddGlobalFlags(cmd, &global)
	addCompareFlags(cmd, &flags)

	cmd.AddCommand(NewConfigCommand(&global))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func runCompare(cmd *cobra.Command, global *GlobalFlags, flags *CompareFlags, fileA, fileB string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := config.Load(global.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cmd, global, flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	formatter, ok := output.New(cfg.Output.Format)
	if !ok {
		return fmt.Errorf("unsupported output format: %s (use: human, json)", cfg.Output.Format)
	}

	var opts []compare.CompareOption
	if cfg.Compare.SinglePass {
		opts = append(opts, compare.WithSinglePass())
	}
	if flags.KnownDigest != "" {
		digest, err := models.ParseDigest(flags.KnownDigest)
		if err != nil {
			return fmt.Errorf("invalid --known-digest: %w", err)
		}
		opts = append(opts, compare.WithKnownDigest(digest))
	}

	for _, p := range []string{fileA, fileB} {
		if err := platform.ValidatePath(p); err != nil {
			return reportInvalidInput(formatter, stderr, &compare.InvalidInputError{Path: p, Reason: compare.ReasonNotExist})
		}
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer logger.Close()

	comparator := compare.NewComparator(newBackend(), compare.Options{
		PrefixSize: cfg.Compare.PrefixSize,
		BlockSize:  cfg.Compare.BlockSize,
		Parallel:   cfg.Compare.Parallel,
		Logger:     logger,
	})

	// bars share one line, so they are only drawn for sequential passes
	if cfg.Output.Progress && !cfg.Compare.Parallel && isTerminal(stderr) {
		progress := output.NewProgress(stderr)
		comparator.Hasher().SetProgressCallback(progress.Update)
		defer progress.Stop()
	}

	start := time.Now()
	result, err := comparator.Compare(ctx, fileA, fileB, opts...)
	elapsed := time.Since(start)

	var invalid *compare.InvalidInputError
	if errors.As(err, &invalid) {
		logger.Warn(ctx, "invalid input", logging.Fields{"path": invalid.Path, "reason": string(invalid.Reason)})
		return reportInvalidInput(formatter, stderr, err)
	}
	if err != nil {
		logger.Error(ctx, "comparison failed", err, nil)
		return fmt.Errorf("comparison failed: %w", err)
	}

	logger.Info(ctx, "comparison completed", logging.Fields{
		"result":      string(result.Outcome()),
		"duration_ms": elapsed.Milliseconds(),
	})

	return formatter.Result(stdout, output.Report{
		FileA:      fileA,
		FileB:      fileB,
		Result:     result,
		Duration:   elapsed,
		ShowTiming: cfg.Output.Timing,
	})
}

func reportInvalidInput(formatter output.Formatter, w io.Writer, err error) error {
	if werr := formatter.InvalidInput(w, err); werr != nil {
		return werr
	}
	return &ExitError{Code: ExitInvalidInput, Err: err, Reported: true}
}

// applyFlagsToConfig overrides config values with explicitly set flags
func applyFlagsToConfig(cmd *cobra.Command, global *GlobalFlags, flags *CompareFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("prefix-size") {
		cfg.Compare.PrefixSize = flags.PrefixSize
	}
	if changed("block-size") {
		cfg.Compare.BlockSize = flags.BlockSize
	}
	if changed("single-pass") {
		cfg.Compare.SinglePass = flags.SinglePass
	}
	if changed("parallel") {
		cfg.Compare.Parallel = flags.Parallel
	}
	if changed("output") {
		cfg.Output.Format = flags.Output
	}
	if changed("time") {
		cfg.Output.Timing = flags.Timing
	}
	if changed("progress") {
		cfg.Output.Progress = flags.Progress
	}

	if global.LogFile != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.File = global.LogFile
	}
	if global.Verbose {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
}

// newLogger builds the logger described by cfg; disabled logging discards everything
func newLogger(cfg *config.Config, stderr io.Writer) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	format := logging.Format(cfg.Logging.Format)
	level := logging.ParseLevel(cfg.Logging.Level)

	if cfg.Logging.File == "" {
		return logging.NewStreamLogger(stderr, format, level), nil
	}

	logger, err := logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.Logging.File,
		Format:     format,
		Level:      level,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
