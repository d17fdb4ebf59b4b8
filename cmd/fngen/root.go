package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/on-the-ground/effect_ive_fn/internal/gen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds the flags of fngen.
type RootOptions struct {
	Out      string
	MaxArity int
	Package  string
	Check    bool
	Verbose  bool
}

// NewRootCommand creates the fngen command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fngen",
		Short: "Generate the FunctionN family of purefn",
		Long: `Render function1_gen.go up to functionN_gen.go and tuple_gen.go.

With --check nothing is written; the command fails listing every generated
file that is missing or differs from a fresh rendering.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.MaxArity < 1 || opts.MaxArity > gen.MaxArity {
				return fmt.Errorf("%w: --max-arity %d must be within [1, %d]", gen.ErrInvalidArity, opts.MaxArity, gen.MaxArity)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			return run(opts, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", ".", "output directory")
	cmd.Flags().IntVar(&opts.MaxArity, "max-arity", gen.MaxArity, "largest arity to render")
	cmd.Flags().StringVar(&opts.Package, "package", "purefn", "package clause of the generated files")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "verify generated files instead of writing them")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "development logging")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(opts *RootOptions, logger *zap.Logger) error {
	files, err := gen.Render(gen.NewConfig(opts.MaxArity, opts.Package))
	if err != nil {
		return err
	}
	if opts.Check {
		return check(opts.Out, files, logger)
	}
	return write(opts.Out, files, logger)
}

func write(dir string, files []gen.File, logger *zap.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Source, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debug("wrote generated file",
			zap.String("path", path),
			zap.Uint64("digest", gen.Digest(f.Source)),
		)
	}
	logger.Info("generation done", zap.String("dir", dir), zap.Int("files", len(files)))
	return nil
}

func check(dir string, files []gen.File, logger *zap.Logger) error {
	var stale []string
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		onDisk, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, f.Name)
			logger.Warn("generated file missing", zap.String("path", path))
			continue
		case err != nil:
			return fmt.Errorf("read %s: %w", path, err)
		}
		if want, got := gen.Digest(f.Source), gen.Digest(onDisk); want != got {
			stale = append(stale, f.Name)
			logger.Warn("generated file stale",
				zap.String("path", path),
				zap.Uint64("want_digest", want),
				zap.Uint64("got_digest", got),
			)
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", gen.ErrStale, strings.Join(stale, ", "))
	}
	logger.Info("generated files up to date", zap.String("dir", dir), zap.Int("files", len(files)))
	return nil
}
