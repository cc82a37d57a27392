package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"branchaudit/pkg/config"
	"branchaudit/pkg/logger"
	"branchaudit/pkg/report"
	"branchaudit/pkg/verifier"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Exit codes; 0 is returned only when every check passes
const (
	exitOK     = 0
	exitFailed = 1
)

type options struct {
	configPath string
	dataRoot   string
	region     string
	logLevel   string
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	code := exitOK
	cmd := newRootCmd(stdout, &code)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailed
	}
	return code
}

func newRootCmd(stdout io.Writer, code *int) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "wesco_verify",
		Short: "Verify the WESCO cleanup of the Colorado branch listings",
		Long: `Scans the Colorado listing files for WESCO/KVA branches, deduplicates them
by location and checks the expected post-cleanup state:
  - Denver: KVA Supply Co (11198 E 45th Ave)
  - Pueblo: WESCO (115 S Main St)
Exits 0 when every check passes and 1 otherwise.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			app := cfg.GetAppConfig()
			if err := logger.InitLogger(app.IsDevelopment(), app.LogFile, app.LogLevel); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()

			*code = run(cmd.Context(), cfg.GetVerifierConfig(), stdout)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path (yaml or json)")
	cmd.Flags().StringVar(&opts.dataRoot, "data-root", "", "listing data root (default supplyfind-updates)")
	cmd.Flags().StringVar(&opts.region, "region", "", "region directory under the data root (default us/co)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")

	return cmd
}

// loadConfig applies flags on top of the file and environment configuration
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Verifier == nil {
		cfg.Verifier = config.NewVerifierConfig()
	}
	if cfg.App == nil {
		cfg.App = config.NewAppConfig()
	}
	if opts.dataRoot != "" {
		cfg.Verifier.DataRoot = opts.dataRoot
	}
	if opts.region != "" {
		cfg.Verifier.Region = opts.region
	}
	if opts.logLevel != "" {
		cfg.App.LogLevel = opts.logLevel
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.VerifierConfig, stdout io.Writer) int {
	runID := uuid.New().String()
	ctx = logger.WithRunID(ctx, runID)
	log := logger.FromContext(ctx)

	console := report.NewConsole(stdout)
	v := verifier.New(cfg)

	log.Info("starting WESCO cleanup verification", zap.String("base_dir", v.BaseDir()))

	result, err := v.Run(ctx)
	if err != nil {
		log.Error("verification aborted", zap.Error(err))
		console.RenderAbort(err, v.BaseDir())
		return exitFailed
	}

	console.Render(result)

	if !result.Success() {
		log.Warn("verification failed", zap.Errors("failures", multierr.Errors(result.Err())))
		return exitFailed
	}
	return exitOK
}
