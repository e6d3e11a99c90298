package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Kpubaq/404tsemey/internal/config"
	"github.com/Kpubaq/404tsemey/internal/pipeline"
)

const version = "v1.0.0"

var (
	flagConfig   string
	flagDataDir  string
	flagOutput   string
	flagDebugDir string
	flagUseAI    bool
	flagWorkers  int
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     "pushgen",
		Short:   "Personalized product push generator",
		Version: version,
		Long: `pushgen ranks financial products for bank clients from 3 months of
transaction and transfer history and produces one personalized push
message per client.`,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the batch pipeline over a data directory",
		RunE:  run,
	}
	runCmd.Flags().StringVar(&flagConfig, "config", "configs/config.yaml", "path to YAML config")
	runCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "directory with clients.csv and per-client extracts")
	runCmd.Flags().StringVar(&flagOutput, "output", "", "results CSV path")
	runCmd.Flags().StringVar(&flagDebugDir, "debug-dir", "", "directory for per-client debug artifacts")
	runCmd.Flags().BoolVar(&flagUseAI, "use-ai", false, "paraphrase push texts through GigaChat")
	runCmd.Flags().IntVar(&flagWorkers, "workers", 0, "message generation workers")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Flags override file and environment configuration.
	if flagDataDir != "" {
		cfg.Pipeline.DataDir = flagDataDir
	}
	if flagOutput != "" {
		cfg.Pipeline.Output = flagOutput
	}
	if flagDebugDir != "" {
		cfg.Pipeline.DebugDir = flagDebugDir
	}
	if cmd.Flags().Changed("use-ai") {
		cfg.Pipeline.UseAI = flagUseAI
	}
	if flagWorkers > 0 {
		cfg.Pipeline.Workers = flagWorkers
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if lvl, err := zerolog.ParseLevel(cfg.Logger.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p, err := pipeline.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	return p.Run(ctx)
}
