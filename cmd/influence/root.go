package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/influence/bfs"
	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/centrality"
	"github.com/katalvlaran/influence/diffusion"
	"github.com/katalvlaran/influence/internal/config"
	"github.com/katalvlaran/influence/report"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "influence",
		Short: "Simulate influence spread on a random social network",
		Long: "influence builds a random social network, ranks people by PageRank, " +
			"and spreads influence step by step from the most important person.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return initConfig(cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			return run(cmd.Context(), cmd.OutOrStdout(), cfg, logger)
		},
	}

	f := cmd.PersistentFlags()
	f.String("config", "", "config file (default .influence.yaml)")
	f.BoolP("verbose", "v", false, "debug logging")

	f.IntP("nodes", "n", 15, "number of people in the network")
	f.Float64("edge-p", 0.3, "probability of a friendship between any two people")
	f.Float64P("activation-p", "p", diffusion.DefaultActivationProbability, "probability one attempt influences a friend")
	f.Int("max-steps", diffusion.DefaultMaxSteps, "upper bound on growth steps")
	f.Int64("seed", 0, "random seed (0 picks one from the clock)")
	f.String("ranker", "pagerank", "importance ranking: pagerank or degree")
	f.Float64("damping", centrality.DefaultDamping, "PageRank damping factor")
	f.Duration("delay", 0, "pause after the initial state and after every step")
	f.String("dot-dir", "", "write one Graphviz file per step into this directory")
	f.Int("top", 5, "number of ranked people to print (0 = all)")
	f.Int("trials", 1, "number of independent runs to aggregate")

	for key, flag := range map[string]string{
		"verbose":                "verbose",
		"nodes":                  "nodes",
		"edge_probability":       "edge-p",
		"activation_probability": "activation-p",
		"max_steps":              "max-steps",
		"seed":                   "seed",
		"ranker":                 "ranker",
		"damping":                "damping",
		"delay":                  "delay",
		"dot_dir":                "dot-dir",
		"top":                    "top",
		"trials":                 "trials",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	return cmd
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".influence")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("INFLUENCE")
	viper.AutomaticEnv()

	// A missing default file is fine; an explicit one must load.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		return fmt.Errorf("config file %s: %w", cfgFile, err)
	}

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return zc.Build()
}

// run executes the full pipeline: network, ranking, one observed spread,
// then any extra trials.
func run(ctx context.Context, out io.Writer, cfg config.Config, logger *zap.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("configuration loaded", zap.Int64("seed", seed), zap.Int("nodes", cfg.Nodes), zap.String("ranker", cfg.Ranker))
	fmt.Fprintf(out, "Random seed: %d\n", seed)

	g, err := builder.Generate(cfg.Nodes, cfg.EdgeProbability, seed)
	if err != nil {
		return fmt.Errorf("build network: %w", err)
	}
	stats, err := bfs.Summarize(g, bfs.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("network stats: %w", err)
	}
	if err := report.WriteGraphStats(out, stats); err != nil {
		return err
	}

	ranker, err := centrality.ByName(cfg.Ranker, cfg.Damping)
	if err != nil {
		return err
	}
	scores, err := ranker.Rank(g)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}
	if err := report.WriteRanking(out, scores.Ranking(), cfg.Top); err != nil {
		return err
	}

	printer := report.NewStepPrinter(out)
	observers := []diffusion.Observer{printer}
	if cfg.Delay > 0 {
		observers = append(observers, report.NewPacer(cfg.Delay, nil))
	}
	var recorder *report.DOTRecorder
	if cfg.DotDir != "" {
		if recorder, err = report.NewDOTRecorder(g, cfg.DotDir); err != nil {
			return err
		}
		observers = append(observers, recorder)
	}

	engine := diffusion.New(diffusion.WithLogger(logger), diffusion.WithObserver(observers...))
	// The spread stream is offset from the graph stream so it does not replay
	// the edge draws.
	res, err := engine.Run(g, scores, cfg.ActivationProbability, cfg.MaxSteps, rand.New(rand.NewSource(seed+1)))
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	if err := printer.Err(); err != nil {
		return err
	}
	if recorder != nil {
		if err := recorder.Err(); err != nil {
			return err
		}
		logger.Info("graphviz snapshots written", zap.Int("files", len(recorder.Files())), zap.String("dir", cfg.DotDir))
	}
	fmt.Fprintln(out)
	if err := report.WriteSummary(out, res); err != nil {
		return err
	}

	if cfg.Trials < 2 {
		return nil
	}
	quiet := diffusion.New(diffusion.WithLogger(logger))
	results := []*diffusion.Result{res}
	for i := 1; i < cfg.Trials; i++ {
		r, err := quiet.Run(g, scores, cfg.ActivationProbability, cfg.MaxSteps, rand.New(rand.NewSource(seed+1+int64(i))))
		if err != nil {
			return fmt.Errorf("trial %d: %w", i+1, err)
		}
		results = append(results, r)
	}
	summary := report.Aggregate(results)
	logger.Info("trials aggregated", zap.Stringer("summary", summary))
	fmt.Fprintln(out)

	return report.WriteAggregate(out, summary)
}
