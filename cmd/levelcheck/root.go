package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/levelcheck/internal/config"
	"github.com/zeusync/levelcheck/internal/core/level"
	"github.com/zeusync/levelcheck/internal/core/models"
	"github.com/zeusync/levelcheck/internal/core/session"
	"github.com/zeusync/levelcheck/internal/injector"
)

var errCheckFailed = errors.New("model did not pass the check")

type options struct {
	configPath string
	dim        int
	trials     int
	seed       uint64
	logLevel   string
}

// newRootCmd builds a fresh command tree so tests do not share flag state.
func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "levelcheck",
		Short:         "Validate movement models against Euclidean ground truth",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().IntVar(&opts.dim, "dim", 0, "level dimension (overrides config)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")

	root.AddCommand(
		newDescribeCmd(opts),
		newCheckCmd(opts),
		newRunCmd(opts),
		newModelsCmd(),
	)
	return root
}

// loadConfig reads the config file, if any, and applies flags the user set.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("dim") {
		cfg.Dim = opts.dim
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("trials") {
		cfg.Check.Trials = opts.trials
	}
	if flags.Changed("seed") {
		cfg.Check.Seed = opts.seed
	}
	return cfg, cfg.Validate()
}

func newDescribeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the model signature the level expects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			lvl, err := injector.InitializeLevel(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lvl.Description())
			return nil
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	var modelName string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the randomized conformance check against a registered model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			model, err := models.Default().Get(modelName)
			if err != nil {
				return err
			}
			lvl, err := injector.InitializeLevel(cfg)
			if err != nil {
				return err
			}
			report, err := lvl.Verify(model)
			if err != nil {
				return err
			}
			printReport(cmd, modelName, report)
			if !report.Passed {
				return errCheckFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&modelName, "model", "m", models.NameExact, "registered model name")
	cmd.Flags().IntVar(&opts.trials, "trials", level.DefaultTrials, "number of trials")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "sampler seed, 0 for random")
	return cmd
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay a scripted session of moves, measurements and checks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			script, err := session.LoadFile(args[0])
			if err != nil {
				return err
			}
			runner, err := injector.InitializeRunner(cfg)
			if err != nil {
				return err
			}
			results, err := runner.Run(script)
			for _, r := range results {
				printResult(cmd, r)
			}
			if err != nil {
				return err
			}
			for _, r := range results {
				if r.Op == session.OpCheck && !r.Passed {
					return errCheckFailed
				}
			}
			return nil
		},
	}
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List registered reference models",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range models.Default().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func printReport(cmd *cobra.Command, model string, r level.Report) {
	out := cmd.OutOrStdout()
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	fmt.Fprintf(out, "%s %s dim=%d trials=%d seed=%d run=%s\n", status, model, r.Dim, r.Trials, r.Seed, r.RunID)
	if r.Mismatch != nil {
		fmt.Fprintln(out, r.Mismatch.String())
	}
}

func printResult(cmd *cobra.Command, r session.Result) {
	out := cmd.OutOrStdout()
	switch r.Op {
	case session.OpMove, session.OpSave, session.OpPosition:
		fmt.Fprintf(out, "%d %s position=%v\n", r.Step, r.Op, r.Position)
	case session.OpAngle:
		fmt.Fprintf(out, "%d %s %.6f rad\n", r.Step, r.Op, r.Angle)
	case session.OpLength:
		fmt.Fprintf(out, "%d %s %v\n", r.Step, r.Op, r.Vector)
	case session.OpDistance:
		fmt.Fprintf(out, "%d %s %.6f\n", r.Step, r.Op, r.Distance)
	case session.OpCheck:
		fmt.Fprintf(out, "%d %s passed=%t", r.Step, r.Op, r.Passed)
		if r.Report != nil {
			fmt.Fprintf(out, " seed=%d", r.Report.Seed)
		}
		if r.Text != "" {
			fmt.Fprintf(out, " (%s)", r.Text)
		}
		fmt.Fprintln(out)
	case session.OpDescribe:
		fmt.Fprintf(out, "%d %s\n%s\n", r.Step, r.Op, r.Text)
	}
}
