package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"signaleval/internal/config"
	"signaleval/internal/evaluator"
	"signaleval/internal/snapshot"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "signaleval",
		Short:         "Evaluate one market snapshot into a trading decision",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newEvaluateCmd() *cobra.Command {
	var (
		configPath string
		inputPath  string
		pretty     bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Read a snapshot JSON object and print the decision",
		Long: "Reads one input snapshot as a JSON object from a file or stdin, runs the\n" +
			"signal evaluator once, and writes the decision record as JSON to stdout.\n" +
			"A no_trade decision is a normal outcome, not a failure: the exit code is\n" +
			"nonzero only for unreadable input or malformed JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("input") {
				cfg.InputPath = inputPath
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Pretty = pretty
			}
			if debug {
				cfg.LogLevel = "debug"
			}
			return runEvaluate(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "Snapshot JSON file, or - for stdin")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the decision JSON")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log per-stage evaluation traces to stderr")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the signaleval version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "signaleval", version)
		},
	}
}

func runEvaluate(cfg config.Config) error {
	logger := newLogger(cfg.LogLevel)

	raw, err := readInput(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	// The snapshot's own strict_mode flag wins; config only fills the
	// default when the snapshot omits it.
	if cfg.StrictMode {
		if _, ok := fields[snapshot.FieldStrictMode]; !ok {
			fields[snapshot.FieldStrictMode] = true
		}
	}

	snap := snapshot.FromMap(fields)
	eval := evaluator.New(evaluator.WithLogger(logger))
	decision := eval.Evaluate(snap)

	logger.Info().
		Str("status", string(decision.Status)).
		Str("reason", string(decision.Reason)).
		Float64("confidence", decision.Confidence).
		Msg("snapshot evaluated")

	return writeDecision(os.Stdout, decision, cfg.Pretty)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeDecision(w io.Writer, decision evaluator.Decision, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(decision)
}
