package main

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose    bool
	configPath string
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "photoion",
		Short: "Photoionization amplitudes and observables",
		Long: `photoion - photoionization channels, lines and observables.

Commands:
  channels - list the channels of one transition
  lines    - list the lines a run file produces
  compute  - evaluate the lines with the hydrogenic model

Examples:
  photoion channels --initial 0+ --final 1/2- --multipoles E1,M1
  photoion compute -c run.yaml -v`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(a.verbose)
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			// one run id per invocation
			a.log = log.With(zap.String("run", uuid.New().String()))

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "run file (YAML)")

	root.AddCommand(newChannelsCmd(a), newLinesCmd(a), newComputeCmd(a))

	return root
}

// newLogger returns a development logger at debug level when verbose, and a
// production logger that only reports warnings otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}
