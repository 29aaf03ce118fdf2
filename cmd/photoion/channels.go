package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/config"
	"github.com/katalvlaran/photoion/photoionization"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newChannelsCmd(a *app) *cobra.Command {
	var (
		initial, final string
		multipoles     []string
		gauges         []string
	)
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List the channels of one transition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ji, err := angular.ParseSymmetry(initial)
			if err != nil {
				return errors.Wrap(err, "--initial")
			}
			jf, err := angular.ParseSymmetry(final)
			if err != nil {
				return errors.Wrap(err, "--final")
			}
			f := &config.File{Multipoles: multipoles, Gauges: gauges}
			config.ApplyDefaults(f)
			if err := f.Validate(); err != nil {
				return err
			}
			s, err := f.Settings()
			if err != nil {
				return err
			}

			channels := photoionization.EnumerateChannels(ji, jf, s)
			a.log.Debug("channels enumerated", zap.Stringer("initial", ji), zap.Stringer("final", jf),
				zap.Int("count", len(channels)))
			if len(channels) == 0 {
				pterm.Warning.WithWriter(cmd.OutOrStdout()).Printfln("no channels for %s -> %s", ji, jf)

				return nil
			}

			data := pterm.TableData{{"#", "multipole", "gauge", "kappa", "partial wave", "J_t"}}
			for i, ch := range channels {
				data = append(data, []string{
					strconv.Itoa(i + 1), ch.Multipole.String(), ch.Gauge.String(),
					strconv.Itoa(int(ch.Kappa)), ch.Kappa.String(), ch.Symmetry.String(),
				})
			}

			return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render()
		},
	}
	cmd.Flags().StringVar(&initial, "initial", "", "initial level symmetry, e.g. 0+")
	cmd.Flags().StringVar(&final, "final", "", "final ion level symmetry, e.g. 1/2-")
	cmd.Flags().StringSliceVar(&multipoles, "multipoles", nil, "multipoles, e.g. E1,M1,E2 (default E1)")
	cmd.Flags().StringSliceVar(&gauges, "gauges", nil, "gauges: coulomb, babushkin (default both)")
	_ = cmd.MarkFlagRequired("initial")
	_ = cmd.MarkFlagRequired("final")

	return cmd
}
