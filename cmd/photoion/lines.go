package main

import (
	"strconv"

	"github.com/katalvlaran/photoion/photoionization"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newLinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List the lines a run file produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.loadRun()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(r.lines) == 0 {
				pterm.Warning.WithWriter(out).Println("no open lines")

				return nil
			}

			unit := r.defaults.EnergyUnit.String()
			data := pterm.TableData{{"initial", "final", "ω [" + unit + "]", "ε [" + unit + "]", "channels", "kappas"}}
			for _, l := range r.lines {
				data = append(data, []string{
					l.Initial.String(), l.Final.String(),
					formatFloat(r.defaults.FromHartree(l.PhotonEnergy)),
					formatFloat(r.defaults.FromHartree(l.ElectronEnergy)),
					strconv.Itoa(len(l.Channels)), formatKappas(photoionization.Kappas(l)),
				})
			}

			return pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(data).Render()
		},
	}
}
