package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/hydrogenic"
	"github.com/katalvlaran/photoion/photoionization"
	"github.com/katalvlaran/photoion/radiation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newComputeCmd(a *app) *cobra.Command {
	var interpolate []float64
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Evaluate the lines of a run file with the hydrogenic model",
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

			model := hydrogenic.New(hydrogenic.WithAlpha(r.defaults.Alpha))
			eng, err := photoionization.NewEngine(model, model, r.defaults,
				photoionization.WithNuclearModel(r.nuclearModel()),
				photoionization.WithRadialGrid(r.file.RadialGrid()),
			)
			if err != nil {
				return err
			}
			lines, err := eng.ComputeLines(cmd.Context(), r.lines, r.settings)
			if err != nil {
				return err
			}
			pterm.Success.WithWriter(out).Printfln("%d lines computed", len(lines))

			p := printer{out: out, run: r}
			steps := []func([]photoionization.Line) error{p.summary, p.shells}
			if r.settings.CalcPartialCs {
				steps = append(steps, p.partials)
			}
			if r.settings.CalcTensors {
				steps = append(steps, p.tensors)
			}
			if r.settings.CalcNondipole {
				steps = append(steps, p.nondipole)
			}
			for _, step := range steps {
				if err := step(lines); err != nil {
					return err
				}
			}

			for _, w := range interpolate {
				omega := r.defaults.ToHartree(w)
				for _, lv := range r.initial.Levels {
					cs, err := photoionization.InterpolateCrossSection(lines, lv.Index, omega)
					if err != nil {
						a.log.Warn("interpolation skipped", zap.Int("initial", lv.Index), zap.Float64("omega", w), zap.Error(err))
						continue
					}
					pterm.Info.WithWriter(out).Printfln("σ(%s, ω=%s %s) = %s", lv, formatFloat(w), r.defaults.EnergyUnit, gauges(cs))
				}
			}

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&interpolate, "interpolate", nil, "photon energies to interpolate the total cross section at")

	return cmd
}

type printer struct {
	out io.Writer
	run *run
}

func (p printer) section(title string) {
	pterm.DefaultSection.WithWriter(p.out).Println(title)
}

func (p printer) table(data pterm.TableData) error {
	return pterm.DefaultTable.WithHasHeader().WithWriter(p.out).WithData(data).Render()
}

func (p printer) energy(v float64) string { return formatFloat(p.run.defaults.FromHartree(v)) }

func gauges(v radiation.EmProperty) string {
	return formatFloat(v.Coulomb) + " / " + formatFloat(v.Babushkin)
}

func (p printer) summary(lines []photoionization.Line) error {
	s := p.run.settings
	header := []string{"initial", "final", "ω [" + p.run.defaults.EnergyUnit.String() + "]", "σ C/B [a.u.]"}
	if s.CalcAnisotropy {
		header = append(header, "β C/B")
	}
	if s.CalcTimeDelay {
		header = append(header, "τ coherent C/B", "τ incoherent C/B")
	}
	data := pterm.TableData{header}
	for _, l := range lines {
		row := []string{l.Initial.String(), l.Final.String(), p.energy(l.PhotonEnergy), gauges(l.CrossSection)}
		if s.CalcAnisotropy {
			row = append(row, gauges(l.Anisotropy))
		}
		if s.CalcTimeDelay {
			row = append(row, gauges(l.CoherentDelay), gauges(l.IncoherentDelay))
		}
		data = append(data, row)
	}
	p.section("Cross sections")

	return p.table(data)
}

func (p printer) shells(lines []photoionization.Line) error {
	by := photoionization.CrossSectionByShell(lines)
	subs := make([]atomic.Subshell, 0, len(by))
	for sub := range by {
		subs = append(subs, sub)
	}
	slices.SortFunc(subs, func(a, b atomic.Subshell) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})

	data := pterm.TableData{{"subshell", "Σσ C/B [a.u.]"}}
	for _, sub := range subs {
		data = append(data, []string{sub.String(), gauges(by[sub])})
	}
	p.section("By ionized subshell")

	return p.table(data)
}

func (p printer) partials(lines []photoionization.Line) error {
	p.section("Partial cross sections")
	data := pterm.TableData{{"line", "M_f", "σ(M_f) C/B [a.u.]"}}
	for _, l := range lines {
		for _, pc := range l.PartialCrossSections {
			data = append(data, []string{l.String(), pc.Mf.String(), gauges(pc.Value)})
		}
	}

	return p.table(data)
}

func (p printer) tensors(lines []photoionization.Line) error {
	p.section("Statistical tensors")
	data := pterm.TableData{{"line", "k", "q", "ρ_kq Coulomb", "ρ_kq Babushkin"}}
	for _, l := range lines {
		for _, t := range l.Tensors {
			data = append(data, []string{l.String(), strconv.Itoa(t.K), strconv.Itoa(t.Q),
				fmt.Sprintf("%.6g", t.Value.Coulomb), fmt.Sprintf("%.6g", t.Value.Babushkin)})
		}
	}

	return p.table(data)
}

func (p printer) nondipole(lines []photoionization.Line) error {
	p.section("Non-dipole parameters")
	header := []string{"line"}
	for _, par := range photoionization.Parameters() {
		header = append(header, par.String()+" C/B")
	}
	data := pterm.TableData{header}
	for _, l := range lines {
		row := []string{l.String()}
		for _, par := range photoionization.Parameters() {
			row = append(row, gauges(l.Parameters.Values[par]))
		}
		data = append(data, row)
	}
	if err := p.table(data); err != nil {
		return err
	}

	if len(p.run.settings.Angles) == 0 {
		return nil
	}
	p.section("Angular distribution")
	data = pterm.TableData{{"line", "θ", "φ", "dσ/dΩ C/B [a.u.]", "normalized C/B"}}
	for _, l := range lines {
		for _, v := range l.Distribution {
			data = append(data, []string{l.String(), formatFloat(v.Point.Theta), formatFloat(v.Point.Phi),
				gauges(v.Differential), gauges(v.Normalized)})
		}
	}

	return p.table(data)
}
