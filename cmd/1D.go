/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/laxtube/InputParameters"
	"github.com/notargets/laxtube/graphics"
	"github.com/notargets/laxtube/model_problems/Euler1D"
	"github.com/notargets/laxtube/model_problems/Euler1D/sod_shock_tube"
	"github.com/notargets/laxtube/utils"
)

type Model1D struct {
	Config      Euler1D.Config
	Input       *InputParameters.InputParameters1D
	ICFile      string
	OutputDir   string
	CSV, Graph  bool
	ProfileMode string
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "Sod shock tube with the Lax scheme",
	Long: `
Integrates the Sod shock tube to finalTime and reports the L1 error against the
exact solution. Parameters come from defaults, the config file and LAXTUBE_*
environment, the input conditions file, then flags, each overriding the last.

laxtube 1D `,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var m1d *Model1D
		if m1d, err = processInput1D(cmd, viper.GetViper()); err != nil {
			return
		}
		switch m1d.ProfileMode {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		default:
			return fmt.Errorf("unknown profile mode %q, use cpu or mem", m1d.ProfileMode)
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return Run1D(ctx, m1d, logger, cmd.OutOrStdout())
	},
}

type param1D struct {
	name  string
	usage string
	i     *int
	f     *float64
}

// Every numeric run parameter, keyed by flag and config name
func params1D(cfg *Euler1D.Config) []param1D {
	return []param1D{
		{name: "nx", usage: "number of interior cells", i: &cfg.NX},
		{name: "ng", usage: "number of ghost cells on each end", i: &cfg.NG},
		{name: "dnout", usage: "time steps between output frames", i: &cfg.OutputInterval},
		{name: "parallel", usage: "number of goroutines for the interior update", i: &cfg.ParallelDegree},
		{name: "finalTime", usage: "FinalTime - the target end time for the sim", f: &cfg.FinalTime},
		{name: "CFL", usage: "CFL - fraction of the cell crossing time used as the time step", f: &cfg.CFL},
		{name: "refSpeed", usage: "reference wave speed used to size the time step", f: &cfg.ReferenceSpeed},
		{name: "gamma", usage: "ratio of specific heats", f: &cfg.Gamma},
		{name: "xMin", usage: "left end of the tube", f: &cfg.XMin},
		{name: "xMax", usage: "right end of the tube", f: &cfg.XMax},
	}
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	addFlags1D(OneDCmd)
}

func addFlags1D(cmd *cobra.Command) {
	defaults := Euler1D.DefaultConfig()
	for _, p := range params1D(&defaults) {
		if p.i != nil {
			cmd.Flags().Int(p.name, *p.i, p.usage)
		} else {
			cmd.Flags().Float64(p.name, *p.f, p.usage)
		}
	}
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- NX\n\t- CFL\n\t- FinalTime")
	cmd.Flags().StringP("outputDir", "o", "", "directory for PNG frames, none are written if empty")
	cmd.Flags().Bool("csv", false, "also write CSV frames to the output directory")
	cmd.Flags().BoolP("graph", "g", false, "plot the final density in the terminal")
	cmd.Flags().String("profile", "", "profile the run: cpu or mem")
}

// processInput1D layers the run parameters: defaults, then values set in v,
// then the input conditions file, then flags changed on the command line
func processInput1D(cmd *cobra.Command, v *viper.Viper) (m1d *Model1D, err error) {
	var (
		flags = cmd.Flags()
		cfg   = Euler1D.DefaultConfig()
	)
	m1d = &Model1D{}
	for _, p := range params1D(&cfg) {
		if !v.IsSet(p.name) {
			continue
		}
		if p.i != nil {
			*p.i = v.GetInt(p.name)
		} else {
			*p.f = v.GetFloat64(p.name)
		}
	}
	if m1d.ICFile, err = flags.GetString("inputConditionsFile"); err != nil {
		return
	}
	if len(m1d.ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(m1d.ICFile); err != nil {
			return nil, err
		}
		m1d.Input = &InputParameters.InputParameters1D{}
		if err = m1d.Input.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", m1d.ICFile, err)
		}
		cfg = m1d.Input.ToConfig(cfg)
	}
	for _, p := range params1D(&cfg) {
		if !flags.Changed(p.name) {
			continue
		}
		if p.i != nil {
			*p.i, err = flags.GetInt(p.name)
		} else {
			*p.f, err = flags.GetFloat64(p.name)
		}
		if err != nil {
			return nil, err
		}
	}
	m1d.Config = cfg
	m1d.OutputDir, _ = flags.GetString("outputDir")
	m1d.CSV, _ = flags.GetBool("csv")
	m1d.Graph, _ = flags.GetBool("graph")
	m1d.ProfileMode, _ = flags.GetString("profile")
	if m1d.CSV && len(m1d.OutputDir) == 0 {
		return nil, fmt.Errorf("--csv needs an output directory (-o, --outputDir)")
	}
	return
}

func Run1D(ctx context.Context, m1d *Model1D, logger *zap.Logger, out io.Writer) (err error) {
	var (
		c    *Euler1D.Lax
		last *Euler1D.Snapshot
		opts = []Euler1D.Option{
			Euler1D.WithLogger(logger),
			Euler1D.WithObserver(Euler1D.ObserverFunc(func(snap *Euler1D.Snapshot) error {
				last = snap
				return nil
			})),
		}
	)
	if m1d.Input != nil {
		m1d.Input.Print()
	}
	if len(m1d.OutputDir) != 0 {
		var fw *graphics.FrameWriter
		if fw, err = graphics.NewFrameWriter(m1d.OutputDir); err != nil {
			return
		}
		fw.Exact = func(t float64) *sod_shock_tube.SOD {
			return sodExact(m1d.Config, t)
		}
		opts = append(opts, Euler1D.WithObserver(fw))
		if m1d.CSV {
			var cw *graphics.CSVWriter
			if cw, err = graphics.NewCSVWriter(m1d.OutputDir); err != nil {
				return
			}
			opts = append(opts, Euler1D.WithObserver(cw))
		}
	}
	if c, err = Euler1D.NewLax(m1d.Config, opts...); err != nil {
		return
	}
	var res *Euler1D.Result
	if res, err = c.Run(ctx); err != nil {
		return
	}
	// The last frame is only emitted on an output step
	if last == nil || last.Step != res.Steps {
		last = c.Grid.Sample(res.Outputs, res.Steps)
	}
	fmt.Fprintf(out, "Steps = %d, Time = %8.5f, Effective CFL = %5.3f\n", res.Steps, res.Time, c.EffectiveCFL())
	sod := sodExact(m1d.Config, res.Time)
	fmt.Fprintf(out, "L1 Error vs exact solution: Density = %8.5f, Pressure = %8.5f, Velocity = %8.5f\n",
		sod.L1Error(last.X, last.Rho, sod_shock_tube.Density),
		sod.L1Error(last.X, last.P, sod_shock_tube.Pressure),
		sod.L1Error(last.X, last.V, sod_shock_tube.Velocity))
	if m1d.Graph {
		fmt.Fprintln(out, graphics.ASCIIPlot(last))
	}
	fmt.Fprintln(out, utils.GetMemUsage())
	return
}

func sodExact(cfg Euler1D.Config, t float64) *sod_shock_tube.SOD {
	return sod_shock_tube.NewShockTube(cfg.Gamma, cfg.XMin, cfg.XMax, 1, 1, 0.125, 0.1, t)
}
