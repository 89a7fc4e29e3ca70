package graphics

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/notargets/laxtube/model_problems/Euler1D"
	"github.com/notargets/laxtube/model_problems/Euler1D/sod_shock_tube"
)

var (
	frameWidth  = 10 * vg.Inch
	frameHeight = 8 * vg.Inch
)

// FrameWriter renders every snapshot to OutputDir/frame_NNNN.png as a 2x2
// panel of density, pressure, velocity and internal energy. When Exact is set
// the exact solution at the snapshot time is drawn dashed over each panel.
type FrameWriter struct {
	OutputDir string
	Exact     func(t float64) *sod_shock_tube.SOD
	Written   []string
}

func NewFrameWriter(outputDir string) (fw *FrameWriter, err error) {
	if err = os.MkdirAll(outputDir, 0755); err != nil {
		return
	}
	fw = &FrameWriter{OutputDir: outputDir}
	return
}

func (fw *FrameWriter) Observe(snap *Euler1D.Snapshot) (err error) {
	var (
		fields = []struct {
			name string
			y    []float64
		}{
			{"Density", snap.Rho},
			{"Pressure", snap.P},
			{"Velocity", snap.V},
			{"Internal Energy", snap.Eint},
		}
		exact [][]float64
		xe    []float64
		plots = make([][]*plot.Plot, 2)
	)
	if fw.Exact != nil {
		var rho, p, u, e []float64
		xe, rho, p, u, e = fw.Exact(snap.Time).Get()
		exact = [][]float64{rho, p, u, e}
	}
	for i := range plots {
		plots[i] = make([]*plot.Plot, 2)
	}
	for n, fld := range fields {
		var p *plot.Plot
		if p, err = linePlot(fld.name, snap.X, fld.y); err != nil {
			return
		}
		if exact != nil {
			if err = addExact(p, xe, exact[n]); err != nil {
				return
			}
		}
		plots[n/2][n%2] = p
	}
	plots[0][0].Title.Text = fmt.Sprintf("Density, t = %8.5f", snap.Time)

	img := vgimg.New(frameWidth, frameHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: 2 * vg.Millimeter, PadBottom: 2 * vg.Millimeter,
		PadLeft: 2 * vg.Millimeter, PadRight: 2 * vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	fileName := filepath.Join(fw.OutputDir, fmt.Sprintf("frame_%04d.png", snap.Index))
	var f *os.File
	if f, err = os.Create(fileName); err != nil {
		return
	}
	if _, err = (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return
	}
	if err = f.Close(); err != nil {
		return
	}
	fw.Written = append(fw.Written, fileName)
	return
}

func linePlot(name string, x, y []float64) (p *plot.Plot, err error) {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	p = plot.New()
	p.Title.Text = name
	p.X.Label.Text = "X"
	p.Add(plotter.NewGrid())
	var line *plotter.Line
	if line, err = plotter.NewLine(pts); err != nil {
		return nil, fmt.Errorf("plotting %s: %w", name, err)
	}
	line.Width = vg.Points(1)
	p.Add(line)
	return
}

func addExact(p *plot.Plot, x, y []float64) (err error) {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	var line *plotter.Line
	if line, err = plotter.NewLine(pts); err != nil {
		return
	}
	line.Width = vg.Points(1)
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	line.Color = color.RGBA{R: 200, A: 255}
	p.Add(line)
	return
}
